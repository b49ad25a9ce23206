package game

// ShipInstance is one physically placed ship: a connected component of cells
// sharing a ship id, plus the subset already hit. The instance table built by
// Extract is the authoritative attack state for a side.
type ShipInstance struct {
	ID     int
	Coords map[Point]struct{}
	Hits   map[Point]struct{}
}

// IsSunk reports whether every cell of the ship has been hit.
func (s *ShipInstance) IsSunk() bool {
	return len(s.Hits) == len(s.Coords)
}

// Contains reports whether (x, y) is part of the ship.
func (s *ShipInstance) Contains(x, y int) bool {
	_, ok := s.Coords[Point{X: x, Y: y}]
	return ok
}

// Extract labels a placed grid into ship instances. Every unvisited non-empty
// cell seeds a 4-connected flood fill over cells with the same ship id.
// The scan is row-major, so output order is deterministic for a given grid.
func Extract(g *Grid) []*ShipInstance {
	visited := make(map[Point]struct{})
	var instances []*ShipInstance

	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			start := Point{X: x, Y: y}
			if _, seen := visited[start]; seen {
				continue
			}
			id := g.At(x, y)
			if id == Empty {
				continue
			}

			component := FloodFill(start,
				func(p Point) bool { return g.InBounds(p.X, p.Y) },
				func(p Point) bool { return g.At(p.X, p.Y) == id })

			coords := make(map[Point]struct{}, len(component))
			for _, p := range component {
				coords[p] = struct{}{}
				visited[p] = struct{}{}
			}
			instances = append(instances, &ShipInstance{
				ID:     id,
				Coords: coords,
				Hits:   make(map[Point]struct{}),
			})
		}
	}
	return instances
}
