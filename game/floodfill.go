package game

// FloodFill collects the 4-connected component containing start, growing over
// cells for which keep returns true. inBounds guards coordinates before keep
// sees them. The worklist is explicit; no recursion.
func FloodFill(start Point, inBounds func(Point) bool, keep func(Point) bool) []Point {
	if !inBounds(start) || !keep(start) {
		return nil
	}

	visited := map[Point]struct{}{start: {}}
	component := []Point{start}
	stack := []Point{start}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, d := range neighbours {
			n := Point{X: p.X + d.X, Y: p.Y + d.Y}
			if _, seen := visited[n]; seen {
				continue
			}
			if !inBounds(n) || !keep(n) {
				continue
			}
			visited[n] = struct{}{}
			component = append(component, n)
			stack = append(stack, n)
		}
	}
	return component
}
