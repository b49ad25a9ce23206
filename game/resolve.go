package game

// Resolve applies an attack at (x, y) against a side's ship instances.
// A matching instance records the hit in place; recording is idempotent, so
// re-resolving an already-hit cell neither duplicates the hit nor flips the
// sunk determination. No matching instance means a miss.
func Resolve(x, y int, instances []*ShipInstance) (hit, sunk bool) {
	p := Point{X: x, Y: y}
	for _, ship := range instances {
		if _, ok := ship.Coords[p]; ok {
			ship.Hits[p] = struct{}{}
			return true, ship.IsSunk()
		}
	}
	return false, false
}

// AllSunk reports whether every instance has been fully hit. An empty
// instance list is vacuously sunk; callers decide what that means.
func AllSunk(instances []*ShipInstance) bool {
	for _, ship := range instances {
		if !ship.IsSunk() {
			return false
		}
	}
	return true
}
