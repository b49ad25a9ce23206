package game

// Family classifies a ship footprint.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyStraight
	FamilyL
	FamilyT
	FamilyZ
	FamilyDoubleT
)

func (f Family) String() string {
	switch f {
	case FamilyStraight:
		return "I"
	case FamilyL:
		return "L"
	case FamilyT:
		return "T"
	case FamilyZ:
		return "Z"
	case FamilyDoubleT:
		return "TT"
	default:
		return "unknown"
	}
}

// Shape describes one ship type from the fixed catalog. Variants holds the
// geometric variants to choose among at placement time, each as cell offsets
// relative to the anchor; every variant is additionally tried in all four
// rotations, so only mirror/foot variants need to be listed explicitly.
type Shape struct {
	ID       int
	Size     int
	Family   Family
	Variants [][]Point
}

// catalog is the fixed table of the seven ship types, indexed by ship id.
// Sizes and footprints are permanent assumptions of the game, not tunables.
var catalog = [8]Shape{
	1: {ID: 1, Size: 2, Family: FamilyStraight, Variants: [][]Point{
		{{0, 0}, {1, 0}},
	}},
	2: {ID: 2, Size: 3, Family: FamilyStraight, Variants: [][]Point{
		{{0, 0}, {1, 0}, {2, 0}},
	}},
	3: {ID: 3, Size: 4, Family: FamilyStraight, Variants: [][]Point{
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
	}},
	4: {ID: 4, Size: 4, Family: FamilyT, Variants: [][]Point{
		{{0, 0}, {1, 0}, {2, 0}, {1, 1}},
	}},
	5: {ID: 5, Size: 4, Family: FamilyL, Variants: [][]Point{
		{{0, 0}, {0, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {2, 1}},
		{{0, 0}, {1, 0}, {2, 0}, {0, 1}},
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
	}},
	6: {ID: 6, Size: 4, Family: FamilyZ, Variants: [][]Point{
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{0, 1}, {1, 1}, {1, 0}, {2, 0}},
	}},
	7: {ID: 7, Size: 6, Family: FamilyDoubleT, Variants: [][]Point{
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}, {3, 1}},
	}},
}

// ShipIDs returns the valid ship ids in catalog order.
func ShipIDs() []int {
	return []int{1, 2, 3, 4, 5, 6, 7}
}

// ShapeByID returns the catalog entry for a ship id. Panics on ids outside
// 1..7, which never come from validated input.
func ShapeByID(id int) Shape {
	if id < 1 || id > 7 {
		panic("game: ship id out of range")
	}
	return catalog[id]
}

// Rotate rotates cell offsets about the anchor by deg degrees clockwise.
// Only multiples of 90 are meaningful; any other value returns the offsets
// unchanged, matching a 0-degree rotation.
func Rotate(offsets []Point, deg int) []Point {
	rotated := make([]Point, len(offsets))
	for i, p := range offsets {
		switch deg {
		case 90:
			rotated[i] = Point{X: -p.Y, Y: p.X}
		case 180:
			rotated[i] = Point{X: -p.X, Y: -p.Y}
		case 270:
			rotated[i] = Point{X: p.Y, Y: -p.X}
		default:
			rotated[i] = p
		}
	}
	return rotated
}

// TotalTiles returns the number of board cells the requested fleet occupies.
func TotalTiles(counts map[int]int) int {
	total := 0
	for id, count := range counts {
		if id >= 1 && id <= 7 {
			total += catalog[id].Size * count
		}
	}
	return total
}
