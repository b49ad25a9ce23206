package game

// Cell tags stored in a Grid. Empty and the ship ids 1..7 are the canonical
// board contents; Hit, Sunk and Miss are display-only overlay tags used by
// renderers. Ground truth for attack state lives in ShipInstance hit sets.
const (
	Empty = 0
	Hit   = 8
	Sunk  = 9
	Miss  = 10
)

// Point is a board coordinate. X is the column, Y is the row.
type Point struct {
	X int
	Y int
}

// orthogonal neighbour offsets, the only connectivity rule in the game
var neighbours = [4]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Grid is a rows x cols board of cell tags. The zero value is not usable;
// construct with NewGrid. Cells are private so that every consumer outside
// this package goes through At or a defensive Copy.
type Grid struct {
	rows  int
	cols  int
	cells [][]int
}

// NewGrid returns an all-water grid of the given dimensions.
func NewGrid(rows, cols int) *Grid {
	cells := make([][]int, rows)
	for y := range cells {
		cells[y] = make([]int, cols)
	}
	return &Grid{rows: rows, cols: cols, cells: cells}
}

func (g *Grid) Rows() int { return g.rows }

func (g *Grid) Cols() int { return g.cols }

// At returns the tag at (x, y). x is the column, y the row.
func (g *Grid) At(x, y int) int {
	return g.cells[y][x]
}

// Set writes the tag at (x, y).
func (g *Grid) Set(x, y, tag int) {
	g.cells[y][x] = tag
}

// InBounds reports whether (x, y) lies on the board.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// Copy returns a deep copy of the grid.
func (g *Grid) Copy() *Grid {
	c := NewGrid(g.rows, g.cols)
	for y := range g.cells {
		copy(c.cells[y], g.cells[y])
	}
	return c
}

// Reset clears every cell back to water.
func (g *Grid) Reset() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = Empty
		}
	}
}

// Stats returns the number of empty and occupied cells.
func (g *Grid) Stats() (empty, occupied int) {
	for y := range g.cells {
		for _, tag := range g.cells[y] {
			if tag == Empty {
				empty++
			} else {
				occupied++
			}
		}
	}
	return empty, occupied
}
