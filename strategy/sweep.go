package strategy

// Sweeper attacks every cell exactly once in row-major order. It ignores all
// feedback, which makes it a deterministic baseline opponent for tests and
// matchup experiments.
type Sweeper struct {
	rows, cols int
	next       int
}

func NewSweeper(rows, cols int) *Sweeper {
	return &Sweeper{rows: rows, cols: cols}
}

func (s *Sweeper) NextAttack() (int, int, error) {
	if s.next >= s.rows*s.cols {
		return 0, 0, ErrNoAttacksRemaining
	}
	x := s.next % s.cols
	y := s.next / s.cols
	s.next++
	return x, y, nil
}

func (s *Sweeper) RegisterAttack(x, y int, hit, sunk bool) {}
