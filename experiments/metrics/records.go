package metrics

import "time"

// BattleRecord captures the outcome of one battle in a batch.
type BattleRecord struct {
	ID             int // 1-based battle number within the batch
	StartingPlayer int
	Winner         int // 0 for a draw
	Moves          int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}

// MoveRecord captures one resolved attack, for move-level CSV output.
type MoveRecord struct {
	Battle int
	Move   int
	Player int
	X, Y   int
	Hit    bool
	Sunk   bool
}

// Summary aggregates battle records. Add is associative and commutative, so
// records may arrive in any completion order.
type Summary struct {
	Battles    int
	Player1    int
	Player2    int
	Draws      int
	TotalMoves int
}

func (s *Summary) Add(r BattleRecord) {
	s.Battles++
	s.TotalMoves += r.Moves
	switch r.Winner {
	case 1:
		s.Player1++
	case 2:
		s.Player2++
	default:
		s.Draws++
	}
}

// AverageMoves returns the mean battle length, 0 for an empty batch.
func (s Summary) AverageMoves() float64 {
	if s.Battles == 0 {
		return 0
	}
	return float64(s.TotalMoves) / float64(s.Battles)
}
