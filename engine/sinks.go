package engine

import (
	"fmt"
	"io"

	"battleship/game"

	"github.com/rs/zerolog/log"
)

func outcome(e MoveEvent) string {
	switch {
	case e.Hit && e.Sunk:
		return "Hit and Sunk"
	case e.Hit:
		return "Hit"
	default:
		return "Miss"
	}
}

// LogSink reports every move through the global structured logger.
type LogSink struct{}

func (LogSink) OnMove(e MoveEvent) {
	log.Info().Msgf("move %d: player %d attacks (%d,%d) -> %s", e.Move, e.Player, e.X, e.Y, outcome(e))
}

func (LogSink) OnBattleEnd(r BattleResult) {
	if r.Winner == 0 {
		log.Info().Msgf("battle drawn after %d moves", r.Moves)
	} else {
		log.Info().Msgf("player %d wins after %d moves", r.Winner, r.Moves)
	}
}

// TextSink appends a plain-text battle log to a writer, one line per move.
type TextSink struct {
	w io.Writer
}

func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: w}
}

func (s *TextSink) OnMove(e MoveEvent) {
	fmt.Fprintf(s.w, "Move %d: Player %d attacks (%d,%d) -> %s\n", e.Move, e.Player, e.X, e.Y, outcome(e))
}

func (s *TextSink) OnBattleEnd(r BattleResult) {
	if r.Winner == 0 {
		fmt.Fprintf(s.w, "Battle drawn after %d moves\n", r.Moves)
	} else {
		fmt.Fprintf(s.w, "Player %d wins after %d moves\n", r.Winner, r.Moves)
	}
}

// BoardSink tracks what each side's board looks like from the outside, one
// overlay grid of Hit/Sunk/Miss tags per side, and renders both as ASCII when
// the battle ends.
type BoardSink struct {
	w      io.Writer
	boards [2]*game.Grid
}

func NewBoardSink(w io.Writer, rows, cols int) *BoardSink {
	return &BoardSink{
		w:      w,
		boards: [2]*game.Grid{game.NewGrid(rows, cols), game.NewGrid(rows, cols)},
	}
}

func (s *BoardSink) OnMove(e MoveEvent) {
	board := s.boards[2-e.Player] // the board under attack
	if !e.Hit {
		board.Set(e.X, e.Y, game.Miss)
		return
	}
	board.Set(e.X, e.Y, game.Hit)
	if e.Sunk {
		region := game.FloodFill(game.Point{X: e.X, Y: e.Y},
			func(p game.Point) bool { return board.InBounds(p.X, p.Y) },
			func(p game.Point) bool { return board.At(p.X, p.Y) == game.Hit })
		for _, p := range region {
			board.Set(p.X, p.Y, game.Sunk)
		}
	}
}

func (s *BoardSink) OnBattleEnd(r BattleResult) {
	for i, board := range s.boards {
		fmt.Fprintf(s.w, "Player %d board:\n", i+1)
		for y := 0; y < board.Rows(); y++ {
			for x := 0; x < board.Cols(); x++ {
				switch board.At(x, y) {
				case game.Hit:
					fmt.Fprint(s.w, "x")
				case game.Sunk:
					fmt.Fprint(s.w, "X")
				case game.Miss:
					fmt.Fprint(s.w, "o")
				default:
					fmt.Fprint(s.w, ".")
				}
			}
			fmt.Fprintln(s.w)
		}
	}
}
