package experiments

import (
	"testing"

	"battleship/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestRun(t *testing.T) {
	t.Run("batch records arrive in battle order with alternating starters", func(t *testing.T) {
		cfg := Config{
			Battles: 5,
			Rows:    8,
			Cols:    8,
			Counts:  map[int]int{1: 1, 2: 1},
			Workers: 3,
			Seed:    42,
		}

		results, err := Run(cfg)

		require.NoError(t, err)
		require.Len(t, results.Battles, 5)
		for i, record := range results.Battles {
			require.Equal(t, i+1, record.ID, "records should be sorted by battle number")
			wantStarter := 1
			if record.ID%2 == 0 {
				wantStarter = 2
			}
			require.Equal(t, wantStarter, record.StartingPlayer)
			require.Contains(t, []int{0, 1, 2}, record.Winner)
			require.Positive(t, record.Moves)
		}
		require.Equal(t, 5, results.Summary.Battles)
		require.Equal(t, 5, results.Summary.Player1+results.Summary.Player2+results.Summary.Draws)
	})

	t.Run("identical seeds reproduce identical outcomes across worker counts", func(t *testing.T) {
		cfg := Config{
			Battles: 4,
			Rows:    6,
			Cols:    6,
			Counts:  map[int]int{1: 1},
			Seed:    7,
		}
		cfg.Workers = 1
		sequential, err := Run(cfg)
		require.NoError(t, err)
		cfg.Workers = 4
		parallel, err := Run(cfg)
		require.NoError(t, err)

		require.Equal(t, sequential.Summary, parallel.Summary)
		for i := range sequential.Battles {
			require.Equal(t, sequential.Battles[i].Winner, parallel.Battles[i].Winner)
			require.Equal(t, sequential.Battles[i].Moves, parallel.Battles[i].Moves)
		}
	})

	t.Run("move records follow battle and move order", func(t *testing.T) {
		cfg := Config{
			Battles:     3,
			Rows:        6,
			Cols:        6,
			Counts:      map[int]int{1: 1},
			Workers:     2,
			Seed:        1,
			RecordMoves: true,
		}

		results, err := Run(cfg)

		require.NoError(t, err)
		require.NotEmpty(t, results.Moves)
		for i := 1; i < len(results.Moves); i++ {
			prev, cur := results.Moves[i-1], results.Moves[i]
			inOrder := cur.Battle > prev.Battle ||
				(cur.Battle == prev.Battle && cur.Move == prev.Move+1)
			require.True(t, inOrder, "move records should be ordered by battle then move")
		}
	})

	t.Run("an oversized fleet fails fast before any battle runs", func(t *testing.T) {
		cfg := Config{
			Battles: 2,
			Rows:    3,
			Cols:    3,
			Counts:  map[int]int{7: 2},
			Seed:    1,
		}

		_, err := Run(cfg)

		require.ErrorIs(t, err, game.ErrInsufficientSpace)
	})

	t.Run("a non-positive battle count is rejected", func(t *testing.T) {
		_, err := Run(Config{Battles: 0, Rows: 10, Cols: 10})
		require.Error(t, err)
	})
}

func TestRandomFleet(t *testing.T) {
	t.Run("fleet covers at least thirty percent of the board", func(t *testing.T) {
		for seed := uint64(1); seed <= 10; seed++ {
			rng := rand.New(rand.NewSource(seed))
			counts := RandomFleet(10, 10, rng)
			require.GreaterOrEqual(t, game.TotalTiles(counts), 30)
			for id := range counts {
				require.GreaterOrEqual(t, id, 1)
				require.LessOrEqual(t, id, 7)
			}
		}
	})
}
