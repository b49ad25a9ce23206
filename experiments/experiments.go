// Package experiments runs batches of independent battles and aggregates
// their outcomes. Battles share nothing, so the batch fans out over a worker
// pool; every battle seeds its own RNG from the batch seed and its battle
// number, keeping results reproducible regardless of worker count.
package experiments

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"battleship/engine"
	"battleship/experiments/metrics"
	"battleship/game"
	"battleship/strategy"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Config struct {
	Battles     int
	Rows, Cols  int
	Counts      map[int]int // ship id -> instance count, both sides
	Workers     int         // worker goroutines, minimum 1
	Seed        uint64
	Verbose     bool // log every move through the structured logger
	RecordMoves bool // collect per-move records for CSV output
}

// Results is everything a batch produces.
type Results struct {
	Summary metrics.Summary
	Battles []metrics.BattleRecord
	Moves   []metrics.MoveRecord
}

// Run executes the configured batch. The returned records are ordered by
// battle number, independent of which worker finished first.
func Run(cfg Config) (Results, error) {
	if cfg.Battles <= 0 {
		return Results{}, fmt.Errorf("battle count must be positive, got %d", cfg.Battles)
	}
	if total := game.TotalTiles(cfg.Counts); total > cfg.Rows*cfg.Cols {
		return Results{}, fmt.Errorf("%d tiles on a %dx%d board: %w",
			total, cfg.Rows, cfg.Cols, game.ErrInsufficientSpace)
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	log.Info().Msgf("starting batch of %d battles on a %dx%d board with %d workers...",
		cfg.Battles, cfg.Rows, cfg.Cols, workers)

	tasks := make(chan int, cfg.Battles)
	for n := 1; n <= cfg.Battles; n++ {
		tasks <- n
	}
	close(tasks)

	type outcome struct {
		battle metrics.BattleRecord
		moves  []metrics.MoveRecord
		err    error
	}
	outcomes := make(chan outcome, cfg.Battles)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := range tasks {
				battle, moves, err := runBattle(cfg, n)
				outcomes <- outcome{battle: battle, moves: moves, err: err}
			}
		}()
	}
	wg.Wait()
	close(outcomes)

	var results Results
	for o := range outcomes {
		if o.err != nil {
			return Results{}, o.err
		}
		results.Battles = append(results.Battles, o.battle)
		results.Moves = append(results.Moves, o.moves...)
	}
	sort.Slice(results.Battles, func(i, j int) bool {
		return results.Battles[i].ID < results.Battles[j].ID
	})
	sort.Slice(results.Moves, func(i, j int) bool {
		a, b := results.Moves[i], results.Moves[j]
		if a.Battle != b.Battle {
			return a.Battle < b.Battle
		}
		return a.Move < b.Move
	})
	for _, battle := range results.Battles {
		results.Summary.Add(battle)
	}

	log.Info().Msgf("completed batch: %d battles, %d / %d / %d wins and draws",
		results.Summary.Battles, results.Summary.Player1, results.Summary.Player2, results.Summary.Draws)

	return results, nil
}

// runBattle plays battle n of the batch: two placer-backed boards, two
// probability-map strategies, starting player alternating by battle number.
func runBattle(cfg Config, n int) (metrics.BattleRecord, []metrics.MoveRecord, error) {
	rng := rand.New(rand.NewSource(cfg.Seed + uint64(n)))
	starting := 2 - n%2 // odd battle numbers start with player 1

	var sinks []engine.Sink
	var recorder *moveRecorder
	if cfg.RecordMoves {
		recorder = &moveRecorder{battle: n}
		sinks = append(sinks, recorder)
	}
	if cfg.Verbose {
		sinks = append(sinks, engine.LogSink{})
	}

	e := engine.NewLocalEngine(cfg.Rows, cfg.Cols,
		engine.Side{
			Setup:    engine.NewSetup(cfg.Rows, cfg.Cols, cfg.Counts, rng),
			Strategy: strategy.NewTargeting(cfg.Rows, cfg.Cols, cfg.Counts),
		},
		engine.Side{
			Setup:    engine.NewSetup(cfg.Rows, cfg.Cols, cfg.Counts, rng),
			Strategy: strategy.NewTargeting(cfg.Rows, cfg.Cols, cfg.Counts),
		},
		engine.WithStartingPlayer(starting),
		engine.WithSinks(sinks...))

	startTime := time.Now()
	result, err := e.Run()
	if err != nil {
		return metrics.BattleRecord{}, nil, fmt.Errorf("battle %d: %w", n, err)
	}
	endTime := time.Now()

	record := metrics.BattleRecord{
		ID:             n,
		StartingPlayer: starting,
		Winner:         result.Winner,
		Moves:          result.Moves,
		StartTime:      startTime,
		EndTime:        endTime,
		Duration:       endTime.Sub(startTime),
	}
	var moves []metrics.MoveRecord
	if recorder != nil {
		moves = recorder.records
	}
	return record, moves, nil
}

// moveRecorder is a sink collecting move records for one battle.
type moveRecorder struct {
	battle  int
	records []metrics.MoveRecord
}

func (r *moveRecorder) OnMove(e engine.MoveEvent) {
	r.records = append(r.records, metrics.MoveRecord{
		Battle: r.battle,
		Move:   e.Move,
		Player: e.Player,
		X:      e.X,
		Y:      e.Y,
		Hit:    e.Hit,
		Sunk:   e.Sunk,
	})
}

func (r *moveRecorder) OnBattleEnd(engine.BattleResult) {}

// RandomFleet draws ship ids uniformly until the fleet covers at least 30%
// of the board area.
func RandomFleet(rows, cols int, rng *rand.Rand) map[int]int {
	target := rows * cols * 3 / 10
	counts := make(map[int]int)
	total := 0
	for total < target {
		id := rng.Intn(7) + 1
		counts[id]++
		total += game.ShapeByID(id).Size
	}
	return counts
}
