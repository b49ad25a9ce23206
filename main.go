package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"battleship/experiments"
	"battleship/experiments/metrics"
	"battleship/game"

	"github.com/charmbracelet/log"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	verbose := flag.Bool("v", false, "verbose output; log every move")
	count := flag.Int("c", 100, "number of battles to simulate")
	width := flag.Int("W", 10, "board width")
	height := flag.Int("H", 10, "board height")
	list := flag.String("l", "", "comma-separated ship counts for ids 1..7; empty generates a random fleet")
	workers := flag.Int("workers", 4, "battles resolved concurrently")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "batch seed")
	record := flag.String("record", "", "write CSV records under results/<name>")
	flag.Parse()

	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	counts, err := fleetCounts(*list, *height, *width, *seed)
	if err != nil {
		log.Fatal("invalid ship counts", "err", err)
	}
	log.Info("fleet configured", "counts", fleetString(counts), "tiles", game.TotalTiles(counts))

	results, err := experiments.Run(experiments.Config{
		Battles:     *count,
		Rows:        *height,
		Cols:        *width,
		Counts:      counts,
		Workers:     *workers,
		Seed:        *seed,
		Verbose:     *verbose,
		RecordMoves: *record != "",
	})
	if err != nil {
		log.Fatal("batch failed", "err", err)
	}

	if *record != "" {
		if err := writeRecords(*record, results); err != nil {
			log.Fatal("failed to write records", "err", err)
		}
		log.Info("records written", "name", *record)
	}

	s := results.Summary
	fmt.Println("=== Overall Battle Results ===")
	fmt.Printf("Total battles: %d\n", s.Battles)
	fmt.Printf("Player 1 wins: %d\n", s.Player1)
	fmt.Printf("Player 2 wins: %d\n", s.Player2)
	fmt.Printf("Draws: %d\n", s.Draws)
	fmt.Printf("Average game length: %.2f moves\n", s.AverageMoves())
}

// fleetCounts parses the -l flag, or draws a random fleet filling at least
// 30% of the board when the flag is absent.
func fleetCounts(list string, rows, cols int, seed uint64) (map[int]int, error) {
	if list == "" {
		rng := rand.New(rand.NewSource(seed))
		return experiments.RandomFleet(rows, cols, rng), nil
	}

	fields := strings.Split(list, ",")
	if len(fields) != 7 {
		return nil, fmt.Errorf("want 7 comma-separated integers, got %d", len(fields))
	}
	counts := make(map[int]int, 7)
	for i, field := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("ship %d count: %w", i+1, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("ship %d count must not be negative", i+1)
		}
		counts[i+1] = n
	}
	return counts, nil
}

func fleetString(counts map[int]int) string {
	fields := make([]string, 0, 7)
	for _, id := range game.ShipIDs() {
		fields = append(fields, strconv.Itoa(counts[id]))
	}
	return strings.Join(fields, ",")
}

func writeRecords(name string, results experiments.Results) error {
	writer, err := metrics.NewWriter(name)
	if err != nil {
		return err
	}
	if err := writer.WriteBattleRecords(results.Battles); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(results.Moves); err != nil {
		return err
	}
	return writer.WriteSummary(results.Summary)
}
