package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer persists batch results as CSV files under a timestamped directory.
type Writer struct {
	baseDir string
}

func NewWriter(name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("results", name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WriteBattleRecords(records []BattleRecord) error {
	// Create a file
	path := filepath.Join(w.baseDir, "battle_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create battle records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{"id", "starting_player", "winner", "moves", "start_time", "end_time", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write battle records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.StartingPlayer),
			strconv.Itoa(record.Winner),
			strconv.Itoa(record.Moves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write battle record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	// Create a file
	path := filepath.Join(w.baseDir, "move_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create move records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{"battle", "move", "player", "x", "y", "hit", "sunk"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write move records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Battle),
			strconv.Itoa(record.Move),
			strconv.Itoa(record.Player),
			strconv.Itoa(record.X),
			strconv.Itoa(record.Y),
			strconv.FormatBool(record.Hit),
			strconv.FormatBool(record.Sunk),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write move record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteSummary(summary Summary) error {
	// Create a file
	path := filepath.Join(w.baseDir, "summary.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"battles", "player1_wins", "player2_wins", "draws", "average_moves"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write summary header: %w", err)
	}

	row := []string{
		strconv.Itoa(summary.Battles),
		strconv.Itoa(summary.Player1),
		strconv.Itoa(summary.Player2),
		strconv.Itoa(summary.Draws),
		strconv.FormatFloat(summary.AverageMoves(), 'f', 2, 64),
	}
	err = writer.Write(row)
	if err != nil {
		return fmt.Errorf("failed to write summary row: %w", err)
	}

	return nil
}
