package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

func NewWriter(root, sessionID string) (*Writer, error) {
	// One subfolder per session
	baseDir := filepath.Join(root, sessionID)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteBattleRecords(records []BattleRecord) error {
	path := filepath.Join(w.baseDir, "battles.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create battle records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"turn", "time", "attacker", "attacker_color", "defender", "defender_color",
		"attack_roll", "defense_roll", "attacker_won", "conquered", "attacker_troops", "defender_troops"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write battle records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Turn),
			record.Time.Format(time.RFC3339),
			record.AttackerName,
			record.AttackerColor,
			record.DefenderName,
			record.DefenderColor,
			strconv.Itoa(record.AttackRoll),
			strconv.Itoa(record.DefenseRoll),
			strconv.FormatBool(record.AttackerWon),
			strconv.FormatBool(record.Conquered),
			strconv.Itoa(record.AttackerTroops),
			strconv.Itoa(record.DefenderTroops),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write battle record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush battle records: %w", err)
	}
	return nil
}

func (w *Writer) WriteSessionMetric(metric SessionMetric) error {
	path := filepath.Join(w.baseDir, "session.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create session file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	rows := [][]string{
		{"session_id", "start_time", "end_time", "duration", "battles", "conquests", "rejected", "mission_done"},
		{
			metric.SessionID,
			metric.StartTime.Format(time.RFC3339),
			metric.EndTime.Format(time.RFC3339),
			metric.Duration.String(),
			strconv.Itoa(metric.Battles),
			strconv.Itoa(metric.Conquests),
			strconv.Itoa(metric.Rejected),
			strconv.FormatBool(metric.MissionDone),
		},
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write session metric: %w", err)
	}
	return nil
}
