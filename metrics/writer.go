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

func NewWriter(dir string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir returns the directory the report files are written to.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAttackRecords(records []AttackRecord) error {
	path := filepath.Join(w.baseDir, "attacks.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create attack records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"step", "from", "to", "attacker", "defender", "attacker_color", "defender_color",
		"attack_roll", "defense_roll", "winner", "conquered", "error"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write attack records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Step),
			strconv.Itoa(record.From),
			strconv.Itoa(record.To),
			record.Attacker,
			record.Defender,
			record.AttackerColor,
			record.DefenderColor,
			strconv.Itoa(record.AttackRoll),
			strconv.Itoa(record.DefenseRoll),
			record.Winner,
			strconv.FormatBool(record.Conquered),
			record.Error,
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write attack record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush attack records: %w", err)
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

	header := []string{"player_color", "mission", "start_time", "end_time", "duration", "attacks", "refused",
		"attacker_wins", "defender_wins", "conquests", "mission_checks", "won"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write session header: %w", err)
	}

	row := []string{
		metric.PlayerColor,
		metric.Mission,
		metric.StartTime.Format(time.RFC3339),
		metric.EndTime.Format(time.RFC3339),
		metric.Duration.String(),
		strconv.Itoa(metric.Attacks),
		strconv.Itoa(metric.Refused),
		strconv.Itoa(metric.AttackerWins),
		strconv.Itoa(metric.DefenderWins),
		strconv.Itoa(metric.Conquests),
		strconv.Itoa(metric.MissionChecks),
		strconv.FormatBool(metric.Won),
	}
	err = writer.Write(row)
	if err != nil {
		return fmt.Errorf("failed to write session row: %w", err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush session: %w", err)
	}
	return nil
}
