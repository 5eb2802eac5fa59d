package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"war/game"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start("blue", "Have 10 troops in a single territory")
	c.AddAttack(game.AttackOutcome{Winner: game.Attacker, Conquered: true})
	c.AddAttack(game.AttackOutcome{Winner: game.Defender})
	c.AddAttack(game.AttackOutcome{Winner: game.Defender})
	c.AddRefused()
	c.AddMissionCheck(false)
	c.AddMissionCheck(true)

	got := c.Complete()

	require.Equal(t, "blue", got.PlayerColor)
	require.Equal(t, "Have 10 troops in a single territory", got.Mission)
	require.Equal(t, 3, got.Attacks)
	require.Equal(t, 1, got.AttackerWins)
	require.Equal(t, 2, got.DefenderWins)
	require.Equal(t, 1, got.Conquests)
	require.Equal(t, 1, got.Refused)
	require.Equal(t, 2, got.MissionChecks)
	require.True(t, got.Won)
	require.False(t, got.EndTime.Before(got.StartTime))
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.Start("blue", "x")
	c.AddAttack(game.AttackOutcome{Conquered: true})
	require.Equal(t, SessionMetric{}, c.Complete())
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	records := []AttackRecord{
		{Step: 1, From: 0, To: 1, Attacker: "a", Defender: "b", AttackerColor: "blue", DefenderColor: "blue",
			AttackRoll: 5, DefenseRoll: 2, Winner: "attacker", Conquered: true},
		{Step: 2, From: 1, To: 0, Attacker: "b", Defender: "a", Error: "same faction"},
	}
	require.NoError(t, w.WriteAttackRecords(records))
	require.NoError(t, w.WriteSessionMetric(SessionMetric{PlayerColor: "blue", Attacks: 1, Refused: 1}))

	rows := readCSV(t, filepath.Join(w.Dir(), "attacks.csv"))
	require.Len(t, rows, 3, "Header plus one row per record")
	require.Equal(t, "attack_roll", rows[0][7])
	require.Equal(t, []string{"1", "0", "1", "a", "b", "blue", "blue", "5", "2", "attacker", "true", ""}, rows[1])
	require.Equal(t, "same faction", rows[2][11])

	rows = readCSV(t, filepath.Join(w.Dir(), "session.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, "blue", rows[1][0])
	require.Equal(t, "1", rows[1][5])
}

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
