package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"war/game"
)

func fixedClock(times ...time.Time) func() time.Time {
	i := 0
	return func() time.Time {
		t := times[i]
		if i < len(times)-1 {
			i++
		}
		return t
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCollector(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c := &collector{now: fixedClock(start, start.Add(time.Second), start.Add(2*time.Second), start.Add(time.Minute))}

	c.Start("session-1")
	c.AddBattle(1, game.BattleOutcome{AttackRoll: 6, DefenseRoll: 1, AttackerWon: true, Conquered: true})
	c.AddBattle(2, game.BattleOutcome{AttackRoll: 2, DefenseRoll: 5})
	c.AddRejected()
	c.SetMissionDone(true)

	battles := c.Battles()
	require.Len(t, battles, 2)
	require.Equal(t, 1, battles[0].Turn)
	require.Equal(t, start.Add(time.Second), battles[0].Time)
	require.True(t, battles[0].Conquered)

	got := c.Complete()
	require.Equal(t, SessionMetric{
		SessionID:   "session-1",
		StartTime:   start,
		EndTime:     start.Add(time.Minute),
		Duration:    time.Minute,
		Battles:     2,
		Conquests:   1,
		Rejected:    1,
		MissionDone: true,
	}, got)
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.Start("x")
	c.AddBattle(1, game.BattleOutcome{Conquered: true})
	require.Nil(t, c.Battles())
	require.Equal(t, SessionMetric{}, c.Complete())
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "abc")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "abc"), w.Dir())

	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	t.Run("battle records", func(t *testing.T) {
		err := w.WriteBattleRecords([]BattleRecord{{
			Turn: 3,
			Time: ts,
			BattleOutcome: game.BattleOutcome{
				AttackerName: "Europa", AttackerColor: "Azul",
				DefenderName: "América", DefenderColor: "Verde",
				AttackRoll: 6, DefenseRoll: 1, AttackerWon: true, Conquered: true,
				AttackerTroops: 2, DefenderTroops: 1,
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(root, "abc", "battles.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, "turn", rows[0][0])
		require.Equal(t, []string{"3", "2024-05-01T12:00:00Z", "Europa", "Azul", "América", "Verde",
			"6", "1", "true", "true", "2", "1"}, rows[1])
	})

	t.Run("session metric", func(t *testing.T) {
		err := w.WriteSessionMetric(SessionMetric{
			SessionID: "abc", StartTime: ts, EndTime: ts.Add(time.Minute), Duration: time.Minute,
			Battles: 4, Conquests: 1, Rejected: 2,
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(root, "abc", "session.csv"))
		require.Equal(t, []string{"abc", "2024-05-01T12:00:00Z", "2024-05-01T12:01:00Z", "1m0s", "4", "1", "2", "false"}, rows[1])
	})
}
