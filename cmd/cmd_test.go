package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/numberrush/internal/badges"
	"github.com/abhisek/numberrush/internal/game"
	"github.com/abhisek/numberrush/internal/settings"
	"github.com/abhisek/numberrush/internal/store"
)

// execute runs the root command against a database in a fresh temp dir.
func execute(t *testing.T, db string, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append(args, "--db", db))
	err := rootCmd.Execute()
	return out.String(), err
}

func testDB(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("NUMBERRUSH_DB", "")
	t.Setenv("NUMBERRUSH_TIMER", "")
	return filepath.Join(dir, "numberrush.db")
}

func TestConfigSetAndGet(t *testing.T) {
	db := testDB(t)

	out, err := execute(t, db, "", "config", "set", "name", "  Ada  ")
	require.NoError(t, err)
	assert.Contains(t, out, `name = "Ada"`)

	out, err = execute(t, db, "", "config", "get", "name")
	require.NoError(t, err)
	assert.Equal(t, "Ada\n", out)

	_, err = execute(t, db, "", "config", "set", "timer", "15")
	require.NoError(t, err)
	out, err = execute(t, db, "", "config", "get", "timer")
	require.NoError(t, err)
	assert.Equal(t, "15\n", out)
}

func TestConfigSetRejectsBadTimer(t *testing.T) {
	db := testDB(t)

	_, err := execute(t, db, "", "config", "set", "timer", "7")
	assert.ErrorIs(t, err, settings.ErrInvalidTimer)

	_, err = execute(t, db, "", "config", "set", "timer", "soon")
	assert.ErrorIs(t, err, settings.ErrInvalidTimer)
}

func TestConfigGetDefaultTimer(t *testing.T) {
	db := testDB(t)
	out, err := execute(t, db, "", "config", "get", "timer")
	require.NoError(t, err)
	assert.Equal(t, "10\n", out)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, testDB(t), "", "version")
	require.NoError(t, err)
	assert.Equal(t, "numberrush (devel)\n", out)
}

func TestStatsOnEmptyDatabase(t *testing.T) {
	out, err := execute(t, testDB(t), "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "High score:      0")
	assert.Contains(t, out, "Badges:          0/11")
}

func TestHistoryShowsSavedGames(t *testing.T) {
	db := testDB(t)

	st, err := store.Open(db)
	require.NoError(t, err)
	require.NoError(t, st.Results().Append(context.Background(), &store.GameResult{
		PlayedAt:   time.Date(2026, 3, 4, 15, 30, 0, 0, time.Local),
		Mode:       "blitz",
		Level:      2,
		Advanced:   true,
		Score:      120,
		Answered:   14,
		Correct:    12,
		BestStreak: 7,
	}))
	require.NoError(t, st.Close())

	out, err := execute(t, db, "", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "2026-03-04 15:30")
	assert.Contains(t, out, "120 pts")
	assert.Contains(t, out, "12/14 correct")
	assert.Contains(t, out, "chaos")
}

func TestHistoryEmpty(t *testing.T) {
	out, err := execute(t, testDB(t), "", "history")
	require.NoError(t, err)
	assert.Equal(t, "No games yet.\n", out)
}

func TestResetAbortsWithoutConfirmation(t *testing.T) {
	out, err := execute(t, testDB(t), "n\n", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted.")
}

func TestResetErasesStats(t *testing.T) {
	db := testDB(t)

	st, err := store.Open(db)
	require.NoError(t, err)
	require.NoError(t, st.KV().Set(context.Background(), game.KeyHighScore, "250"))
	require.NoError(t, st.Close())

	out, err := execute(t, db, "yes\n", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Progress erased.")

	out, err = execute(t, db, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "High score:      0")
}

func TestPlayRejectsBadFlags(t *testing.T) {
	db := testDB(t)

	_, err := execute(t, db, "", "play", "--mode", "marathon")
	assert.Error(t, err)

	_, err = execute(t, db, "", "play", "--mode", "blitz", "--level", "9")
	assert.Error(t, err)
}

func TestPrintBadgesMarksUnlocked(t *testing.T) {
	var buf bytes.Buffer
	printBadges(&buf, []badges.ID{badges.FirstBlastoff})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, len(badges.Catalog()))
	assert.True(t, strings.HasPrefix(lines[0], "✓ "))
	assert.Contains(t, lines[0], "First Blastoff")
	assert.False(t, strings.HasPrefix(lines[1], "✓ "))
}

func TestPrintStatsIncludesName(t *testing.T) {
	var buf bytes.Buffer
	printStats(&buf, game.Stats{HighScore: 90, BestStreak: 4}, "Ada")

	out := buf.String()
	assert.Contains(t, out, "Player:          Ada")
	assert.Contains(t, out, "High score:      90")
	assert.Contains(t, out, "Best streak:     4")
}

func TestConfirm(t *testing.T) {
	var out bytes.Buffer
	assert.True(t, confirm(strings.NewReader("Y\n"), &out, "? "))
	assert.False(t, confirm(strings.NewReader("\n"), &out, "? "))
	assert.False(t, confirm(strings.NewReader(""), &out, "? "))
	assert.Equal(t, "? ? ? ", out.String())
}
