package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"kv", "game_results", "global_sequence"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twice.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := s.KV().Set(ctx, "numberrush_highscore", "120"); err != nil {
		t.Fatalf("set: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer s.Close()

	got, err := s.KV().Get(ctx, "numberrush_highscore")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "120" {
		t.Errorf("value = %q, want %q", got, "120")
	}
}

func testKV(t *testing.T, kv KVRepo) {
	ctx := context.Background()

	if _, err := kv.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get missing: err = %v, want ErrNotFound", err)
	}

	if err := kv.Set(ctx, "a", "1"); err != nil {
		t.Fatalf("set a: %v", err)
	}
	if err := kv.Set(ctx, "a", "2"); err != nil {
		t.Fatalf("overwrite a: %v", err)
	}
	if err := kv.Set(ctx, "b", `["first_blastoff"]`); err != nil {
		t.Fatalf("set b: %v", err)
	}
	if err := kv.Set(ctx, "c", "keep"); err != nil {
		t.Fatalf("set c: %v", err)
	}

	got, err := kv.Get(ctx, "a")
	if err != nil {
		t.Fatalf("get a: %v", err)
	}
	if got != "2" {
		t.Errorf("a = %q, want %q", got, "2")
	}

	if err := kv.Remove(ctx, "a", "b", "never-set"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	for _, k := range []string{"a", "b"} {
		if _, err := kv.Get(ctx, k); !errors.Is(err, ErrNotFound) {
			t.Errorf("get %s after remove: err = %v, want ErrNotFound", k, err)
		}
	}
	if got, err := kv.Get(ctx, "c"); err != nil || got != "keep" {
		t.Errorf("c = %q, %v; want %q", got, err, "keep")
	}

	if err := kv.Remove(ctx); err != nil {
		t.Errorf("remove nothing: %v", err)
	}
}

func TestKVRepo(t *testing.T) {
	testKV(t, openTestStore(t).KV())
}

func TestMemoryKV(t *testing.T) {
	testKV(t, NewMemoryKV())
}

func testResults(t *testing.T, repo ResultRepo) {
	ctx := context.Background()

	results, err := repo.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("recent (empty): %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}

	base := time.Now().Truncate(time.Millisecond)
	for i := 0; i < 4; i++ {
		r := &GameResult{
			PlayedAt:   base,
			Mode:       "blitz",
			Level:      i%3 + 1,
			Advanced:   i%2 == 1,
			Score:      (i + 1) * 10,
			Answered:   i + 2,
			Correct:    i + 1,
			BestStreak: i,
			PlayerName: "Ada",
		}
		if err := repo.Append(ctx, r); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
		if r.ID == "" {
			t.Errorf("append %d: ID not assigned", i)
		}
		if r.Sequence != int64(i+1) {
			t.Errorf("append %d: sequence = %d, want %d", i, r.Sequence, i+1)
		}
	}

	results, err = repo.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("recent returned %d results, want 3", len(results))
	}
	// Same played_at for all; sequence breaks the tie, newest first.
	for i, want := range []int{40, 30, 20} {
		if results[i].Score != want {
			t.Errorf("results[%d].Score = %d, want %d", i, results[i].Score, want)
		}
	}
	first := results[0]
	if !first.Advanced || first.Level != 1 || first.PlayerName != "Ada" || first.Mode != "blitz" {
		t.Errorf("round trip mismatch: %+v", first)
	}
	if !first.PlayedAt.Equal(base) {
		t.Errorf("played_at = %v, want %v", first.PlayedAt, base)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	results, err = repo.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("recent after clear: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results after clear, got %d", len(results))
	}
}

func TestResultRepo(t *testing.T) {
	testResults(t, openTestStore(t).Results())
}

func TestMemoryResults(t *testing.T) {
	testResults(t, NewMemoryResults())
}

func TestGameResultAccuracy(t *testing.T) {
	tests := []struct {
		answered, correct int
		want              float64
	}{
		{0, 0, 0},
		{4, 3, 0.75},
		{5, 5, 1},
	}
	for _, tt := range tests {
		r := GameResult{Answered: tt.answered, Correct: tt.correct}
		if got := r.Accuracy(); got != tt.want {
			t.Errorf("Accuracy(%d/%d) = %v, want %v", tt.correct, tt.answered, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc := newSequenceCounter(s.DB())
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if want := int64(i + 1); seq != want {
			t.Errorf("seq[%d] = %d, want %d", i, seq, want)
		}
	}
}

func TestSequenceResumesAfterReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seq.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := s.Results().Append(ctx, &GameResult{Mode: "blitz", Level: 1}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	r := &GameResult{Mode: "practice", Level: 1}
	if err := s.Results().Append(ctx, r); err != nil {
		t.Fatalf("append: %v", err)
	}
	if r.Sequence != 4 {
		t.Errorf("sequence after reopen = %d, want 4", r.Sequence)
	}
}

func TestClearRestartsSequence(t *testing.T) {
	ctx := context.Background()
	s, err := Open(filepath.Join(t.TempDir(), "clear.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	repos := map[string]ResultRepo{
		"sqlite": s.Results(),
		"memory": NewMemoryResults(),
	}
	for name, repo := range repos {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 3; i++ {
				if err := repo.Append(ctx, &GameResult{Mode: "blitz", Level: 1}); err != nil {
					t.Fatalf("append: %v", err)
				}
			}
			if err := repo.Clear(ctx); err != nil {
				t.Fatalf("clear: %v", err)
			}

			r := &GameResult{Mode: "practice", Level: 2}
			if err := repo.Append(ctx, r); err != nil {
				t.Fatalf("append: %v", err)
			}
			if r.Sequence != 1 {
				t.Errorf("sequence after clear = %d, want 1", r.Sequence)
			}
			got, err := repo.Recent(ctx, 0)
			if err != nil {
				t.Fatalf("recent: %v", err)
			}
			if len(got) != 1 || got[0].Sequence != 1 {
				t.Errorf("recent after clear = %+v", got)
			}
		})
	}
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Run("env override", func(t *testing.T) {
		want := filepath.Join(dir, "custom", "rush.db")
		t.Setenv("NUMBERRUSH_DB", want)
		got, err := DefaultDBPath()
		if err != nil {
			t.Fatalf("DefaultDBPath: %v", err)
		}
		if got != want {
			t.Errorf("path = %q, want %q", got, want)
		}
	})

	t.Run("xdg data home", func(t *testing.T) {
		t.Setenv("NUMBERRUSH_DB", "")
		t.Setenv("XDG_DATA_HOME", dir)
		got, err := DefaultDBPath()
		if err != nil {
			t.Fatalf("DefaultDBPath: %v", err)
		}
		want := filepath.Join(dir, "numberrush", "numberrush.db")
		if got != want {
			t.Errorf("path = %q, want %q", got, want)
		}
	})
}
