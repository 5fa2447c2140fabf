package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const resultsTable = "game_results"

var resultColumns = []string{
	"id", "sequence", "played_at", "mode", "level", "advanced",
	"score", "answered", "correct", "best_streak", "player_name",
}

type resultRepo struct {
	db  *sql.DB
	b   *entsql.DialectBuilder
	seq *sequenceCounter
}

func (r *resultRepo) Append(ctx context.Context, res *GameResult) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	res.Sequence = seqNum
	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	if res.PlayedAt.IsZero() {
		res.PlayedAt = time.Now()
	}

	query, args := r.b.Insert(resultsTable).
		Columns(resultColumns...).
		Values(
			res.ID, res.Sequence, res.PlayedAt.UnixMilli(), res.Mode, res.Level,
			boolToInt(res.Advanced), res.Score, res.Answered, res.Correct,
			res.BestStreak, res.PlayerName,
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save game result: %w", err)
	}
	return nil
}

func (r *resultRepo) Recent(ctx context.Context, limit int) ([]GameResult, error) {
	sel := r.b.Select(resultColumns...).
		From(entsql.Table(resultsTable)).
		OrderBy(entsql.Desc("sequence"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query game results: %w", err)
	}
	defer rows.Close()

	var out []GameResult
	for rows.Next() {
		var (
			res      GameResult
			playedAt int64
			advanced int
		)
		if err := rows.Scan(
			&res.ID, &res.Sequence, &playedAt, &res.Mode, &res.Level, &advanced,
			&res.Score, &res.Answered, &res.Correct, &res.BestStreak, &res.PlayerName,
		); err != nil {
			return nil, fmt.Errorf("scan game result: %w", err)
		}
		res.PlayedAt = time.UnixMilli(playedAt)
		res.Advanced = advanced != 0
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate game results: %w", err)
	}
	return out, nil
}

// Clear empties the log and restarts numbering at 1.
func (r *resultRepo) Clear(ctx context.Context) error {
	r.seq.mu.Lock()
	defer r.seq.mu.Unlock()

	query, args := r.b.Delete(resultsTable).Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear game results: %w", err)
	}
	r.seq.resetLocked()
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
