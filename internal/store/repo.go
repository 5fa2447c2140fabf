package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by KVRepo.Get when the key has never been set.
var ErrNotFound = errors.New("store: key not found")

// KVRepo is a string-keyed store of plain-text values.
type KVRepo interface {
	// Get returns the value for key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes the given keys. Missing keys are ignored.
	Remove(ctx context.Context, keys ...string) error
}

// GameResult is one finished game in the results log.
type GameResult struct {
	ID         string
	Sequence   int64
	PlayedAt   time.Time
	Mode       string
	Level      int
	Advanced   bool
	Score      int
	Answered   int
	Correct    int
	BestStreak int
	PlayerName string
}

// Accuracy returns the fraction of answers that were correct.
func (r GameResult) Accuracy() float64 {
	if r.Answered == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Answered)
}

// ResultRepo is the append-only log of finished games.
type ResultRepo interface {
	// Append records a result. Sequence is assigned by the repo.
	Append(ctx context.Context, r *GameResult) error

	// Recent returns up to limit results, newest first. limit <= 0 means all.
	Recent(ctx context.Context, limit int) ([]GameResult, error)

	// Clear deletes every result. Numbering restarts at 1.
	Clear(ctx context.Context) error
}
