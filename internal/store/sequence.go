package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// sequenceCounter numbers game results in the order they were saved. Two
// games can finish in the same millisecond, so played_at cannot order the
// log on its own.
type sequenceCounter struct {
	mu     sync.Mutex
	db     *sql.DB
	b      *entsql.DialectBuilder
	last   int64
	primed bool
}

func newSequenceCounter(db *sql.DB) *sequenceCounter {
	return &sequenceCounter{db: db, b: entsql.Dialect(dialect.SQLite)}
}

// Next returns the number for the next saved result. The first call picks
// up after the highest number already in the log.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if !sc.primed {
		query, args := sc.b.Select(entsql.Max("sequence")).
			From(entsql.Table(resultsTable)).
			Query()
		var top sql.NullInt64
		if err := sc.db.QueryRowContext(ctx, query, args...).Scan(&top); err != nil {
			return 0, fmt.Errorf("read last sequence: %w", err)
		}
		sc.last = top.Int64
		sc.primed = true
	}

	sc.last++
	return sc.last, nil
}

// resetLocked forgets the last number so the next call primes again.
// sc.mu must be held.
func (sc *sequenceCounter) resetLocked() {
	sc.last = 0
	sc.primed = false
}
