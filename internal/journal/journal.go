// Package journal persists one row per route query to PostgreSQL.
// Writes are asynchronous: the serving path enqueues without blocking and
// a single writer goroutine batches inserts, so a slow or absent database
// can never stall route responses.
package journal

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/qverkk/osrs-nav/internal/model"
)

// Entry is one recorded route query.
type Entry struct {
	Start       model.Coordinate
	End         model.Coordinate
	Found       bool
	Cost        uint32
	Steps       int
	Visited     uint32
	Duration    time.Duration
	CacheHit    bool
	RequestedAt time.Time
}

// Options tunes queueing and flushing. Zero values pick serving defaults.
type Options struct {
	QueueSize     int
	FlushBatch    int
	FlushInterval time.Duration
}

func (o Options) withDefaults() Options {
	if o.QueueSize <= 0 {
		o.QueueSize = 1024
	}
	if o.FlushBatch <= 0 {
		o.FlushBatch = 128
	}
	if o.FlushInterval <= 0 {
		o.FlushInterval = 5 * time.Second
	}
	return o
}

// Journal buffers entries and batch-inserts them into path_requests.
type Journal struct {
	pool     *pgxpool.Pool
	queue    chan Entry
	batch    int
	interval time.Duration
	dropped  atomic.Uint64
}

// New connects to PostgreSQL and returns a journal ready to record.
// Run must be started for entries to reach the database.
func New(ctx context.Context, dsn string, opts Options) (*Journal, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	opts = opts.withDefaults()
	return &Journal{
		pool:     pool,
		queue:    make(chan Entry, opts.QueueSize),
		batch:    opts.FlushBatch,
		interval: opts.FlushInterval,
	}, nil
}

// Record enqueues an entry without blocking. When the queue is saturated
// the entry is dropped and counted; serving latency always wins.
func (j *Journal) Record(e Entry) {
	select {
	case j.queue <- e:
	default:
		j.dropped.Add(1)
	}
}

// Dropped reports how many entries were lost to queue saturation.
func (j *Journal) Dropped() uint64 {
	return j.dropped.Load()
}

// Run writes queued entries in batches until ctx is canceled, then drains
// whatever is still queued. Always returns nil; flush failures are logged
// and dropped rather than propagated.
func (j *Journal) Run(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	pending := make([]Entry, 0, j.batch)
	for {
		select {
		case <-ctx.Done():
			for {
				select {
				case e := <-j.queue:
					pending = append(pending, e)
				default:
					j.drain(pending)
					return nil
				}
			}
		case e := <-j.queue:
			pending = append(pending, e)
			if len(pending) >= j.batch {
				j.flush(ctx, pending)
				pending = pending[:0]
			}
		case <-ticker.C:
			if len(pending) > 0 {
				j.flush(ctx, pending)
				pending = pending[:0]
			}
		}
	}
}

// drain flushes on a fresh context: the run context is already canceled
// during shutdown.
func (j *Journal) drain(pending []Entry) {
	if len(pending) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	j.flush(ctx, pending)
}

const insertEntry = `INSERT INTO path_requests
	(start_x, start_y, end_x, end_y, found, cost, steps, visited, duration_us, cache_hit, requested_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

func (j *Journal) flush(ctx context.Context, entries []Entry) {
	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(insertEntry,
			e.Start.X, e.Start.Y, e.End.X, e.End.Y,
			e.Found, int64(e.Cost), e.Steps, int64(e.Visited),
			e.Duration.Microseconds(), e.CacheHit, e.RequestedAt,
		)
	}
	if err := j.pool.SendBatch(ctx, batch).Close(); err != nil {
		slog.Error("journal flush failed", "entries", len(entries), "error", err)
	}
}

// Close closes the database connection pool.
func (j *Journal) Close() {
	j.pool.Close()
}
