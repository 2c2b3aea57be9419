package batch

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"
)

// WriteFunc performs database writes inside the transaction of its batch.
type WriteFunc func(ctx context.Context, tx *sql.Tx) error

// ErrBatchWriterClosed is returned by Submit and Close once the writer is closed.
var ErrBatchWriterClosed = errors.New("batch writer closed")

// BatchWriter queues writes and commits them from a single goroutine, one
// transaction per batch. A batch that fails is rolled back as a whole.
type BatchWriter struct {
	db      *sql.DB
	size    int
	OnError func(error)

	mu      sync.Mutex
	room    *sync.Cond // signaled when pending shrinks or the writer closes
	pending []WriteFunc
	closed  bool

	kick chan struct{}
	quit chan struct{}
	done chan struct{}

	resMu   sync.Mutex
	err     error // first failure
	written int
}

// NewBatchWriter starts a writer committing to db in batches of batchSize.
// With flushEvery > 0 a partial batch is also committed on every tick. A nil
// db runs the writes with a nil transaction.
func NewBatchWriter(db *sql.DB, batchSize int, flushEvery time.Duration) *BatchWriter {
	if batchSize <= 0 {
		batchSize = 10
	}
	w := &BatchWriter{
		db:   db,
		size: batchSize,
		kick: make(chan struct{}, 1),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
	w.room = sync.NewCond(&w.mu)
	go w.run(flushEvery)
	return w
}

// Submit queues fn. It blocks while two batches are already waiting to be
// committed.
func (w *BatchWriter) Submit(fn WriteFunc) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for !w.closed && len(w.pending) >= 2*w.size {
		w.room.Wait()
	}
	if w.closed {
		return ErrBatchWriterClosed
	}
	w.pending = append(w.pending, fn)
	if len(w.pending) >= w.size {
		select {
		case w.kick <- struct{}{}:
		default:
		}
	}
	return nil
}

func (w *BatchWriter) run(flushEvery time.Duration) {
	defer close(w.done)
	var tick <-chan time.Time
	if flushEvery > 0 {
		t := time.NewTicker(flushEvery)
		defer t.Stop()
		tick = t.C
	}
	for {
		select {
		case <-w.kick:
		case <-tick:
		case <-w.quit:
			w.drain()
			return
		}
		w.drain()
	}
}

// drain commits everything pending, batch by batch.
func (w *BatchWriter) drain() {
	for {
		batch := w.next()
		if len(batch) == 0 {
			return
		}
		if err := w.commit(batch); err != nil {
			w.fail(err)
			continue
		}
		w.resMu.Lock()
		w.written += len(batch)
		w.resMu.Unlock()
	}
}

// next removes up to one batch from the queue.
func (w *BatchWriter) next() []WriteFunc {
	w.mu.Lock()
	defer w.mu.Unlock()
	n := min(len(w.pending), w.size)
	batch := make([]WriteFunc, n)
	copy(batch, w.pending)
	w.pending = append(w.pending[:0], w.pending[n:]...)
	w.room.Broadcast()
	return batch
}

func (w *BatchWriter) commit(batch []WriteFunc) error {
	// Background context: a closing writer still commits what it holds.
	ctx := context.Background()
	if w.db == nil {
		for _, fn := range batch {
			if err := fn(ctx, nil); err != nil {
				return err
			}
		}
		return nil
	}

	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin batch: %w", err)
	}
	defer tx.Rollback() // no-op after Commit

	for _, fn := range batch {
		if err := fn(ctx, tx); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch of %d writes: %w", len(batch), err)
	}
	return nil
}

func (w *BatchWriter) fail(err error) {
	w.resMu.Lock()
	if w.err == nil {
		w.err = err
	}
	w.resMu.Unlock()
	if w.OnError != nil {
		w.OnError(err)
	}
}

// Written returns the number of writes committed so far.
func (w *BatchWriter) Written() int {
	w.resMu.Lock()
	defer w.resMu.Unlock()
	return w.written
}

// Close commits what is queued, stops the writer and returns the first
// error any batch hit.
func (w *BatchWriter) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrBatchWriterClosed
	}
	w.closed = true
	w.room.Broadcast()
	w.mu.Unlock()

	close(w.quit)
	<-w.done

	w.resMu.Lock()
	defer w.resMu.Unlock()
	return w.err
}
