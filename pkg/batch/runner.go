package batch

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/japaniel/alveare/pkg/alveare"
	"github.com/japaniel/alveare/pkg/db"
)

// Result is the outcome of generating the board for one requested seed.
type Result struct {
	Seed  int64
	Board *alveare.Board
	Err   error
}

// Runner generates boards for many seeds concurrently. Every seed gets its
// own generator call, so the boards are identical to sequential generation.
type Runner struct {
	Generator      *alveare.Generator
	Dictionary     []string
	RequirePangram bool

	// DB, when set, receives every generated board through a BatchWriter.
	DB        *sql.DB
	BatchSize int

	Workers int
	// Logger is used for informational messages. nil means no logging.
	Logger *log.Logger
	// OnProgress is called with the number of finished seeds and the total.
	OnProgress func(done, total int)

	// PoolFactory allows tests to inject custom worker pool implementations.
	PoolFactory func(workers, queue int) Pool
}

// NewRunner returns a Runner with default concurrency settings.
func NewRunner(gen *alveare.Generator, dict []string) *Runner {
	return &Runner{
		Generator:  gen,
		Dictionary: dict,
		BatchSize:  50,
		Workers:    4,
	}
}

// Run generates a board for every seed and returns the results in seed
// order. A seed without a playable board is reported in its Result, not as
// an error; the returned error is for cancellation and storage failures.
func (r *Runner) Run(ctx context.Context, seeds []int64) ([]Result, error) {
	total := len(seeds)
	results := make([]Result, total)
	if total == 0 {
		return results, nil
	}

	workers := r.Workers
	if workers <= 0 {
		workers = 1
	}
	var pool Pool
	if r.PoolFactory != nil {
		pool = r.PoolFactory(workers, workers*2)
	} else {
		pool = NewWorkerPool(workers, workers*2)
	}

	type indexed struct {
		idx int
		res Result
	}
	resultCh := make(chan indexed, workers*2)

	var bw *BatchWriter
	if r.DB != nil {
		bw = NewBatchWriter(r.DB, r.BatchSize, 100*time.Millisecond)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	pool.Start(ctx)

	// The consumer stores results and hands boards to the writer in seed
	// order, whatever order the workers finish in.
	doneCh := make(chan error, 1)
	go func() {
		pending := make(map[int]Result)
		next := 0
		for item := range resultCh {
			pending[item.idx] = item.res
			for {
				res, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				results[next] = res
				if bw != nil && res.Board != nil {
					if err := bw.Submit(saveBoard(res.Board)); err != nil {
						cancel()
						doneCh <- err
						return
					}
				}
				next++
				if r.OnProgress != nil {
					r.OnProgress(next, total)
				}
			}
		}
		doneCh <- nil
	}()

	var submitErr error
Loop:
	for i, seed := range seeds {
		idx, seed := i, seed
		job := func(ctx context.Context) error {
			b, err := r.Generator.Generate(seed, r.Dictionary, r.RequirePangram)
			select {
			case resultCh <- indexed{idx, Result{Seed: seed, Board: b, Err: err}}:
			case <-ctx.Done():
			}
			return err
		}
		if err := pool.SubmitCtx(ctx, job); err != nil {
			if !errors.Is(err, ErrPoolClosed) {
				submitErr = err
			}
			break Loop
		}
	}

	// Once the pool is closed no worker can send, so closing resultCh is safe.
	pool.Close()
	close(resultCh)
	consumerErr := <-doneCh

	if bw != nil {
		if err := bw.Close(); err != nil && consumerErr == nil {
			consumerErr = err
		}
	}
	if consumerErr != nil {
		return results, consumerErr
	}
	if submitErr != nil {
		return results, submitErr
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}
	if r.Logger != nil {
		r.Logger.Printf("generated %d boards", total)
	}
	return results, nil
}

// ToRecord converts a board to its archived form.
func ToRecord(b *alveare.Board) db.BoardRecord {
	return db.BoardRecord{
		Seed:           b.Seed,
		Center:         b.Center,
		Outer:          b.Outer,
		Words:          b.ValidWords,
		Scores:         b.Scores,
		TotalPoints:    b.TotalPoints,
		Threshold:      b.Threshold,
		Pangrams:       len(b.Pangrams),
		PangramRelaxed: b.PangramRelaxed,
	}
}

func saveBoard(b *alveare.Board) WriteFunc {
	rec := ToRecord(b)
	return func(ctx context.Context, tx *sql.Tx) error {
		return db.SaveBoard(tx, rec)
	}
}
