package mapgen

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Result is the outcome of one dispatched generation.
type Result struct {
	Seed    int
	Map     *Map
	Err     error
	Elapsed time.Duration
}

// Worker runs map generation off the game loop. Dispatch returns at once;
// the loop picks finished maps up with Poll.
type Worker struct {
	cfg     Config
	results chan Result
	logger  *log.Logger
}

// NewWorker returns a worker generating maps with cfg. A nil logger
// discards output.
func NewWorker(cfg Config, logger *log.Logger) *Worker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Worker{cfg: cfg, results: make(chan Result, 4), logger: logger}
}

// Dispatch starts generating a map for seed on its own goroutine.
func (w *Worker) Dispatch(seed int) {
	cfg := w.cfg
	go func() {
		start := time.Now()
		m, err := Generate(seed, cfg)
		res := Result{Seed: seed, Map: m, Err: err, Elapsed: time.Since(start)}
		if err != nil {
			w.logger.Error("map generation failed", "seed", seed, "error", err)
		} else {
			w.logger.Debug("map generated", "seed", seed, "elapsed", res.Elapsed)
		}
		w.results <- res
	}()
}

// Poll returns a finished result without blocking.
func (w *Worker) Poll() (Result, bool) {
	select {
	case res := <-w.results:
		return res, true
	default:
		return Result{}, false
	}
}

// Wait blocks until a result is ready or ctx is done. It is meant for
// headless callers; the game loop uses Poll.
func (w *Worker) Wait(ctx context.Context) (Result, error) {
	select {
	case res := <-w.results:
		return res, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}
