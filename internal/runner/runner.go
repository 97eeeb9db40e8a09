package runner

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"
)

// shutdownTimeout bounds graceful HTTP server shutdown.
const shutdownTimeout = 5 * time.Second

// Worker is a long-running task driven by a context.
type Worker interface {
	Start(ctx context.Context) error
}

// HTTPServer is the subset of http.Server the runner needs.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// Runner starts workers and HTTP servers together and stops them together.
// The first error reported by any of them is the error Run returns; context
// cancellation is a clean stop, not an error.
type Runner struct {
	mu      sync.Mutex
	workers []Worker
	servers []HTTPServer
	wg      sync.WaitGroup
	errCh   chan error
}

// NewRunner creates a new Runner.
func NewRunner() *Runner {
	return &Runner{
		errCh: make(chan error, 1),
	}
}

// AddWorker registers a worker to be started by Run.
func (r *Runner) AddWorker(worker Worker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.workers = append(r.workers, worker)
}

// AddHTTPServer registers an HTTP server to be started by Run.
func (r *Runner) AddHTTPServer(srv HTTPServer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.servers = append(r.servers, srv)
}

// Run starts everything registered so far and blocks until the context is
// cancelled, everything finishes on its own, or something fails.
func (r *Runner) Run(ctx context.Context) error {
	r.mu.Lock()
	workers := append([]Worker(nil), r.workers...)
	servers := append([]HTTPServer(nil), r.servers...)
	r.mu.Unlock()

	for _, worker := range workers {
		r.startWorker(ctx, worker)
	}
	for _, srv := range servers {
		r.startHTTPServer(ctx, srv)
	}

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-r.errCh:
		return err
	case <-done:
		return nil
	}
}

func (r *Runner) startWorker(ctx context.Context, worker Worker) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		if err := worker.Start(ctx); err != nil {
			r.report(err)
		}
	}()
}

func (r *Runner) startHTTPServer(ctx context.Context, srv HTTPServer) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		serveErr := make(chan error, 1)
		go func() {
			serveErr <- srv.ListenAndServe()
		}()

		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				r.report(err)
			}
		case err := <-serveErr:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				r.report(err)
			}
		}
	}()
}

// report keeps only the first error.
func (r *Runner) report(err error) {
	select {
	case r.errCh <- err:
	default:
	}
}
