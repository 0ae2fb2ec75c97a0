// Package bootstrap provides application lifecycle helpers.
package bootstrap

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// DefaultShutdownTimeout bounds the time shutdown hooks may take.
const DefaultShutdownTimeout = 10 * time.Second

// App manages application lifecycle with graceful shutdown support.
type App struct {
	mu              sync.Mutex
	hooks           []func(ctx context.Context) error
	shutdownTimeout time.Duration
}

// New creates a new App.
func New() *App {
	return &App{shutdownTimeout: DefaultShutdownTimeout}
}

// WithShutdownTimeout sets the deadline passed to shutdown hooks. Non-positive values keep the default.
func (a *App) WithShutdownTimeout(timeout time.Duration) *App {
	if timeout > 0 {
		a.shutdownTimeout = timeout
	}
	return a
}

// AddShutdownHook registers a function to call during graceful shutdown.
// Hooks run in reverse order (LIFO). Thread-safe.
func (a *App) AddShutdownHook(fn func(ctx context.Context) error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, fn)
}

// AddCloser registers c to be closed during shutdown.
func (a *App) AddCloser(c io.Closer) {
	a.AddShutdownHook(func(context.Context) error {
		return c.Close()
	})
}

// Run sets up signal handling and executes the run function.
// Shutdown hooks run in LIFO order on SIGINT, SIGTERM, cancellation of ctx,
// or after run returns. The error of run takes precedence over hook errors.
func (a *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx)
		close(errCh)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer shutdownCancel()
	if err := a.shutdown(shutdownCtx); err != nil && runErr == nil {
		return err
	}
	return runErr
}

func (a *App) shutdown(ctx context.Context) error {
	a.mu.Lock()
	hooks := a.hooks
	a.hooks = nil
	a.mu.Unlock()

	var errs []error
	for i := len(hooks) - 1; i >= 0; i-- {
		if err := hooks[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
