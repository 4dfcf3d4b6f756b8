package bladekit

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/bladekit/bladekit/pkg/watcher"
)

// Run starts the HTTP server and blocks until shutdown. It handles SIGINT
// and SIGTERM for graceful shutdown, and runs the resource watcher when
// watching is enabled.
func (a *App) Run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return a.run(ctx)
}

// Stop triggers graceful shutdown programmatically. Useful for testing or
// when shutdown needs to be initiated from code. Safe for concurrent and
// repeated calls.
func (a *App) Stop() {
	a.stopOnce.Do(func() {
		close(a.done)
	})
}

func (a *App) run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info("server starting",
			slog.String("address", ln.Addr().String()),
			slog.String("app", a.cfg.App),
		)
		if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if a.watch && a.cfg.ResourceDir != "" {
		w, err := watcher.New(a.cfg.ResourceDir, a.onResourceChange, watcher.WithLogger(a.log))
		if err != nil {
			return errors.Join(err, ln.Close())
		}
		g.Go(func() error {
			if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		select {
		case <-ctx.Done():
		case <-a.done:
			cancel()
		}

		a.log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()
		return a.server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		a.log.Error("shutdown completed with errors", slog.Any("error", err))
		return err
	}

	a.log.Info("shutdown completed")
	return nil
}

func (a *App) onResourceChange(path string) {
	a.log.Info("resource changed", slog.String("path", path))
	if err := a.Reload(); err != nil {
		a.log.Error("reload failed, previous resources remain active", slog.Any("error", err))
	}
}
