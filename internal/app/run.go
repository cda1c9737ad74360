package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/shandysiswandi/gobank/internal/pkg/pkgerror"
)

// Process exit statuses.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitInterrupted = 130
)

// Start runs the console session (and the statement server when enabled)
// and returns a channel that yields the process exit status once.
func (a *App) Start() <-chan int {
	exit := make(chan int, 2)

	if a.httpServer != nil {
		a.goroutine.Go(a.ctx, "statement server", func(ctx context.Context) error {
			slog.InfoContext(ctx, "statement server listening", "address", a.httpServer.Addr)

			if err := a.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				slog.ErrorContext(ctx, "failed to listen and serve statement server", "error", err)
				return err
			}
			return nil
		})
	}

	// The session blocks on stdin, which cannot be interrupted, so it is
	// left out of the goroutine manager that Stop waits on.
	go func() {
		exit <- exitCode(a.bank.Run(a.ctx))
	}()

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigint)

		select {
		case <-sigint:
			slog.Info("interrupted, shutting down")
			a.cancel()
			exit <- ExitInterrupted
		case <-a.ctx.Done():
		}
	}()

	return exit
}

func (a *App) Stop(ctx context.Context) {
	if a.cancel != nil {
		a.cancel()
	}

	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", "HTTP Server", "error", err)
		}
	}

	slog.InfoContext(ctx, "waiting for all goroutine to finish")
	if err := a.goroutine.Wait(); err != nil {
		slog.ErrorContext(ctx, "error from goroutines executions", "error", err)
	}

	for name, closer := range a.closerFn {
		if err := closer(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", name, "error", err)
		}
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case pkgerror.HasCode(err, pkgerror.CodeUnauthorized):
		return ExitFailure
	default:
		slog.Error("session failed", "error", err)
		return ExitFailure
	}
}
