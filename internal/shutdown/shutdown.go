// Package shutdown runs long-lived services until they finish or the process
// is asked to stop.
package shutdown

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Signals are the process signals that trigger a graceful stop.
var Signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// Run starts runner and blocks until it returns or a stop signal arrives.
// On a signal the runner's context is cancelled and stop is called; Run then
// waits up to timeout for the runner to return. A runner that ends because
// its context was cancelled is not an error.
func Run(
	ctx context.Context,
	logger *slog.Logger,
	timeout time.Duration,
	runner func(ctx context.Context) error,
	stop func(ctx context.Context) error,
) error {
	sigCtx, stopSignals := signal.NotifyContext(ctx, Signals...)
	defer stopSignals()

	runCtx, cancelRun := context.WithCancel(sigCtx)
	defer cancelRun()

	runDone := make(chan error, 1)
	go func() {
		runDone <- runner(runCtx)
	}()

	select {
	case err := <-runDone:
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	case <-sigCtx.Done():
	}

	logger.Info("stop requested, shutting down")
	cancelRun()

	stopCtx, cancelStop := context.WithTimeout(context.Background(), timeout)
	defer cancelStop()

	if stop != nil {
		if err := stop(stopCtx); err != nil {
			logger.Error("shutdown error", "error", err)
		}
	}

	select {
	case err := <-runDone:
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	case <-stopCtx.Done():
		logger.Warn("shutdown timeout exceeded")
	}

	logger.Info("shutdown complete")
	return nil
}
