package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"spritegen/internal/app"
	"spritegen/internal/config"
	"spritegen/internal/logging"

	flags "github.com/jessevdk/go-flags"
)

func main() {
	rootCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	opts, err := config.ParseOptions(nil)
	if err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}
	if err := config.Validate(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	os.Exit(run(rootCtx, opts))
}

func run(ctx context.Context, opts config.Options) int {
	logger := logging.New(opts.Debug)

	lock, err := acquireOutputLock(opts.OutDir)
	if err != nil {
		if errors.Is(err, app.ErrOutputLocked) {
			fmt.Fprintln(os.Stderr, "Another spritegen run is writing to", opts.OutDir)
			return 1
		}
		logger.Error("failed to lock output directory", logging.Field("error", err))
		return 1
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("release output lock", logging.Field("error", err))
		}
	}()

	if _, err := app.New(opts, logger, os.Stdout).RunContext(ctx); err != nil {
		logger.Error("sprite generation failed", logging.Field("error", err))
		return 1
	}
	return 0
}
