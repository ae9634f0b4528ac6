package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/cli"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/config"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/service"
	"github.com/linda-alhadari/Lenda-s-BE-Projects-Tracker/internal/source"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags, err := cli.ParseGlobalFlags(os.Args[1:])
	if err != nil {
		return err
	}

	cfg, err := config.Load(flags.Config)
	if err != nil {
		return err
	}
	if flags.Source != "" {
		cfg.Source = flags.Source
	}
	if flags.Watch {
		cfg.Watch = true
	}
	if flags.Output != "" {
		cfg.Output = flags.Output
	}

	interactive := func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	logger, closeLog, err := newLogger(cfg, interactive())
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loader, err := source.Open(cfg.Source)
	if err != nil {
		return err
	}

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewSlogUseCaseObserver(logger))
	}

	initial, err := cfg.FilterState()
	if err != nil {
		return err
	}
	data := service.NewDashboardService(loader, logger, observers...)
	dashboard := service.NewController(data, initial, cfg.InitialTab(), observers...)
	_, loadErr := dashboard.Reload(ctx)
	if loadErr != nil {
		logger.Warn("initial load failed", "source", loader.Name(), "error", loadErr)
	}

	app := &cli.App{
		Dashboard:     dashboard,
		Convert:       service.NewConvertService(observers...),
		LoadErr:       loadErr,
		Output:        cfg.Output,
		IsInteractive: interactive,
	}

	if cfg.Watch {
		target, ok := loader.(source.Watchable)
		if !ok {
			return fmt.Errorf("source %s cannot be watched", loader.Name())
		}
		w, err := source.NewWatcher(target, cfg.WatchDebounce, logger)
		if err != nil {
			return fmt.Errorf("creating watcher: %w", err)
		}
		if err := w.Start(ctx); err != nil {
			return fmt.Errorf("starting watcher: %w", err)
		}
		defer w.Stop()
		app.Changes = w.Changes()
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

// newLogger writes to the configured log file when set. Without one, plain
// commands log to stderr and the interactive dashboard discards logs so
// they cannot corrupt the screen.
func newLogger(cfg config.Config, interactive bool) (*slog.Logger, func(), error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeFn = func() {
			if err := f.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
				fmt.Fprintf(os.Stderr, "closing log file: %v\n", err)
			}
		}
	case interactive:
		return slog.New(slog.DiscardHandler), closeFn, nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), closeFn, nil
}
