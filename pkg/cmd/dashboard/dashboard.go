package dashboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chicco-carone/F1-2018-Terminal-Dashboard/log"
	"github.com/chicco-carone/F1-2018-Terminal-Dashboard/pkg/config"
	"github.com/chicco-carone/F1-2018-Terminal-Dashboard/pkg/display"
	"github.com/chicco-carone/F1-2018-Terminal-Dashboard/pkg/loop"
	"github.com/chicco-carone/F1-2018-Terminal-Dashboard/pkg/processing"
	"github.com/chicco-carone/F1-2018-Terminal-Dashboard/pkg/telemetry"
)

func NewDashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "starts the live telemetry dashboard",
		Long: `Listens for F1 2018 UDP telemetry and renders the player car's
speed, gear, RPM, pedals, g-force, fuel and tyre data. Press q to quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard()
		},
	}
	cmd.Flags().StringVarP(&config.Addr,
		"addr",
		"a",
		telemetry.DefaultAddr,
		"UDP listen address for telemetry packets")
	cmd.Flags().StringVar(&config.LogLevel,
		"log-level",
		"info",
		"controls the log level (debug, info, warn, error, fatal)")
	cmd.Flags().StringVar(&config.LogFormat,
		"log-format",
		"json",
		"controls the log output format")
	cmd.Flags().StringVar(&config.LogFile,
		"log-file",
		"",
		"write logs to this file (the terminal itself is taken by the dashboard)")
	return cmd
}

func parseLogLevel(l string, defaultVal log.Level) log.Level {
	level, err := log.ParseLevel(l)
	if err != nil {
		return defaultVal
	}
	return level
}

func setupLogger() (func(), error) {
	var sink io.Writer = io.Discard
	cleanup := func() {}
	if config.LogFile != "" {
		f, err := os.OpenFile(config.LogFile,
			os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		sink = f
		cleanup = func() { f.Close() }
	}

	var logger *log.Logger
	switch config.LogFormat {
	case "json":
		logger = log.New(sink, parseLogLevel(config.LogLevel, log.InfoLevel))
	default:
		logger = log.DevLogger(sink, parseLogLevel(config.LogLevel, log.DebugLevel))
	}
	log.ResetDefault(logger)
	return cleanup, nil
}

func runDashboard() error {
	cleanup, err := setupLogger()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("signal received, shutting down")
		cancel()
	}()

	source := telemetry.NewSource(
		telemetry.WithAddr(config.Addr),
		telemetry.WithLogger(log.Default().Named("telemetry")))
	events, err := source.Run(ctx)
	if err != nil {
		return err
	}

	screen, err := display.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()

	frameLoop := loop.New(events,
		processing.NewSnapshotProcessor(),
		display.NewRenderer(),
		screen,
		loop.WithLogger(log.Default().Named("loop")))

	err = frameLoop.Run(ctx)
	switch {
	case errors.Is(err, loop.ErrSurfaceTooSmall):
		screen.Fini()
		fmt.Fprintf(os.Stderr,
			"Terminal too small, need at least %dx%d cells.\n",
			display.MinWidth, display.MinHeight)
		return nil
	case errors.Is(err, context.Canceled):
		return nil
	default:
		return err
	}
}
