package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	connection "github.com/Cagdassrgl/internet-connection"
	"github.com/Cagdassrgl/internet-connection/internal/adapter/httpsrv"
	"github.com/Cagdassrgl/internet-connection/internal/adapter/probe"
	"github.com/Cagdassrgl/internet-connection/internal/adapter/prometheus"
	"github.com/Cagdassrgl/internet-connection/internal/common/logging"
	"github.com/Cagdassrgl/internet-connection/internal/ports"
	"github.com/Cagdassrgl/internet-connection/internal/usecase"
)

type Watch struct {
	Interval       time.Duration `name:"interval" env:"WATCH_INTERVAL" default:"30s" help:"The interval between connectivity probes (e.g., 10s, 1m)."`
	Name           bool          `name:"name" env:"WATCH_NAME" default:"true" help:"Enable the name-resolution probing strategy. Enabled by default."`
	NameHost       string        `name:"name.host" env:"WATCH_NAME_HOST" default:"google.com" help:"Hostname resolved by the name-resolution strategy."`
	NameTimeout    time.Duration `name:"name.timeout" env:"WATCH_NAME_TIMEOUT" default:"10s" help:"The maximum duration to wait for one name resolution."`
	Connect        bool          `name:"connect" env:"WATCH_CONNECT" default:"true" help:"Enable the raw-connection probing strategy. Enabled by default."`
	ConnectHost    string        `name:"connect.host" env:"WATCH_CONNECT_HOST" default:"8.8.8.8" help:"Host dialed by the raw-connection strategy."`
	ConnectPort    int           `name:"connect.port" env:"WATCH_CONNECT_PORT" default:"53" help:"Port dialed by the raw-connection strategy."`
	ConnectTimeout time.Duration `name:"connect.timeout" env:"WATCH_CONNECT_TIMEOUT" default:"3s" help:"The maximum duration to wait for one connection attempt."`
}

type Metrics struct {
	Addr string `name:"addr" env:"METRICS_ADDR" default:"0.0.0.0:8080" help:"HTTP Address to bind Prometheus metrics"`
	Path string `name:"path" env:"METRICS_PATH" default:"/metrics" help:"Path to serve Prometheus metrics"`
}

type Serve struct {
	Watch    Watch   `embed:"" prefix:"watch."`
	Metrics  Metrics `embed:"" prefix:"metrics."`
	LogLevel string  `name:"log.level" env:"LOG_LEVEL" default:"info" help:"Log level (debug, info, warn, error)"`
}

func serve(cli *CLI) error {
	ctx := context.Background()
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logLevel, err := parseLogLevel(cli.Serve.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}

	logger := slog.New(logging.NewEnhancedHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: logLevel,
		}),
	)).With(logging.NewProgramAttr())

	exporter, err := prometheus.NewExporter()
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create prometheus exporter", logging.Error(err))
		return err
	}

	publisher := prometheus.NewStatusPublisher(logger, exporter)

	checker := connection.NewChecker()
	monitors := buildMonitors(checker, &cli.Serve.Watch)
	publisher.SetActiveStrategies(len(monitors))

	uc := usecase.NewWatchConnectivityUseCase(logger, publisher, monitors...)

	httpsrv := httpsrv.NewServer(cli.Serve.Metrics.Addr, httpsrv.Options{
		MetricsPath:    cli.Serve.Metrics.Path,
		MetricsHandler: exporter.Handler(),
	})

	defer func() {
		logger.InfoContext(ctx, "Stopping...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		logger.InfoContext(ctx, "Stopping HTTP Server...")
		if serr := httpsrv.Shutdown(shutdownCtx); serr != nil {
			logger.ErrorContext(ctx, "Failed to stop HTTP Server", logging.Error(serr))
		}

		logger.InfoContext(ctx, "Stopped")
	}()

	errCh := make(chan error)

	go func() {
		logger.InfoContext(ctx, "Start HTTP Server", slog.String("address", httpsrv.ListenAddr()))

		if err := httpsrv.Start(); err != nil {
			logger.ErrorContext(ctx, "Failed to start HTTP Server", logging.Error(err))
			errCh <- err
		}
	}()

	go func() {
		logger.InfoContext(ctx, "Start watching connectivity",
			slog.Duration("interval", cli.Serve.Watch.Interval),
			slog.Int("strategies", len(monitors)))

		if err := uc.Execute(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.ErrorContext(ctx, "Connectivity watch failed", logging.Error(err))
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return nil
	}
}

func buildMonitors(checker *connection.Checker, w *Watch) []ports.ConnectivityMonitor {
	var monitors []ports.ConnectivityMonitor

	if w.Name {
		monitors = append(monitors, probe.NewNameMonitor(checker, w.NameHost, w.Interval, w.NameTimeout))
	}

	if w.Connect {
		monitors = append(monitors, probe.NewConnectMonitor(checker, w.ConnectHost, w.ConnectPort, w.Interval, w.ConnectTimeout))
	}

	return monitors
}

func (c *CLI) Validate() error {
	var errs []error

	s := &c.Serve
	w := &s.Watch

	if w.Interval <= 0 {
		errs = append(errs, fmt.Errorf("--watch.interval: must be greater than zero"))
	}

	if !w.Name && !w.Connect {
		errs = append(errs, errors.New("at least one of --watch.name or --watch.connect must be enabled"))
	}

	if w.Name {
		if strings.TrimSpace(w.NameHost) == "" {
			errs = append(errs, fmt.Errorf("--watch.name.host: must not be empty"))
		}

		if w.NameTimeout <= 0 {
			errs = append(errs, fmt.Errorf("--watch.name.timeout: must be greater than zero"))
		}

		if w.Interval <= w.NameTimeout {
			errs = append(errs, fmt.Errorf("--watch.interval: must be greater than --watch.name.timeout"))
		}
	}

	if w.Connect {
		if strings.TrimSpace(w.ConnectHost) == "" {
			errs = append(errs, fmt.Errorf("--watch.connect.host: must not be empty"))
		}

		if w.ConnectPort < 1 || w.ConnectPort > 65535 {
			errs = append(errs, fmt.Errorf("--watch.connect.port: must be within 1-65535"))
		}

		if w.ConnectTimeout <= 0 {
			errs = append(errs, fmt.Errorf("--watch.connect.timeout: must be greater than zero"))
		}

		if w.Interval <= w.ConnectTimeout {
			errs = append(errs, fmt.Errorf("--watch.interval: must be greater than --watch.connect.timeout"))
		}
	}

	if !isTCPAddr(s.Metrics.Addr) {
		errs = append(errs, fmt.Errorf("--metrics.addr: must be a valid tcp listening address (e.g. 0.0.0.0:8080)"))
	}

	if !isLogLevel(s.LogLevel) {
		errs = append(errs, fmt.Errorf("--log.level: must be one of debug, info, warn, error"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

func parseLogLevel(levelStr string) (slog.Level, error) {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.Level(-1), fmt.Errorf("invalid log level: %s", levelStr)
	}
}
