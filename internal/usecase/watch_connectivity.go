package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	connection "github.com/Cagdassrgl/internet-connection"
	"github.com/Cagdassrgl/internet-connection/internal/common/logging"
	"github.com/Cagdassrgl/internet-connection/internal/common/tracing"
	"github.com/Cagdassrgl/internet-connection/internal/ports"
)

// WatchConnectivityUseCase runs one watch loop per configured probing
// strategy and publishes every reported status. Each loop performs an
// immediate one-shot check so the published state is populated before
// the first monitor interval elapses, then follows the strategy's
// distinct-change stream.
type WatchConnectivityUseCase struct {
	logger    *slog.Logger
	publisher ports.StatusPublisher
	monitors  []ports.ConnectivityMonitor
}

func NewWatchConnectivityUseCase(logger *slog.Logger, publisher ports.StatusPublisher, monitors ...ports.ConnectivityMonitor) *WatchConnectivityUseCase {
	return &WatchConnectivityUseCase{
		logger:    logger,
		publisher: publisher,
		monitors:  monitors,
	}
}

// Execute blocks until ctx ends or a watch loop fails to start.
func (u *WatchConnectivityUseCase) Execute(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, m := range u.monitors {
		m := m
		g.Go(func() error {
			return u.watch(gctx, m)
		})
	}

	return g.Wait()
}

func (u *WatchConnectivityUseCase) watch(ctx context.Context, m ports.ConnectivityMonitor) error {
	ctx = tracing.WithTraceID(ctx)
	strategy := slog.String("strategy", string(m.Strategy()))

	status, err := m.Check(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}

		return fmt.Errorf("initial %s check failed: %w", m.Strategy(), err)
	}

	u.logger.InfoContext(ctx, "Initial connectivity status", strategy, slog.String("status", status.String()))
	u.publish(ctx, m.Strategy(), status)

	ch, err := m.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to start %s monitor: %w", m.Strategy(), err)
	}

	for status := range ch {
		u.logger.InfoContext(ctx, "Connectivity changed", strategy, slog.String("status", status.String()))
		u.publish(ctx, m.Strategy(), status)
	}

	// The stream only closes when ctx ends.
	return nil
}

func (u *WatchConnectivityUseCase) publish(ctx context.Context, strategy ports.Strategy, status connection.Status) {
	if err := u.publisher.Publish(ctx, strategy, status); err != nil {
		u.logger.ErrorContext(ctx, "Failed to publish connectivity status", logging.Error(err))
	}
}
