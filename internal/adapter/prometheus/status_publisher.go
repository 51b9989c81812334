package prometheus

import (
	"context"
	"log/slog"

	connection "github.com/Cagdassrgl/internet-connection"
	"github.com/Cagdassrgl/internet-connection/internal/ports"
)

// StatusPublisher records connectivity statuses as Prometheus gauges,
// one time series per probing strategy.
type StatusPublisher struct {
	logger   *slog.Logger
	exporter *Exporter
}

func NewStatusPublisher(logger *slog.Logger, exporter *Exporter) *StatusPublisher {
	return &StatusPublisher{
		logger:   logger,
		exporter: exporter,
	}
}

func (p *StatusPublisher) Publish(ctx context.Context, strategy ports.Strategy, status connection.Status) error {
	p.logger.DebugContext(ctx, "Publishing connectivity status",
		slog.Group("publish",
			slog.String("strategy", string(strategy)),
			slog.String("status", status.String()),
		))

	var value float64
	if status.IsConnected() {
		value = 1.0
	}

	m := p.exporter.metrics
	label := string(strategy)

	m.status.WithLabelValues(label).Set(value)
	m.lastChange.WithLabelValues(label).SetToCurrentTime()
	m.statusReports.WithLabelValues(label).Inc()

	return nil
}

// SetActiveStrategies records how many strategies the daemon watches.
func (p *StatusPublisher) SetActiveStrategies(n int) {
	p.exporter.metrics.strategiesActive.Set(float64(n))
}
