package prometheus

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	connection "github.com/Cagdassrgl/internet-connection"
	"github.com/Cagdassrgl/internet-connection/internal/ports"
)

func TestStatusPublisher_PublishConnected(t *testing.T) {
	ctx := context.Background()
	exporter, publisher := newTestPublisher(t)

	err := publisher.Publish(ctx, ports.StrategyName, connection.StatusConnected)
	require.NoError(t, err)

	requireMetric(t, 1.0, exporter.metrics.status.WithLabelValues("name"))
	requireMetric(t, 1.0, exporter.metrics.statusReports.WithLabelValues("name"))
}

func TestStatusPublisher_PublishDisconnectedOverwritesStatus(t *testing.T) {
	ctx := context.Background()
	exporter, publisher := newTestPublisher(t)

	require.NoError(t, publisher.Publish(ctx, ports.StrategyConnect, connection.StatusConnected))
	require.NoError(t, publisher.Publish(ctx, ports.StrategyConnect, connection.StatusDisconnected))

	requireMetric(t, 0.0, exporter.metrics.status.WithLabelValues("connect"))
	requireMetric(t, 2.0, exporter.metrics.statusReports.WithLabelValues("connect"))
}

func TestStatusPublisher_StrategiesAreIndependentSeries(t *testing.T) {
	ctx := context.Background()
	exporter, publisher := newTestPublisher(t)

	require.NoError(t, publisher.Publish(ctx, ports.StrategyName, connection.StatusConnected))
	require.NoError(t, publisher.Publish(ctx, ports.StrategyConnect, connection.StatusDisconnected))

	requireMetric(t, 1.0, exporter.metrics.status.WithLabelValues("name"))
	requireMetric(t, 0.0, exporter.metrics.status.WithLabelValues("connect"))
}

func TestStatusPublisher_SetActiveStrategies(t *testing.T) {
	exporter, publisher := newTestPublisher(t)

	publisher.SetActiveStrategies(2)

	requireMetric(t, 2.0, exporter.metrics.strategiesActive)
}

func newTestPublisher(t *testing.T) (*Exporter, *StatusPublisher) {
	t.Helper()

	exporter, err := NewExporter()
	require.NoError(t, err)

	publisher := NewStatusPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)), exporter)

	return exporter, publisher
}

func requireMetric(t *testing.T, expected float64, metric prometheus.Collector) {
	t.Helper()

	require.InDelta(t, expected, testutil.ToFloat64(metric), 0.001)
}
