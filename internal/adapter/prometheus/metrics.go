package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	status           *prometheus.GaugeVec
	lastChange       *prometheus.GaugeVec
	statusReports    *prometheus.CounterVec
	strategiesActive prometheus.Gauge
}

const (
	prefix = "connectivity_"

	strategyLabel = "strategy"
)

func newMetrics(reg *prometheus.Registry) (*metrics, error) {
	m := &metrics{
		status: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: prefix + "status",
			Help: "Connectivity status reported by a probing strategy (1: connected, 0: disconnected or unknown)",
		}, []string{strategyLabel}),
		lastChange: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: prefix + "last_change_timestamp_seconds",
			Help: "Unix time of the last reported status change per strategy",
		}, []string{strategyLabel}),
		statusReports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "status_reports_total",
			Help: "Number of connectivity status reports published per strategy",
		}, []string{strategyLabel}),
		strategiesActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: prefix + "strategies_active",
			Help: "Number of probing strategies currently being watched",
		}),
	}

	err := register(reg,
		m.status,
		m.lastChange,
		m.statusReports,
		m.strategiesActive,
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func register(r *prometheus.Registry, cs ...prometheus.Collector) error {
	for i, c := range cs {
		if err := r.Register(c); err != nil {
			for _, c := range cs[:i] {
				r.Unregister(c)
			}

			return err
		}
	}

	return nil
}
