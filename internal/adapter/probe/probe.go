// Package probe adapts the connection library's probing strategies to
// the ports.ConnectivityMonitor interface consumed by the watch loop.
package probe

import (
	"context"
	"time"

	connection "github.com/Cagdassrgl/internet-connection"
	"github.com/Cagdassrgl/internet-connection/internal/ports"
)

// NameMonitor probes connectivity by resolving a hostname.
type NameMonitor struct {
	checker  *connection.Checker
	host     string
	interval time.Duration
	timeout  time.Duration
}

func NewNameMonitor(checker *connection.Checker, host string, interval, timeout time.Duration) *NameMonitor {
	return &NameMonitor{
		checker:  checker,
		host:     host,
		interval: interval,
		timeout:  timeout,
	}
}

func (m *NameMonitor) Strategy() ports.Strategy { return ports.StrategyName }

func (m *NameMonitor) Check(ctx context.Context) (connection.Status, error) {
	return m.checker.CheckByName(ctx, m.host, m.timeout)
}

func (m *NameMonitor) Watch(ctx context.Context) (<-chan connection.Status, error) {
	return m.checker.MonitorByName(ctx, m.host, m.interval, m.timeout)
}

// ConnectMonitor probes connectivity by opening a TCP connection.
type ConnectMonitor struct {
	checker  *connection.Checker
	host     string
	port     int
	interval time.Duration
	timeout  time.Duration
}

func NewConnectMonitor(checker *connection.Checker, host string, port int, interval, timeout time.Duration) *ConnectMonitor {
	return &ConnectMonitor{
		checker:  checker,
		host:     host,
		port:     port,
		interval: interval,
		timeout:  timeout,
	}
}

func (m *ConnectMonitor) Strategy() ports.Strategy { return ports.StrategyConnect }

func (m *ConnectMonitor) Check(ctx context.Context) (connection.Status, error) {
	return m.checker.CheckByConnect(ctx, m.host, m.port, m.timeout)
}

func (m *ConnectMonitor) Watch(ctx context.Context) (<-chan connection.Status, error) {
	return m.checker.MonitorByConnect(ctx, m.host, m.port, m.interval, m.timeout)
}

var (
	_ ports.ConnectivityMonitor = (*NameMonitor)(nil)
	_ ports.ConnectivityMonitor = (*ConnectMonitor)(nil)
)
