package connection

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// probeFunc is one bounded connectivity attempt, already bound to its
// target arguments.
type probeFunc func(ctx context.Context) (Status, error)

// MonitorByName repeats the name-resolution probe once per interval
// and streams only status changes. Arguments are validated before the
// stream starts, so a misuse surfaces here as ErrEmptyHost rather than
// inside a tick; after that the stream never fails.
//
// The first probe fires after one full interval, its result is always
// emitted, and consecutive identical results are coalesced. A
// non-positive interval selects DefaultInterval. Cancelling ctx stops
// probing and closes the channel; a result from a probe in flight at
// cancellation is discarded, never delivered.
func (c *Checker) MonitorByName(ctx context.Context, host string, interval, timeout time.Duration) (<-chan Status, error) {
	host, err := normalizeHost(host)
	if err != nil {
		return nil, err
	}

	return c.monitor(ctx, interval, func(ctx context.Context) (Status, error) {
		return c.CheckByName(ctx, host, timeout)
	}), nil
}

// MonitorByConnect repeats the raw-connection probe once per interval
// and streams only status changes. Semantics match MonitorByName; an
// empty host or out-of-range port is rejected before the stream starts.
func (c *Checker) MonitorByConnect(ctx context.Context, host string, port int, interval, timeout time.Duration) (<-chan Status, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return nil, ErrEmptyHost
	}

	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPort, port)
	}

	return c.monitor(ctx, interval, func(ctx context.Context) (Status, error) {
		return c.CheckByConnect(ctx, host, port, timeout)
	}), nil
}

// MonitorByName opens a change stream with the default Checker.
func MonitorByName(ctx context.Context, host string, interval, timeout time.Duration) (<-chan Status, error) {
	return defaultChecker.MonitorByName(ctx, host, interval, timeout)
}

// MonitorByConnect opens a change stream with the default Checker.
func MonitorByConnect(ctx context.Context, host string, port int, interval, timeout time.Duration) (<-chan Status, error) {
	return defaultChecker.MonitorByConnect(ctx, host, port, interval, timeout)
}

func (c *Checker) monitor(ctx context.Context, interval time.Duration, probe probeFunc) <-chan Status {
	if interval <= 0 {
		interval = DefaultInterval
	}

	ch := make(chan Status)

	go func() {
		defer close(ch)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		var (
			prev Status
			seen bool
		)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				status, err := probe(ctx)

				// A probe that was in flight when the consumer
				// cancelled completes, but its result is dropped.
				if ctx.Err() != nil {
					return
				}

				if err != nil {
					// Arguments were validated before the stream
					// started, so fold anything unexpected into the
					// environmental-failure outcome.
					status = StatusDisconnected
				}

				if seen && status == prev {
					continue
				}

				select {
				case ch <- status:
					prev, seen = status, true
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch
}
