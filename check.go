package connection

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// Defaults used by the package-level convenience layer and applied
// whenever a non-positive timeout or interval is given. An empty host
// or an out-of-range port is never defaulted; it is a usage error.
const (
	DefaultNameHost    = "google.com"
	DefaultNameTimeout = 10 * time.Second

	DefaultConnectHost    = "8.8.8.8"
	DefaultConnectPort    = 53
	DefaultConnectTimeout = 3 * time.Second

	DefaultInterval = 30 * time.Second
)

var (
	// ErrEmptyHost reports a host argument that is empty after trimming.
	ErrEmptyHost = errors.New("connection: host must not be empty")

	// ErrInvalidPort reports a port outside 1-65535.
	ErrInvalidPort = errors.New("connection: port must be within 1-65535")
)

// Resolver looks up the addresses of a host. net.DefaultResolver
// satisfies it.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// DialFunc opens a transport connection. (*net.Dialer).DialContext
// satisfies it.
type DialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// Checker probes outbound connectivity. It holds no state between
// calls and is safe for concurrent use. Construct one with NewChecker.
type Checker struct {
	resolver Resolver
	dial     DialFunc
}

// NewChecker returns a Checker backed by the system resolver and dialer.
func NewChecker() *Checker {
	return &Checker{
		resolver: net.DefaultResolver,
		dial:     (&net.Dialer{}).DialContext,
	}
}

var defaultChecker = NewChecker()

// CheckByName reports connectivity by resolving host within timeout.
// host may carry an http:// or https:// prefix and a path; only the
// hostname portion is resolved. A non-positive timeout selects
// DefaultNameTimeout.
//
// Resolution yielding at least one address means StatusConnected.
// Every environmental failure — lookup errors, an empty address list,
// the timeout elapsing — maps to StatusDisconnected with a nil error.
// An empty host returns ErrEmptyHost before any network activity, and
// a cancelled parent context returns its error with StatusUnknown.
func (c *Checker) CheckByName(ctx context.Context, host string, timeout time.Duration) (Status, error) {
	host, err := normalizeHost(host)
	if err != nil {
		return StatusUnknown, err
	}

	if timeout <= 0 {
		timeout = DefaultNameTimeout
	}

	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	addrs, err := c.resolver.LookupHost(probeCtx, host)
	if err != nil {
		// Distinguish the caller giving up from the probe timing out:
		// only the probe's own deadline counts as a connectivity signal.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return StatusUnknown, ctxErr
		}

		return StatusDisconnected, nil
	}

	if len(addrs) == 0 {
		return StatusDisconnected, nil
	}

	return StatusConnected, nil
}

// HasConnectionByName reports whether CheckByName yields StatusConnected.
func (c *Checker) HasConnectionByName(ctx context.Context, host string, timeout time.Duration) (bool, error) {
	status, err := c.CheckByName(ctx, host, timeout)
	if err != nil {
		return false, err
	}

	return status.IsConnected(), nil
}

// CheckByConnect reports connectivity by opening a TCP connection to
// host:port within timeout. The connection is closed as soon as it is
// established; confirming reachability is its only purpose. A
// non-positive timeout selects DefaultConnectTimeout.
//
// Outcome mapping mirrors CheckByName: a successful dial means
// StatusConnected, every environmental failure means StatusDisconnected
// with a nil error. An empty host or a port outside 1-65535 returns
// ErrEmptyHost or ErrInvalidPort before any network activity.
func (c *Checker) CheckByConnect(ctx context.Context, host string, port int, timeout time.Duration) (Status, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return StatusUnknown, ErrEmptyHost
	}

	if port < 1 || port > 65535 {
		return StatusUnknown, fmt.Errorf("%w: got %d", ErrInvalidPort, port)
	}

	if timeout <= 0 {
		timeout = DefaultConnectTimeout
	}

	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, err := c.dial(probeCtx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return StatusUnknown, ctxErr
		}

		return StatusDisconnected, nil
	}

	_ = conn.Close()

	return StatusConnected, nil
}

// HasConnectionByConnect reports whether CheckByConnect yields StatusConnected.
func (c *Checker) HasConnectionByConnect(ctx context.Context, host string, port int, timeout time.Duration) (bool, error) {
	status, err := c.CheckByConnect(ctx, host, port, timeout)
	if err != nil {
		return false, err
	}

	return status.IsConnected(), nil
}

// CheckByName probes connectivity with the default Checker.
func CheckByName(ctx context.Context, host string, timeout time.Duration) (Status, error) {
	return defaultChecker.CheckByName(ctx, host, timeout)
}

// HasConnectionByName probes connectivity with the default Checker.
func HasConnectionByName(ctx context.Context, host string, timeout time.Duration) (bool, error) {
	return defaultChecker.HasConnectionByName(ctx, host, timeout)
}

// CheckByConnect probes connectivity with the default Checker.
func CheckByConnect(ctx context.Context, host string, port int, timeout time.Duration) (Status, error) {
	return defaultChecker.CheckByConnect(ctx, host, port, timeout)
}

// HasConnectionByConnect probes connectivity with the default Checker.
func HasConnectionByConnect(ctx context.Context, host string, port int, timeout time.Duration) (bool, error) {
	return defaultChecker.HasConnectionByConnect(ctx, host, port, timeout)
}

// normalizeHost trims the input and reduces a URL-ish value to its
// hostname: a leading http:// or https:// scheme is stripped and
// anything from the first path separator on is dropped. This is not a
// general URI parser.
func normalizeHost(host string) (string, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return "", ErrEmptyHost
	}

	for _, scheme := range []string{"http://", "https://"} {
		if rest, ok := strings.CutPrefix(host, scheme); ok {
			host = rest
			break
		}
	}

	if idx := strings.Index(host, "/"); idx != -1 {
		host = host[:idx]
	}

	if host == "" {
		return "", ErrEmptyHost
	}

	return host, nil
}
