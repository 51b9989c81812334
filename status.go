// Package connection reports whether outbound network connectivity
// currently exists. It offers two interchangeable probing strategies —
// resolving a hostname or opening a raw TCP connection — plus change
// monitors that repeat a probe on an interval and stream only status
// transitions.
package connection

// Status is the outcome of a connectivity probe.
type Status int

const (
	// StatusUnknown accompanies probes that did not run to completion,
	// such as a cancelled parent context. No current probe produces it
	// together with a nil error, but callers must not assume it is
	// unreachable.
	StatusUnknown Status = iota
	StatusConnected
	StatusDisconnected
)

func (s Status) IsConnected() bool { return s == StatusConnected }

func (s Status) IsDisconnected() bool { return s == StatusDisconnected }

func (s Status) IsUnknown() bool { return s == StatusUnknown }

func (s Status) String() string {
	switch s {
	case StatusConnected:
		return "connected"
	case StatusDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}
