package ports

import (
	"context"

	connection "github.com/Cagdassrgl/internet-connection"
)

// Strategy identifies which probing strategy produced a status.
type Strategy string

const (
	StrategyName    Strategy = "name"
	StrategyConnect Strategy = "connect"
)

// ConnectivityMonitor exposes one probing strategy both as a one-shot
// check and as a distinct-change stream.
type ConnectivityMonitor interface {
	Strategy() Strategy
	Check(ctx context.Context) (connection.Status, error)
	Watch(ctx context.Context) (<-chan connection.Status, error)
}
