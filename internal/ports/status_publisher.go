package ports

import (
	"context"

	connection "github.com/Cagdassrgl/internet-connection"
)

// StatusPublisher records the connectivity status reported by one
// strategy.
type StatusPublisher interface {
	Publish(ctx context.Context, strategy Strategy, status connection.Status) error
}
