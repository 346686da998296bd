// Package delivery defines the contract shared by all transport servers.
package delivery

import "context"

// Delivery represents a long-running server that blocks until it stops serving.
// Graceful shutdown is handled through fx lifecycle hooks, not through ctx.
type Delivery interface {
	// Serve starts the server and blocks until it stops.
	Serve(ctx context.Context) error
}
