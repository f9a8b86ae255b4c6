// Package delivery defines the contract for transport servers.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, consumer) started by the
// application entrypoint. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
