// Package delivery defines the contract every transport entrypoint
// (HTTP today, anything else later) exposes to the composition root.
package delivery

import "context"

// Delivery is a long-running transport server.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
