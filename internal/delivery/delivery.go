// Package delivery defines the contract every transport surface of the
// application satisfies, so the composition root can start them uniformly.
package delivery

import "context"

// Delivery is a running transport surface (HTTP API, worker endpoint).
// Serve blocks until the surface stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
