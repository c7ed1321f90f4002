// Package delivery defines the transport-layer surface started by the
// application entrypoint.
package delivery

import "context"

// Delivery is a blocking transport server. Serve returns when the
// server stops; shutdown is driven through fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
