// Package delivery holds the entry points that expose the use cases: the REST API and the janitor worker.
package delivery

import "context"

// Delivery is a long-running server started by a cmd binary. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
