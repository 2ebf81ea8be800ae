package delivery

import "context"

// Delivery is an inbound adapter started by the application, e.g. the HTTP API.
type Delivery interface {
	Serve(ctx context.Context) error
}
