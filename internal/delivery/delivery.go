// Package delivery defines the entry points through which the outside world
// reaches the application.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the runtime.
type Delivery interface {
	Serve(ctx context.Context) error
}
