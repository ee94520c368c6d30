// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a transport server the application can run. Implementations
// register their shutdown through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
