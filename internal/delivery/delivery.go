// Package delivery defines the contract every transport front-end fulfills.
package delivery

import "context"

// Delivery is a serveable transport (currently only HTTP).
type Delivery interface {
	Serve(ctx context.Context) error
}
