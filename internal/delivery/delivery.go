// Package delivery defines the surfaces through which an operator drives
// the editor.
package delivery

import "context"

// Delivery serves one entry surface until its input ends or the app stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
