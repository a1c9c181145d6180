// Package workers runs the background jobs of the watermark server.
package workers

import "context"

// Worker is a background loop with an explicit lifecycle. Start must not
// block; Stop waits until the loop has exited.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
