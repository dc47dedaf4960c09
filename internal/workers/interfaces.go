// Package workers provides the bounded dispatcher used to run storage calls
// off the request path and the background workers of the server.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: implementations spawn their own goroutines and stop
// them when ctx is done.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    go func() {
//	        <-ctx.Done()
//	    }()
//	}
type Worker interface {
	Run(ctx context.Context)
}
