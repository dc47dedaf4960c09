package server

// Server defines the lifecycle contract of the transport server managed by
// this package.
//
// RunServer blocks until SIGTERM, SIGINT or SIGQUIT arrives or the listener
// fails, then drains in-flight requests before returning.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
