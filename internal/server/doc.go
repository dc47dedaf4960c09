// Package server wires and runs the application's HTTP server.
//
// It owns the server lifecycle: startup of the listener and the background
// workers, signal handling, and graceful shutdown.
package server
