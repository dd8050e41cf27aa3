package server

// Server defines the lifecycle of the fixture server.
//
// RunServer blocks until a termination signal arrives or the listener
// fails. Shutdown stops accepting connections and drains in-flight requests.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server.
	Shutdown()
}
