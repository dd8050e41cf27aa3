// Package server runs the fixture server's HTTP listener, including signal
// handling and graceful shutdown.
package server
