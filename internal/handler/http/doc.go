// Package http implements the fixture server's HTTP transport.
//
// It serves a generated user directory under the same path and envelope as
// the remote directory the dashboard pages through, so the client can be
// exercised end to end without network access. Request tracing and access
// logging are handled by middleware before requests reach the handlers.
package http
