// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// fixture server handlers and by the dashboard when classifying responses.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
package app

const (
	// MsgInvalidCursor is returned when the cursor query parameter is not a
	// non-negative integer.
	MsgInvalidCursor = "invalid cursor"

	// MsgInvalidLimit is returned when the limit query parameter is not an
	// integer.
	MsgInvalidLimit = "invalid limit"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgPong is the body of a successful liveness probe.
	MsgPong = "pong"
)
