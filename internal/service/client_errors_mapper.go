// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-dashboard/internal/adapter"
	"github.com/MKhiriev/go-user-dashboard/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidCursor:
			return fmt.Errorf("%w: %w", ErrInvalidCursor, err)
		case app.MsgInvalidLimit:
			return fmt.Errorf("%w: %w", ErrInvalidLimit, err)
		}

	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrDirectoryNotFound, err)

	case errors.Is(err, adapter.ErrInternalServerError):
		return fmt.Errorf("%w: %w", ErrDirectoryInternal, err)

	case errors.Is(err, adapter.ErrMalformedResponse):
		return fmt.Errorf("%w: %w", ErrDirectoryMalformed, err)
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
