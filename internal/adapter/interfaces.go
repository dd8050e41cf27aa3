// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used by the dashboard to talk
// to the remote user directory.
//
// The primary abstraction is [UserDirectoryAdapter], which decouples the
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPUserDirectoryAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_directory_adapter_mock.go -package=mock

// UserDirectoryAdapter fetches pages of users from a remote directory.
// Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type UserDirectoryAdapter interface {
	// GetUsersPage requests one page of users starting at cursor from the
	// directory located at baseURL. The base URL is passed per call because
	// the operator can switch directories while the dashboard is running.
	GetUsersPage(ctx context.Context, baseURL string, cursor, limit int) (models.Page, error)
}
