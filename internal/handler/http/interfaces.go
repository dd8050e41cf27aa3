package http

import "github.com/MKhiriev/go-user-dashboard/models"

//go:generate mockgen -source=interfaces.go -destination=../../mock/user_directory_mock.go -package=mock

// UserDirectory is the read side of the directory served by the handlers.
type UserDirectory interface {
	// Page returns up to limit users starting at cursor. Cursor is
	// non-negative and limit lies in [1, maxPageLimit].
	Page(cursor, limit int) models.Page
}
