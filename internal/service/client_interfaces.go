package service

import (
	"context"

	"github.com/MKhiriev/go-user-dashboard/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientUserService loads pages of the remote user directory.
type ClientUserService interface {
	// FetchPage loads the page starting at cursor from the directory at
	// baseURL with the fixed page size [models.PageLimit].
	// Returns [ErrEmptyBaseURL] without sending a request when baseURL is
	// blank, and [ErrRecordMissingEmail] when any record of the page lacks
	// "authentication.email". On any error the caller keeps its previous page.
	FetchPage(ctx context.Context, baseURL string, cursor int) (models.Page, error)
}

// ClientEndpointService keeps the history of base URLs set by the operator.
type ClientEndpointService interface {
	// Remember records url as the most recently used endpoint and trims the
	// history to the configured size.
	Remember(ctx context.Context, url string) error

	// Recent returns remembered endpoints, most recent first.
	Recent(ctx context.Context) ([]string, error)
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetBuildInfo() models.AppBuildInfo
}
