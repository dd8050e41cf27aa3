package store

import (
	"context"

	"github.com/MKhiriev/go-user-dashboard/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// EndpointRepository persists the base URLs the operator has used.
type EndpointRepository interface {
	// SaveEndpoint inserts the endpoint or refreshes its UsedAt.
	SaveEndpoint(ctx context.Context, endpoint models.Endpoint) error
	// RecentEndpoints returns at most limit endpoints, most recently used first.
	RecentEndpoints(ctx context.Context, limit int) ([]models.Endpoint, error)
	// PruneEndpoints deletes everything but the keep most recent endpoints.
	PruneEndpoints(ctx context.Context, keep int) error
}
