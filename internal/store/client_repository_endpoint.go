package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-dashboard/internal/logger"
	"github.com/MKhiriev/go-user-dashboard/models"
)

type endpointRepository struct {
	*DB
	logger *logger.Logger
}

func NewEndpointRepository(db *DB, logger *logger.Logger) EndpointRepository {
	return &endpointRepository{
		DB:     db,
		logger: logger,
	}
}

func (e *endpointRepository) SaveEndpoint(ctx context.Context, endpoint models.Endpoint) error {
	query, args, err := buildSaveEndpointQuery(endpoint)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = e.DB.ExecContext(ctx, query, args...); err != nil {
		e.logger.Err(err).
			Str("func", "endpointRepository.SaveEndpoint").
			Str("url", endpoint.URL).
			Msg("failed to upsert endpoint")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (e *endpointRepository) RecentEndpoints(ctx context.Context, limit int) ([]models.Endpoint, error) {
	if limit <= 0 {
		return []models.Endpoint{}, nil
	}

	query, args, err := buildRecentEndpointsQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := e.DB.QueryContext(ctx, query, args...)
	if err != nil {
		e.logger.Err(err).
			Str("func", "endpointRepository.RecentEndpoints").
			Msg("failed to query recent endpoints")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	endpoints := make([]models.Endpoint, 0, limit)
	for rows.Next() {
		var endpoint models.Endpoint
		if err = rows.Scan(&endpoint.URL, &endpoint.UsedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		endpoints = append(endpoints, endpoint)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return endpoints, nil
}

func (e *endpointRepository) PruneEndpoints(ctx context.Context, keep int) error {
	query, args, err := buildPruneEndpointsQuery(keep)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := e.DB.ExecContext(ctx, query, args...)
	if err != nil {
		e.logger.Err(err).
			Str("func", "endpointRepository.PruneEndpoints").
			Int("keep", keep).
			Msg("failed to prune endpoints")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if n, _ := res.RowsAffected(); n > 0 {
		e.logger.Debug().Int64("deleted", n).Msg("endpoint history pruned")
	}

	return nil
}
