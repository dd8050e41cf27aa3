package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-user-dashboard/internal/store"
	"github.com/MKhiriev/go-user-dashboard/models"
)

type clientEndpointService struct {
	repo        store.EndpointRepository
	historySize int
	now         func() time.Time
}

func NewClientEndpointService(storages *store.ClientStorages, historySize int) ClientEndpointService {
	return &clientEndpointService{
		repo:        storages.EndpointRepository,
		historySize: historySize,
		now:         time.Now,
	}
}

func (s *clientEndpointService) Remember(ctx context.Context, url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return ErrEmptyBaseURL
	}

	if err := s.repo.SaveEndpoint(ctx, models.Endpoint{URL: url, UsedAt: s.now()}); err != nil {
		return fmt.Errorf("remember endpoint: %w", err)
	}

	if err := s.repo.PruneEndpoints(ctx, s.historySize); err != nil {
		return fmt.Errorf("prune endpoint history: %w", err)
	}

	return nil
}

func (s *clientEndpointService) Recent(ctx context.Context) ([]string, error) {
	endpoints, err := s.repo.RecentEndpoints(ctx, s.historySize)
	if err != nil {
		return nil, fmt.Errorf("recent endpoints: %w", err)
	}

	urls := make([]string, 0, len(endpoints))
	for _, e := range endpoints {
		urls = append(urls, e.URL)
	}

	return urls, nil
}
