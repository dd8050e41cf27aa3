package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-dashboard/internal/adapter"
	"github.com/MKhiriev/go-user-dashboard/internal/logger"
	"github.com/MKhiriev/go-user-dashboard/models"
)

type clientUserService struct {
	directory adapter.UserDirectoryAdapter
	logger    *logger.Logger
}

func NewClientUserService(directory adapter.UserDirectoryAdapter, logger *logger.Logger) ClientUserService {
	return &clientUserService{
		directory: directory,
		logger:    logger,
	}
}

func (s *clientUserService) FetchPage(ctx context.Context, baseURL string, cursor int) (models.Page, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return models.Page{}, ErrEmptyBaseURL
	}

	page, err := s.directory.GetUsersPage(ctx, baseURL, cursor, models.PageLimit)
	if err != nil {
		return models.Page{}, fmt.Errorf("fetch users page (cursor=%d): %w", cursor, mapAdapterError(err))
	}

	for i, user := range page.Results {
		if !user.HasEmailAuthentication() {
			return models.Page{}, fmt.Errorf("fetch users page (cursor=%d): record %d (_id=%q): %w",
				cursor, i, user.ID, ErrRecordMissingEmail)
		}
	}

	s.logger.Info().
		Str("base_url", baseURL).
		Int("cursor", page.Cursor).
		Int("remaining", page.Remaining).
		Int("results", len(page.Results)).
		Msg("users page loaded")

	return page, nil
}
