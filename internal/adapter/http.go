// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-user-dashboard/internal/config"
	"github.com/MKhiriev/go-user-dashboard/internal/logger"
	"github.com/MKhiriev/go-user-dashboard/internal/utils"
	"github.com/MKhiriev/go-user-dashboard/models"
)

// RequestIDHeader carries the correlation id of every directory request.
const RequestIDHeader = "X-Request-ID"

type httpUserDirectoryAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPUserDirectoryAdapter constructs an HTTP/REST implementation of
// [UserDirectoryAdapter]. The request timeout from adapterCfg applies to every
// page request; zero leaves requests bounded only by the caller's context.
func NewHTTPUserDirectoryAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) UserDirectoryAdapter {
	return &httpUserDirectoryAdapter{
		client: utils.NewHTTPClient(adapterCfg.RequestTimeout),
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// NormalizeBaseURL trims raw, adds an http scheme when none is given and
// strips trailing slashes. The result must name a host.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidBaseURL)
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: address must include host and scheme", ErrInvalidBaseURL)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetUsersPage implements [UserDirectoryAdapter]. It sends
// GET <baseURL>?cursor=<cursor>&limit=<limit> and decodes the
// {"response": {...}} envelope. A body without the "response" object yields
// [ErrMalformedResponse].
func (h *httpUserDirectoryAdapter) GetUsersPage(ctx context.Context, baseURL string, cursor, limit int) (models.Page, error) {
	endpoint, err := NormalizeBaseURL(baseURL)
	if err != nil {
		return models.Page{}, err
	}

	requestID := h.ids.Generate()
	log := h.logger.With().
		Str("request_id", requestID).
		Str("base_url", endpoint).
		Int("cursor", cursor).
		Int("limit", limit).
		Logger()

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, requestID).
		SetQueryParams(map[string]string{
			"cursor": strconv.Itoa(cursor),
			"limit":  strconv.Itoa(limit),
		}).
		Get(endpoint)
	if err != nil {
		log.Err(err).Msg("users page request failed")
		return models.Page{}, fmt.Errorf("get users page request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Int("status", resp.StatusCode()).Msg("users page request rejected")
		return models.Page{}, err
	}

	var envelope models.PageResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.Page{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if envelope.Response == nil {
		return models.Page{}, fmt.Errorf("%w: missing response object", ErrMalformedResponse)
	}

	log.Debug().
		Int("results", len(envelope.Response.Results)).
		Int("remaining", envelope.Response.Remaining).
		Dur("took", resp.Time()).
		Msg("users page fetched")

	return *envelope.Response, nil
}
