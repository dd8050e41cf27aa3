// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-dashboard/internal/config"
	"github.com/MKhiriev/go-user-dashboard/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, timeout time.Duration) UserDirectoryAdapter {
	t.Helper()
	return NewHTTPUserDirectoryAdapter(config.ClientAdapter{RequestTimeout: timeout}, logger.Nop())
}

const twoUsersPage = `{
	"response": {
		"cursor": 100,
		"remaining": 150,
		"results": [
			{
				"_id": "u1",
				"🔴 firstName": "Ada",
				"🔴 lastName": "Lovelace",
				"authentication": {"email": {"email": "ada@example.com"}},
				"🔴 mobile": "+44 20 0000",
				"current_main_programme": "Maths",
				"🔴 isProfileCompleted": true
			},
			{
				"_id": "u2",
				"authentication": {"email": {"email": "bob@example.com"}}
			}
		]
	}
}`

// ── NormalizeBaseURL ────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "https://example.com/api/1.1/obj/user", want: "https://example.com/api/1.1/obj/user"},
		{name: "trims spaces", raw: "  http://localhost:8080/users  ", want: "http://localhost:8080/users"},
		{name: "adds scheme", raw: "localhost:8080/api", want: "http://localhost:8080/api"},
		{name: "strips trailing slash", raw: "http://example.com/users/", want: "http://example.com/users"},
		{name: "empty", raw: "   ", wantErr: true},
		{name: "no host", raw: "http:///users", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidBaseURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── GetUsersPage ────────────────────────────────────────────────────────────

func TestGetUsersPage_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/1.1/obj/user", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("cursor"))
		assert.Equal(t, "100", r.URL.Query().Get("limit"))

		_, err := uuid.Parse(r.Header.Get(RequestIDHeader))
		assert.NoError(t, err, "request id header must be a uuid")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(twoUsersPage))
	}))
	defer srv.Close()

	a := newTestAdapter(t, time.Second)
	page, err := a.GetUsersPage(context.Background(), srv.URL+"/api/1.1/obj/user/", 100, 100)

	require.NoError(t, err)
	assert.Equal(t, 100, page.Cursor)
	assert.Equal(t, 150, page.Remaining)
	require.Len(t, page.Results, 2)
	assert.Equal(t, "Ada", page.Results[0].FirstName)
	assert.Equal(t, "ada@example.com", page.Results[0].Email())
	assert.True(t, page.Results[0].ProfileCompleted)
	assert.Empty(t, page.Results[1].FirstName)
}

func TestGetUsersPage_NegativeCursorIsSent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "-70", r.URL.Query().Get("cursor"))
		_, _ = w.Write([]byte(`{"response":{"results":[],"remaining":0,"cursor":-70}}`))
	}))
	defer srv.Close()

	page, err := newTestAdapter(t, 0).GetUsersPage(context.Background(), srv.URL, -70, 100)

	require.NoError(t, err)
	assert.Equal(t, -70, page.Cursor)
	assert.Empty(t, page.Results)
}

func TestGetUsersPage_MissingResponseObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, 0).GetUsersPage(context.Background(), srv.URL, 0, 100)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestGetUsersPage_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, 0).GetUsersPage(context.Background(), srv.URL, 0, 100)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestGetUsersPage_StatusErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "bad request", status: http.StatusBadRequest, want: ErrBadRequest},
		{name: "unauthorized", status: http.StatusUnauthorized, want: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, want: ErrForbidden},
		{name: "not found", status: http.StatusNotFound, want: ErrNotFound},
		{name: "internal", status: http.StatusInternalServerError, want: ErrInternalServerError},
		{name: "bad gateway", status: http.StatusBadGateway, want: ErrBadGateway},
		{name: "unavailable", status: http.StatusServiceUnavailable, want: ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, 0).GetUsersPage(context.Background(), srv.URL, 0, 100)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGetUsersPage_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, 0).GetUsersPage(context.Background(), srv.URL, 0, 100)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestGetUsersPage_InvalidBaseURL(t *testing.T) {
	_, err := newTestAdapter(t, 0).GetUsersPage(context.Background(), "", 0, 100)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidBaseURL)
}

func TestGetUsersPage_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"response":{"results":[],"remaining":0,"cursor":0}}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, 20*time.Millisecond).GetUsersPage(context.Background(), srv.URL, 0, 100)

	assert.Error(t, err)
}

func TestGetUsersPage_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response":{"results":[],"remaining":0,"cursor":0}}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAdapter(t, 0).GetUsersPage(ctx, srv.URL, 0, 100)

	assert.Error(t, err)
}
