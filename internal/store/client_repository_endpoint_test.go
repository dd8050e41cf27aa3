package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-user-dashboard/internal/logger"
	"github.com/MKhiriev/go-user-dashboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEndpointRepo(t *testing.T) (*endpointRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := &endpointRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestSaveEndpoint_Success(t *testing.T) {
	repo, mock, db := newTestEndpointRepo(t)
	defer db.Close()

	usedAt := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO endpoints (url,used_at) VALUES (?,?) ON CONFLICT(url) DO UPDATE")).
		WithArgs("http://example.com/users", usedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveEndpoint(context.Background(), models.Endpoint{URL: "http://example.com/users", UsedAt: usedAt})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveEndpoint_ExecError(t *testing.T) {
	repo, mock, db := newTestEndpointRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO endpoints").
		WillReturnError(errors.New("disk I/O error"))

	err := repo.SaveEndpoint(context.Background(), models.Endpoint{URL: "http://example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestRecentEndpoints_Success(t *testing.T) {
	repo, mock, db := newTestEndpointRepo(t)
	defer db.Close()

	newer := time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)
	older := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"url", "used_at"}).
		AddRow("http://b.example.com", newer).
		AddRow("http://a.example.com", older)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT url, used_at FROM endpoints ORDER BY used_at DESC, url LIMIT 5")).
		WillReturnRows(rows)

	got, err := repo.RecentEndpoints(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "http://b.example.com", got[0].URL)
	assert.Equal(t, newer, got[0].UsedAt)
	assert.Equal(t, "http://a.example.com", got[1].URL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecentEndpoints_NonPositiveLimit(t *testing.T) {
	repo, mock, db := newTestEndpointRepo(t)
	defer db.Close()

	got, err := repo.RecentEndpoints(context.Background(), 0)

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecentEndpoints_QueryError(t *testing.T) {
	repo, mock, db := newTestEndpointRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT url, used_at FROM endpoints").
		WillReturnError(errors.New("no such table: endpoints"))

	_, err := repo.RecentEndpoints(context.Background(), 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestRecentEndpoints_ScanError(t *testing.T) {
	repo, mock, db := newTestEndpointRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"url", "used_at"}).
		AddRow("http://a.example.com", "not a time")

	mock.ExpectQuery("SELECT url, used_at FROM endpoints").WillReturnRows(rows)

	_, err := repo.RecentEndpoints(context.Background(), 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestPruneEndpoints_Success(t *testing.T) {
	repo, mock, db := newTestEndpointRepo(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM endpoints WHERE url NOT IN (SELECT url FROM endpoints ORDER BY used_at DESC, url LIMIT ?)")).
		WithArgs(10).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.PruneEndpoints(context.Background(), 10))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPruneEndpoints_ExecError(t *testing.T) {
	repo, mock, db := newTestEndpointRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM endpoints").WillReturnError(errors.New("locked"))

	err := repo.PruneEndpoints(context.Background(), 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}
