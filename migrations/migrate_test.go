// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // no expectations: every statement goose issues fails

	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !errors.Is(err, ErrNilDB) {
		t.Errorf("expected ErrNilDB, got: %v", err)
	}
}

func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()

	if err = db.Ping(); err != nil {
		t.Skipf("sqlite driver unavailable: %v", err)
	}

	if err = Migrate(db); err != nil {
		t.Fatalf("unexpected migrate error: %v", err)
	}
	// applying twice is a no-op
	if err = Migrate(db); err != nil {
		t.Fatalf("unexpected error on second migrate: %v", err)
	}

	if _, err = db.Exec(`INSERT INTO endpoints (url, used_at) VALUES ('http://example.com', CURRENT_TIMESTAMP)`); err != nil {
		t.Fatalf("endpoints table not created: %v", err)
	}
}
