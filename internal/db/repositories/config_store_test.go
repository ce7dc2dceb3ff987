package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"reportgate/internal/constants"
	"reportgate/internal/relay"
)

// The tables carry no primary key on purpose: the multi-row branch guards
// against exactly the corruption a key constraint would normally prevent.
const configStoreSchema = `
CREATE TABLE connection_settings (
	id INTEGER,
	base_url TEXT,
	username TEXT,
	secret TEXT,
	is_active BOOLEAN,
	created_at DATETIME,
	updated_at DATETIME
);
CREATE TABLE report_definitions (
	id INTEGER,
	settings_id INTEGER,
	path TEXT,
	display_name TEXT,
	default_params TEXT,
	is_active BOOLEAN,
	created_at DATETIME,
	updated_at DATETIME
);`

func newTestConfigDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(configStoreSchema); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return db
}

func seedSettings(t *testing.T, db *sqlx.DB, id int64, baseURL string, active bool) {
	t.Helper()

	now := time.Now()
	_, err := db.Exec(
		`INSERT INTO connection_settings (id, base_url, username, secret, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, baseURL, "reportuser", "s3cret", active, now, now,
	)
	if err != nil {
		t.Fatalf("Failed to seed settings: %v", err)
	}
}

func seedReport(t *testing.T, db *sqlx.DB, id, settingsID int64, path string, params *string, active bool) {
	t.Helper()

	now := time.Now()
	_, err := db.Exec(
		`INSERT INTO report_definitions (id, settings_id, path, display_name, default_params, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, settingsID, path, "Monthly Sales", params, active, now, now,
	)
	if err != nil {
		t.Fatalf("Failed to seed report: %v", err)
	}
}

func TestSettingsRepository_GetActiveSettings(t *testing.T) {
	db := newTestConfigDB(t)
	repo := NewSettingsRepository(db)
	ctx := context.Background()

	_, err := repo.GetActiveSettings(ctx, 1)
	if relay.KindOf(err) != constants.ErrKindSettingsNotFound {
		t.Errorf("Expected kind %s for empty table, got %v", constants.ErrKindSettingsNotFound, err)
	}

	seedSettings(t, db, 1, "http://reports.example.com", true)
	got, err := repo.GetActiveSettings(ctx, 1)
	if err != nil {
		t.Fatalf("Expected unique active row, got %v", err)
	}
	if got.BaseURL != "http://reports.example.com" || got.Username != "reportuser" || got.Secret != "s3cret" {
		t.Errorf("Unexpected settings %+v", got)
	}
}

func TestSettingsRepository_InactiveRowIsNotFound(t *testing.T) {
	db := newTestConfigDB(t)
	repo := NewSettingsRepository(db)

	seedSettings(t, db, 1, "http://reports.example.com", false)

	_, err := repo.GetActiveSettings(context.Background(), 1)
	if relay.KindOf(err) != constants.ErrKindSettingsNotFound {
		t.Errorf("Expected kind %s for inactive row, got %v", constants.ErrKindSettingsNotFound, err)
	}
}

func TestSettingsRepository_DuplicateActiveRowsAreIntegrityViolation(t *testing.T) {
	db := newTestConfigDB(t)
	repo := NewSettingsRepository(db)

	seedSettings(t, db, 1, "http://reports.example.com", true)
	seedSettings(t, db, 1, "http://other.example.com", true)

	_, err := repo.GetActiveSettings(context.Background(), 1)
	if relay.KindOf(err) != constants.ErrKindIntegrityViolation {
		t.Errorf("Expected kind %s for duplicate active rows, got %v", constants.ErrKindIntegrityViolation, err)
	}
}

func TestReportRepository_GetActiveReport(t *testing.T) {
	db := newTestConfigDB(t)
	repo := NewReportRepository(db)
	ctx := context.Background()

	_, err := repo.GetActiveReport(ctx, 7)
	if relay.KindOf(err) != constants.ErrKindReportNotFound {
		t.Errorf("Expected kind %s for empty table, got %v", constants.ErrKindReportNotFound, err)
	}

	params := "year=2024;region=EMEA"
	seedReport(t, db, 7, 1, "sales/monthly", &params, true)

	got, err := repo.GetActiveReport(ctx, 7)
	if err != nil {
		t.Fatalf("Expected unique active row, got %v", err)
	}
	if got.Path != "sales/monthly" || got.SettingsID != 1 {
		t.Errorf("Unexpected report %+v", got)
	}
	if !got.DefaultParams.Valid || got.DefaultParams.String != "year=2024;region=EMEA" {
		t.Errorf("Unexpected default params %+v", got.DefaultParams)
	}
}

func TestReportRepository_NullDefaultParams(t *testing.T) {
	db := newTestConfigDB(t)
	repo := NewReportRepository(db)

	seedReport(t, db, 7, 1, "sales/monthly", nil, true)

	got, err := repo.GetActiveReport(context.Background(), 7)
	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if got.DefaultParams.Valid {
		t.Errorf("Expected null default params, got %+v", got.DefaultParams)
	}
}

func TestReportRepository_InactiveRowIsNotFound(t *testing.T) {
	db := newTestConfigDB(t)
	repo := NewReportRepository(db)

	seedReport(t, db, 7, 1, "sales/monthly", nil, false)

	_, err := repo.GetActiveReport(context.Background(), 7)
	if relay.KindOf(err) != constants.ErrKindReportNotFound {
		t.Errorf("Expected kind %s for inactive row, got %v", constants.ErrKindReportNotFound, err)
	}
}

func TestReportRepository_DuplicateActiveRowsAreIntegrityViolation(t *testing.T) {
	db := newTestConfigDB(t)
	repo := NewReportRepository(db)

	seedReport(t, db, 7, 1, "sales/monthly", nil, true)
	seedReport(t, db, 7, 2, "sales/weekly", nil, true)

	_, err := repo.GetActiveReport(context.Background(), 7)
	if relay.KindOf(err) != constants.ErrKindIntegrityViolation {
		t.Errorf("Expected kind %s for duplicate active rows, got %v", constants.ErrKindIntegrityViolation, err)
	}
}
