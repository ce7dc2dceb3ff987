package entities

import (
	"database/sql"
	"time"
)

// ConnectionSettings is one remote reporting-server endpoint plus the
// credential pair used to authenticate against it.
type ConnectionSettings struct {
	ID        int64     `db:"id"`
	BaseURL   string    `db:"base_url"`
	Username  string    `db:"username"`
	Secret    string    `db:"secret"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ReportDefinition maps a logical report to a server-side path and its
// stored default parameter string.
type ReportDefinition struct {
	ID            int64          `db:"id"`
	SettingsID    int64          `db:"settings_id"`
	Path          string         `db:"path"`
	DisplayName   string         `db:"display_name"`
	DefaultParams sql.NullString `db:"default_params"`
	IsActive      bool           `db:"is_active"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}
