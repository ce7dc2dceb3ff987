package dtos

import "time"

type ConnectionSettingsResp struct {
	ID        int64     `json:"id"`
	BaseURL   string    `json:"base_url"`
	Username  string    `json:"username"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReportDefinitionResp struct {
	ID            int64     `json:"id"`
	SettingsID    int64     `json:"settings_id"`
	Path          string    `json:"path"`
	DisplayName   string    `json:"display_name"`
	DefaultParams *string   `json:"default_params,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ShareReportResp struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
