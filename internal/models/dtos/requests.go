package dtos

type SaveConnectionSettingsReq struct {
	BaseURL  string `json:"base_url" validate:"required,url"`
	Username string `json:"username" validate:"required"`
	Secret   string `json:"secret" validate:"required"`
	IsActive *bool  `json:"is_active"`
}

type SaveReportDefinitionReq struct {
	SettingsID    int64   `json:"settings_id" validate:"required"`
	Path          string  `json:"path" validate:"required"`
	DisplayName   string  `json:"display_name" validate:"required"`
	DefaultParams *string `json:"default_params"`
	IsActive      *bool   `json:"is_active"`
}

type ShareReportReq struct {
	TTLSeconds int `json:"ttl_seconds"`
}
