package constants

const (
	GetActiveSettingsById = `
	SELECT id, base_url, username, secret, is_active, created_at, updated_at
	FROM connection_settings
	WHERE id = $1 AND is_active = true
	`

	GetActiveReportById = `
	SELECT id, settings_id, path, display_name, default_params, is_active, created_at, updated_at
	FROM report_definitions
	WHERE id = $1 AND is_active = true
	`

	GetStatusByApiKey = `
	SELECT id, status FROM api_keys WHERE id = $1
	`
)
