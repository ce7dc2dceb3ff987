package gorm

import "time"

type ReportDefinition struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement"`
	SettingsID    int64     `gorm:"column:settings_id;index"`
	Path          string    `gorm:"column:path"`
	DisplayName   string    `gorm:"column:display_name"`
	DefaultParams *string   `gorm:"column:default_params"`
	IsActive      bool      `gorm:"column:is_active;default:true"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Settings *ConnectionSettings `gorm:"foreignKey:SettingsID"`
}

// TableName specifies the table name for GORM
func (ReportDefinition) TableName() string {
	return "report_definitions"
}
