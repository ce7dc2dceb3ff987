package gorm

import "time"

type ConnectionSettings struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	BaseURL   string    `gorm:"column:base_url"`
	Username  string    `gorm:"column:username"`
	Secret    string    `gorm:"column:secret"`
	IsActive  bool      `gorm:"column:is_active;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (ConnectionSettings) TableName() string {
	return "connection_settings"
}
