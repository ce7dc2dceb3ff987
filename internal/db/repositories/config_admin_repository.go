package repositories

import (
	"context"
	"fmt"

	gormModels "reportgate/internal/models/gorm"

	"gorm.io/gorm"
)

// ConfigAdminRepo handles management writes to the configuration tables
// using GORM. The fetch path never reads through this repo; it always does
// fresh sqlx lookups.
type ConfigAdminRepo struct {
	db *gorm.DB
}

func NewConfigAdminRepo(db *gorm.DB) *ConfigAdminRepo {
	return &ConfigAdminRepo{db: db}
}

// CreateSettings inserts a new connection settings row
func (r *ConfigAdminRepo) CreateSettings(ctx context.Context, settings *gormModels.ConnectionSettings) error {
	if err := r.db.WithContext(ctx).Create(settings).Error; err != nil {
		return fmt.Errorf("failed to create connection settings: %w", err)
	}
	return nil
}

// ListSettings returns all connection settings rows, newest first
func (r *ConfigAdminRepo) ListSettings(ctx context.Context) ([]gormModels.ConnectionSettings, error) {
	var rows []gormModels.ConnectionSettings

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list connection settings: %w", err)
	}

	return rows, nil
}

// GetSettingsByID fetches one connection settings row by id
func (r *ConfigAdminRepo) GetSettingsByID(ctx context.Context, id int64) (*gormModels.ConnectionSettings, error) {
	var settings gormModels.ConnectionSettings

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&settings).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get connection settings: %w", err)
	}

	return &settings, nil
}

// UpdateSettings saves changes to an existing connection settings row
func (r *ConfigAdminRepo) UpdateSettings(ctx context.Context, settings *gormModels.ConnectionSettings) error {
	if err := r.db.WithContext(ctx).Save(settings).Error; err != nil {
		return fmt.Errorf("failed to update connection settings: %w", err)
	}
	return nil
}

// DeactivateSettings flips the active flag; rows are never deleted so the
// audit trail stays intact
func (r *ConfigAdminRepo) DeactivateSettings(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Model(&gormModels.ConnectionSettings{}).
		Where("id = ?", id).
		Update("is_active", false)

	if result.Error != nil {
		return fmt.Errorf("failed to deactivate connection settings: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("connection settings not found")
	}

	return nil
}

// CreateReport inserts a new report definition
func (r *ConfigAdminRepo) CreateReport(ctx context.Context, def *gormModels.ReportDefinition) error {
	if err := r.db.WithContext(ctx).Create(def).Error; err != nil {
		return fmt.Errorf("failed to create report definition: %w", err)
	}
	return nil
}

// ListReports returns all report definitions, newest first
func (r *ConfigAdminRepo) ListReports(ctx context.Context) ([]gormModels.ReportDefinition, error) {
	var rows []gormModels.ReportDefinition

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list report definitions: %w", err)
	}

	return rows, nil
}

// GetReportByID fetches one report definition by id
func (r *ConfigAdminRepo) GetReportByID(ctx context.Context, id int64) (*gormModels.ReportDefinition, error) {
	var def gormModels.ReportDefinition

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&def).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report definition: %w", err)
	}

	return &def, nil
}

// UpdateReport saves changes to an existing report definition
func (r *ConfigAdminRepo) UpdateReport(ctx context.Context, def *gormModels.ReportDefinition) error {
	if err := r.db.WithContext(ctx).Save(def).Error; err != nil {
		return fmt.Errorf("failed to update report definition: %w", err)
	}
	return nil
}

// DeactivateReport flips the active flag on a report definition
func (r *ConfigAdminRepo) DeactivateReport(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Model(&gormModels.ReportDefinition{}).
		Where("id = ?", id).
		Update("is_active", false)

	if result.Error != nil {
		return fmt.Errorf("failed to deactivate report definition: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("report definition not found")
	}

	return nil
}
