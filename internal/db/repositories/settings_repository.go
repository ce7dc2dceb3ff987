package repositories

import (
	"context"
	"fmt"

	"reportgate/internal/constants"
	"reportgate/internal/models/entities"
	"reportgate/internal/relay"

	"github.com/jmoiron/sqlx"
)

type SettingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) *SettingsRepository {
	return &SettingsRepository{db}
}

// GetActiveSettings returns the unique active connection settings row for an
// identifier. Zero rows is a lookup failure; more than one signals constraint
// corruption upstream, since the table is keyed by id.
func (r *SettingsRepository) GetActiveSettings(ctx context.Context, id int64) (*entities.ConnectionSettings, error) {
	var rows []entities.ConnectionSettings

	if err := r.db.SelectContext(ctx, &rows, constants.GetActiveSettingsById, id); err != nil {
		return nil, fmt.Errorf("failed to query connection settings: %w", err)
	}

	switch len(rows) {
	case 0:
		return nil, &relay.Error{
			Kind:    constants.ErrKindSettingsNotFound,
			Message: fmt.Sprintf("no active connection settings for id %d", id),
		}
	case 1:
		return &rows[0], nil
	default:
		return nil, &relay.Error{
			Kind:    constants.ErrKindIntegrityViolation,
			Message: fmt.Sprintf("%d active connection settings rows match id %d", len(rows), id),
		}
	}
}
