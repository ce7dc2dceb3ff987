package repositories

import (
	"context"
	"fmt"

	"reportgate/internal/constants"
	"reportgate/internal/models/entities"
	"reportgate/internal/relay"

	"github.com/jmoiron/sqlx"
)

type ReportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db}
}

// GetActiveReport returns the unique active report definition for an
// identifier. Inactive definitions are never resolvable through this path.
func (r *ReportRepository) GetActiveReport(ctx context.Context, id int64) (*entities.ReportDefinition, error) {
	var rows []entities.ReportDefinition

	if err := r.db.SelectContext(ctx, &rows, constants.GetActiveReportById, id); err != nil {
		return nil, fmt.Errorf("failed to query report definitions: %w", err)
	}

	switch len(rows) {
	case 0:
		return nil, &relay.Error{
			Kind:    constants.ErrKindReportNotFound,
			Message: fmt.Sprintf("no active report definition for id %d", id),
		}
	case 1:
		return &rows[0], nil
	default:
		return nil, &relay.Error{
			Kind:    constants.ErrKindIntegrityViolation,
			Message: fmt.Sprintf("%d active report definition rows match id %d", len(rows), id),
		}
	}
}
