package leads

import (
	"context"
	"fmt"

	"github.com/encuotas/storefront-backend/pkg/db/models"
	"github.com/encuotas/storefront-backend/pkg/pagination"
	"gorm.io/gorm"
)

// Repository persists captured leads. The table is append-only; nothing here
// updates or deletes rows.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a lead repository over the shared gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Append inserts one lead record.
func (r *Repository) Append(ctx context.Context, record *models.LeadRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("append lead record: %w", err)
	}
	return nil
}

// List pages through lead records newest first, using cursor pagination so
// back-office exports stay stable while new leads keep arriving.
func (r *Repository) List(ctx context.Context, limit int, cursor *pagination.Cursor) ([]models.LeadRecord, *pagination.Cursor, error) {
	limit = pagination.NormalizeLimit(limit)

	query := r.db.WithContext(ctx).
		Model(&models.LeadRecord{}).
		Order("submitted_at DESC, id DESC").
		Limit(pagination.LimitWithBuffer(limit))

	if cursor != nil {
		query = query.Where(
			"submitted_at < ? OR (submitted_at = ? AND id < ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
		)
	}

	var records []models.LeadRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, nil, fmt.Errorf("list lead records: %w", err)
	}

	var next *pagination.Cursor
	if len(records) > limit {
		records = records[:limit]
		last := records[len(records)-1]
		next = &pagination.Cursor{ID: last.ID.String(), CreatedAt: last.SubmittedAt}
	}
	return records, next, nil
}
