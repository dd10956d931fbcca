package numbering

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=sequence_repo.go -destination=mock/sequence_repo_mock.go -package=mock
type Repository interface {
	NextValue(ctx context.Context, companyID, series string, year int) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// NextValue increments and returns the counter for (company, series, year).
// The UPSERT is a single statement, so concurrent callers never observe the
// same value and never deadlock on the counter row.
func (r *repository) NextValue(ctx context.Context, companyID, series string, year int) (int64, error) {
	var nextValue int64

	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO sequence_counters (company_id, series, year, last_value, updated_at)
		VALUES (?, ?, ?, 1, now())
		ON CONFLICT (company_id, series, year) DO UPDATE
		SET last_value = sequence_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, companyID, series, year).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}
