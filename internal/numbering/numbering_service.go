package numbering

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// SequenceCounter backs the document number series. One row per
// (company, series, year); last_value only ever moves forward.
type SequenceCounter struct {
	CompanyID string    `gorm:"type:uuid;primaryKey"`
	Series    string    `gorm:"type:varchar(10);primaryKey"`
	Year      int       `gorm:"primaryKey"`
	LastValue int64     `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"type:timestamptz;default:now()"`
}

func (SequenceCounter) TableName() string {
	return "sequence_counters"
}

const (
	SeriesPayroll = "PAY"
	SeriesSlip    = "SLIP"
	SeriesJournal = "JV"
)

//go:generate mockgen -source=numbering_service.go -destination=mock/numbering_service_mock.go -package=mock
type Service interface {
	// Next issues the next document number in the series, formatted as
	// {series}-{year}-{seq6}. Numbers are monotonic per (company, series,
	// year). Allocation is independent of any caller transaction: a rolled
	// back batch leaves a gap, never a collision.
	Next(ctx context.Context, companyID, series string, year int) (string, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func NewServiceWithDB(db *gorm.DB) Service {
	return &service{repo: NewRepository(db)}
}

func (s *service) Next(ctx context.Context, companyID, series string, year int) (string, error) {
	seq, err := s.repo.NextValue(ctx, companyID, series, year)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s-%d-%06d", series, year, seq), nil
}
