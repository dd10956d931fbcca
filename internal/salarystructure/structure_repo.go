package salarystructure

import (
	"context"
	"time"

	"go-payroll/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=structure_repo.go -destination=mock/structure_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, structure *SalaryStructure) error
	FindAllByCompany(ctx context.Context, companyID string) ([]SalaryStructure, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*SalaryStructure, error)
	Update(ctx context.Context, structure *SalaryStructure) error
	ReplaceComponents(ctx context.Context, companyID, structureID string, components []SalaryComponent) error
	Delete(ctx context.Context, companyID, id string) error
	HasOverlappingWindow(ctx context.Context, companyID, code string, from time.Time, to *time.Time, excludeID *string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, structure *SalaryStructure) error {
	return r.db.WithContext(ctx).Create(structure).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]SalaryStructure, error) {
	var structures []SalaryStructure
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Components", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Order("code ASC, effective_from DESC").
		Find(&structures).Error
	return structures, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*SalaryStructure, error) {
	var structure SalaryStructure
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Components", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		First(&structure, "id = ?", id).Error
	return &structure, err
}

func (r *repository) Update(ctx context.Context, structure *SalaryStructure) error {
	return r.db.WithContext(ctx).Omit("Components").Save(structure).Error
}

func (r *repository) ReplaceComponents(ctx context.Context, companyID, structureID string, components []SalaryComponent) error {
	if err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("structure_id = ?", structureID).
		Delete(&SalaryComponent{}).Error; err != nil {
		return err
	}
	if len(components) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&components).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&SalaryStructure{}, "id = ?", id).Error
}

func (r *repository) HasOverlappingWindow(
	ctx context.Context,
	companyID, code string,
	from time.Time,
	to *time.Time,
	excludeID *string,
) (bool, error) {
	db := r.db.WithContext(ctx).
		Model(&SalaryStructure{}).
		Scopes(tenant.Scope(companyID)).
		Where("code = ?", code).
		Where("effective_from <= ?", endOrMax(to)).
		Where("effective_to IS NULL OR effective_to >= ?", from)

	if excludeID != nil && *excludeID != "" {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

// endOrMax treats an open-ended window as extending indefinitely.
func endOrMax(to *time.Time) time.Time {
	if to != nil {
		return *to
	}
	return time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
}
