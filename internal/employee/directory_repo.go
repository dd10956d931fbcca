package employee

import (
	"context"

	"go-payroll/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=directory_repo.go -destination=mock/directory_repo_mock.go -package=mock

// Directory is the payroll engine's read interface over the employee
// master. departments narrows the selection when non-empty; excludeIDs
// always wins.
type Directory interface {
	ActiveEmployees(ctx context.Context, companyID string, departments, excludeIDs []string) ([]Employee, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Employee, error)
	// Upsert applies a directory sync event from the HR system of record.
	Upsert(ctx context.Context, emp *Employee) error
}

type directory struct {
	db *gorm.DB
}

func NewDirectory(db *gorm.DB) Directory {
	return &directory{db: db}
}

func (d *directory) ActiveEmployees(
	ctx context.Context,
	companyID string,
	departments, excludeIDs []string,
) ([]Employee, error) {
	db := d.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("is_active = ?", true)

	if len(departments) > 0 {
		db = db.Where("department IN ?", departments)
	}
	if len(excludeIDs) > 0 {
		db = db.Where("id NOT IN ?", excludeIDs)
	}

	var employees []Employee
	err := db.Order("code ASC").Find(&employees).Error
	return employees, err
}

func (d *directory) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Employee, error) {
	var emp Employee
	err := d.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&emp, "id = ?", id).Error
	return &emp, err
}

func (d *directory) Upsert(ctx context.Context, emp *Employee) error {
	return d.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"code", "full_name", "designation", "department",
				"bank_account", "pan_number", "pf_number", "esi_number",
				"basic_salary", "gross_salary", "ctc",
				"salary_structure_id", "is_active", "updated_at",
			}),
		}).
		Create(emp).Error
}
