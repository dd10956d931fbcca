package payroll

import (
	"context"

	"go-payroll/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PayrollQueryFilter struct {
	Status string
	Year   int
	Month  int
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	Create(ctx context.Context, payroll *Payroll) error
	FindAllByCompany(ctx context.Context, companyID string, filter PayrollQueryFilter) ([]Payroll, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Payroll, error)
	// FindByIDAndCompanyForUpdate takes a row lock so concurrent state
	// transitions for the same payroll serialize.
	FindByIDAndCompanyForUpdate(ctx context.Context, companyID, id string) (*Payroll, error)
	Update(ctx context.Context, payroll *Payroll) error
	Delete(ctx context.Context, companyID, id string) error

	CreateSlips(ctx context.Context, slips []SalarySlip) error
	DeleteSlipsByPayroll(ctx context.Context, companyID, payrollID string) error
	ListSlipsByPayroll(ctx context.Context, companyID, payrollID string) ([]SalarySlip, error)
	FindSlipByID(ctx context.Context, companyID, payrollID, slipID string) (*SalarySlip, error)
	UpdateSlip(ctx context.Context, slip *SalarySlip) error
	// UpdateSlipStatuses moves every slip of the payroll currently in one of
	// fromStatuses to toStatus, applying the extra column updates.
	UpdateSlipStatuses(ctx context.Context, companyID, payrollID string, fromStatuses []string, toStatus string, updates map[string]any) error
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

func (r *repository) Create(ctx context.Context, payroll *Payroll) error {
	return r.db.WithContext(ctx).Omit("Slips").Create(payroll).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, filter PayrollQueryFilter) ([]Payroll, error) {
	db := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID))

	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.Year != 0 {
		db = db.Where("year = ?", filter.Year)
	}
	if filter.Month != 0 {
		db = db.Where("month = ?", filter.Month)
	}

	var payrolls []Payroll
	err := db.Order("year DESC, month DESC, payroll_number DESC").Find(&payrolls).Error
	return payrolls, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Payroll, error) {
	var payroll Payroll
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&payroll, "id = ?", id).Error
	return &payroll, err
}

func (r *repository) FindByIDAndCompanyForUpdate(ctx context.Context, companyID, id string) (*Payroll, error) {
	var payroll Payroll
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		First(&payroll, "id = ?", id).Error
	return &payroll, err
}

func (r *repository) Update(ctx context.Context, payroll *Payroll) error {
	return r.db.WithContext(ctx).Omit("Slips").Save(payroll).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	if err := r.DeleteSlipsByPayroll(ctx, companyID, id); err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Payroll{}, "id = ?", id).Error
}

func (r *repository) CreateSlips(ctx context.Context, slips []SalarySlip) error {
	if len(slips) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(&slips, 100).Error
}

func (r *repository) DeleteSlipsByPayroll(ctx context.Context, companyID, payrollID string) error {
	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Where("slip_id IN (?)", r.db.Model(&SalarySlip{}).
			Select("id").
			Where("company_id = ? AND payroll_id = ?", companyID, payrollID),
		).
		Delete(&SlipLine{}).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("payroll_id = ?", payrollID).
		Delete(&SalarySlip{}).Error
}

func (r *repository) ListSlipsByPayroll(ctx context.Context, companyID, payrollID string) ([]SalarySlip, error) {
	var slips []SalarySlip
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("payroll_id = ?", payrollID).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Order("employee_code ASC").
		Find(&slips).Error
	return slips, err
}

func (r *repository) FindSlipByID(ctx context.Context, companyID, payrollID, slipID string) (*SalarySlip, error) {
	var slip SalarySlip
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("payroll_id = ?", payrollID).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		First(&slip, "id = ?", slipID).Error
	return &slip, err
}

func (r *repository) UpdateSlip(ctx context.Context, slip *SalarySlip) error {
	return r.db.WithContext(ctx).Omit("Lines").Save(slip).Error
}

func (r *repository) UpdateSlipStatuses(
	ctx context.Context,
	companyID, payrollID string,
	fromStatuses []string,
	toStatus string,
	updates map[string]any,
) error {
	values := map[string]any{"status": toStatus}
	for k, v := range updates {
		values[k] = v
	}

	return r.db.WithContext(ctx).
		Model(&SalarySlip{}).
		Scopes(tenant.Scope(companyID)).
		Where("payroll_id = ?", payrollID).
		Where("status IN ?", fromStatuses).
		Updates(values).Error
}
