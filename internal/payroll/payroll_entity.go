package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusDraft     = "DRAFT"
	StatusProcessed = "PROCESSED"
	StatusVerified  = "VERIFIED"
	StatusApproved  = "APPROVED"
	StatusPosted    = "POSTED"
	StatusPaid      = "PAID"
	StatusCancelled = "CANCELLED"
)

const (
	PeriodMonthly     = "MONTHLY"
	PeriodWeekly      = "WEEKLY"
	PeriodBiweekly    = "BIWEEKLY"
	PeriodSemiMonthly = "SEMI_MONTHLY"
)

// Payroll is one batch run over a pay period. Aggregates are written once
// by Process and are never recomputed outside it.
type Payroll struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID     uuid.UUID `gorm:"type:uuid;not null;index:idx_payroll_company_number,unique;index:idx_payroll_company_status"`
	PayrollNumber string    `gorm:"type:varchar(20);not null;index:idx_payroll_company_number,unique"`

	Period      string    `gorm:"type:varchar(20);not null;default:'MONTHLY'"`
	Month       int       `gorm:"not null"`
	Year        int       `gorm:"not null"`
	StartDate   time.Time `gorm:"type:date;not null"`
	EndDate     time.Time `gorm:"type:date;not null"`
	PaymentDate time.Time `gorm:"type:date;not null"`

	IncludedDepartments []string `gorm:"type:jsonb;serializer:json"`
	ExcludedEmployees   []string `gorm:"type:jsonb;serializer:json"`

	TotalEmployees             int             `gorm:"not null;default:0"`
	ProcessedEmployees         int             `gorm:"not null;default:0"`
	TotalGrossSalary           decimal.Decimal `gorm:"type:numeric(16,2);not null;default:0"`
	TotalDeductions            decimal.Decimal `gorm:"type:numeric(16,2);not null;default:0"`
	TotalNetSalary             decimal.Decimal `gorm:"type:numeric(16,2);not null;default:0"`
	TotalEmployerContributions decimal.Decimal `gorm:"type:numeric(16,2);not null;default:0"`
	TotalCTC                   decimal.Decimal `gorm:"column:total_ctc;type:numeric(16,2);not null;default:0"`

	Status    string    `gorm:"type:varchar(20);not null;default:'DRAFT';index:idx_payroll_company_status"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`

	ProcessedAt *time.Time

	VerifiedBy *uuid.UUID `gorm:"type:uuid"`
	VerifiedAt *time.Time

	ApprovedBy *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt *time.Time `gorm:"index"`

	IsPosted        bool       `gorm:"not null;default:false"`
	PostedBy        *uuid.UUID `gorm:"type:uuid"`
	PostedAt        *time.Time
	JournalEntryRef *string `gorm:"type:varchar(30)"`

	IsPaid           bool       `gorm:"not null;default:false"`
	PaidBy           *uuid.UUID `gorm:"type:uuid"`
	PaidAt           *time.Time `gorm:"index"`
	PaymentReference *string    `gorm:"type:varchar(60)"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Slips []SalarySlip `gorm:"foreignKey:PayrollID"`
}

func (Payroll) TableName() string {
	return "payrolls"
}

const (
	SlipStatusDraft     = "DRAFT"
	SlipStatusGenerated = "GENERATED"
	SlipStatusSent      = "SENT"
	SlipStatusPaid      = "PAID"
	SlipStatusOnHold    = "ON_HOLD"
	SlipStatusCancelled = "CANCELLED"
)

// SalarySlip is the finalized pay statement of one employee for one run.
// Employee master fields are copied at generation time so later HR edits
// never alter history. The (payroll_id, employee_id) unique index is the
// exactly-once guarantee for slip generation.
type SalarySlip struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	PayrollID  uuid.UUID `gorm:"type:uuid;not null;index:idx_slip_payroll_employee,unique"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_slip_payroll_employee,unique"`

	SlipNumber string `gorm:"type:varchar(20);not null;index"`

	// employee snapshot
	EmployeeCode string `gorm:"type:varchar(30);not null"`
	EmployeeName string `gorm:"type:varchar(120);not null"`
	Designation  string `gorm:"type:varchar(80)"`
	Department   string `gorm:"type:varchar(80)"`
	BankAccount  string `gorm:"type:varchar(40)"`
	PANNumber    string `gorm:"column:pan_number;type:varchar(20)"`
	PFNumber     string `gorm:"column:pf_number;type:varchar(30)"`
	ESINumber    string `gorm:"column:esi_number;type:varchar(30)"`

	Month       int       `gorm:"not null"`
	Year        int       `gorm:"not null"`
	PaymentDate time.Time `gorm:"type:date;not null"`

	WorkingDays   int             `gorm:"not null;default:0"`
	PresentDays   int             `gorm:"not null;default:0"`
	AbsentDays    int             `gorm:"not null;default:0"`
	LeaveDays     int             `gorm:"not null;default:0"`
	PaidDays      int             `gorm:"not null;default:0"`
	LOPDays       int             `gorm:"column:lop_days;not null;default:0"`
	OvertimeHours decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`

	GrossSalary     decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	TotalDeductions decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`

	PFEmployeeContribution  decimal.Decimal `gorm:"column:pf_employee_contribution;type:numeric(14,2);not null;default:0"`
	PFEmployerContribution  decimal.Decimal `gorm:"column:pf_employer_contribution;type:numeric(14,2);not null;default:0"`
	ESIEmployeeContribution decimal.Decimal `gorm:"column:esi_employee_contribution;type:numeric(14,2);not null;default:0"`
	ESIEmployerContribution decimal.Decimal `gorm:"column:esi_employer_contribution;type:numeric(14,2);not null;default:0"`
	ProfessionalTax         decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	TDS                     decimal.Decimal `gorm:"column:tds;type:numeric(14,2);not null;default:0"`

	Advance         decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Loan            decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	OtherDeductions decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Reimbursements  decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Bonus           decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Incentive       decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Arrears         decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`

	TotalEmployerContributions decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	CTC                        decimal.Decimal `gorm:"column:ctc;type:numeric(14,2);not null;default:0"`
	NetSalary                  decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`

	Status string `gorm:"type:varchar(20);not null;default:'DRAFT'"`

	PaidAt           *time.Time
	PaymentReference *string `gorm:"type:varchar(60)"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Lines []SlipLine `gorm:"foreignKey:SlipID"`
}

func (SalarySlip) TableName() string {
	return "salary_slips"
}

const (
	LineTypeEarning      = "EARNING"
	LineTypeDeduction    = "DEDUCTION"
	LineTypeContribution = "CONTRIBUTION"
)

// SlipLine is one resolved component on a slip.
type SlipLine struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SlipID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`

	LineType      string          `gorm:"type:varchar(20);not null"`
	ComponentCode string          `gorm:"type:varchar(30);not null"`
	ComponentName string          `gorm:"type:varchar(120);not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Taxable       bool            `gorm:"not null;default:true"`
	DisplayOrder  int             `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SlipLine) TableName() string {
	return "salary_slip_lines"
}
