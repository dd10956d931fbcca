package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Employee is the directory snapshot the payroll engine consumes. Rows are
// synced from the HR system of record (kafka lifecycle events), never
// authored here.
type Employee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`

	Code        string `gorm:"type:varchar(30);not null"`
	FullName    string `gorm:"column:full_name;type:varchar(120);not null"`
	Designation string `gorm:"type:varchar(80)"`
	Department  string `gorm:"type:varchar(80);index"`

	BankAccount string `gorm:"type:varchar(40)"`
	PANNumber   string `gorm:"column:pan_number;type:varchar(20)"`
	PFNumber    string `gorm:"column:pf_number;type:varchar(30)"`
	ESINumber   string `gorm:"column:esi_number;type:varchar(30)"`

	BasicSalary decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	GrossSalary decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	CTC         decimal.Decimal `gorm:"column:ctc;type:numeric(14,2);not null;default:0"`

	SalaryStructureID *uuid.UUID `gorm:"type:uuid;index"`

	IsActive bool `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
