package salarystructure

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ComponentTypeEarning      = "EARNING"
	ComponentTypeDeduction    = "DEDUCTION"
	ComponentTypeContribution = "CONTRIBUTION"
)

const (
	CalcFixedAmount    = "FIXED_AMOUNT"
	CalcPercentOfBasic = "PERCENT_OF_BASIC"
	CalcPercentOfGross = "PERCENT_OF_GROSS"
	CalcPercentOfCTC   = "PERCENT_OF_CTC"
	CalcFormula        = "FORMULA"
)

// SalaryStructure is the reusable pay template. Amounts are never edited
// retroactively: a change is a new structure row with a later effective_from.
type SalaryStructure struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index:idx_structure_company_code"`
	Code      string    `gorm:"type:varchar(30);not null;index:idx_structure_company_code"`
	Name      string    `gorm:"type:varchar(120);not null"`

	EffectiveFrom time.Time  `gorm:"type:date;not null"`
	EffectiveTo   *time.Time `gorm:"type:date"` // nil means open-ended

	PFApplicable       bool `gorm:"not null;default:false"`
	ESIApplicable      bool `gorm:"not null;default:false"`
	GratuityApplicable bool `gorm:"not null;default:false"`
	PTApplicable       bool `gorm:"not null;default:false"`
	LWFApplicable      bool `gorm:"not null;default:false"`

	PFEmployeeRate  decimal.Decimal     `gorm:"type:numeric(5,2);not null;default:0"`
	PFEmployerRate  decimal.Decimal     `gorm:"type:numeric(5,2);not null;default:0"`
	PFCeiling       decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	ESIEmployeeRate decimal.Decimal     `gorm:"type:numeric(5,2);not null;default:0"`
	ESIEmployerRate decimal.Decimal     `gorm:"type:numeric(5,2);not null;default:0"`
	ESICeiling      decimal.NullDecimal `gorm:"type:numeric(14,2)"`

	IsActive bool `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Components []SalaryComponent `gorm:"foreignKey:StructureID"`
}

func (SalaryStructure) TableName() string {
	return "salary_structures"
}

// EffectiveOn reports whether the structure covers the given date.
func (s *SalaryStructure) EffectiveOn(date time.Time) bool {
	if !s.IsActive {
		return false
	}
	if date.Before(s.EffectiveFrom) {
		return false
	}
	if s.EffectiveTo != nil && date.After(*s.EffectiveTo) {
		return false
	}
	return true
}

// SalaryComponent is one line item inside a structure with its calculation
// rule. Value holds an amount for FIXED_AMOUNT and a percentage for the
// PERCENT_OF_* types; Formula is used only when CalculationType is FORMULA.
type SalaryComponent struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StructureID uuid.UUID `gorm:"type:uuid;not null;index"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index"`

	Code            string          `gorm:"type:varchar(30);not null"`
	Name            string          `gorm:"type:varchar(120);not null"`
	Type            string          `gorm:"type:varchar(20);not null"`
	CalculationType string          `gorm:"type:varchar(20);not null"`
	Value           decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Formula         *string         `gorm:"type:text"`

	Statutory          bool `gorm:"not null;default:false"`
	Taxable            bool `gorm:"not null;default:true"`
	Proratable         bool `gorm:"not null;default:false"`
	PFApplicable       bool `gorm:"not null;default:false"`
	ESIApplicable      bool `gorm:"not null;default:false"`
	GratuityApplicable bool `gorm:"not null;default:false"`

	DisplayOrder int  `gorm:"not null;default:0"`
	IsActive     bool `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SalaryComponent) TableName() string {
	return "salary_structure_components"
}
