package salarystructure

import "github.com/shopspring/decimal"

type ComponentInput struct {
	Code            string          `json:"code" binding:"required,max=30"`
	Name            string          `json:"name" binding:"required,max=120"`
	Type            string          `json:"type" binding:"required,oneof=EARNING DEDUCTION CONTRIBUTION"`
	CalculationType string          `json:"calculation_type" binding:"required,oneof=FIXED_AMOUNT PERCENT_OF_BASIC PERCENT_OF_GROSS PERCENT_OF_CTC FORMULA"`
	Value           decimal.Decimal `json:"value"`
	Formula         *string         `json:"formula"`
	Statutory       bool            `json:"is_statutory"`
	Taxable         bool            `json:"is_taxable"`
	Proratable      bool            `json:"is_proratable"`
	PFApplicable    bool            `json:"is_pf_applicable"`
	ESIApplicable   bool            `json:"is_esi_applicable"`
	GratuityApplic  bool            `json:"is_gratuity_applicable"`
	DisplayOrder    int             `json:"display_order"`
	IsActive        *bool           `json:"is_active"`
}

type CreateSalaryStructureRequest struct {
	Code          string  `json:"code" binding:"required,max=30"`
	Name          string  `json:"name" binding:"required,max=120"`
	EffectiveFrom string  `json:"effective_from" binding:"required"`
	EffectiveTo   *string `json:"effective_to"`

	PFApplicable       bool `json:"is_pf_applicable"`
	ESIApplicable      bool `json:"is_esi_applicable"`
	GratuityApplicable bool `json:"is_gratuity_applicable"`
	PTApplicable       bool `json:"is_pt_applicable"`
	LWFApplicable      bool `json:"is_lwf_applicable"`

	PFEmployeeRate  decimal.Decimal  `json:"pf_employee_rate"`
	PFEmployerRate  decimal.Decimal  `json:"pf_employer_rate"`
	PFCeiling       *decimal.Decimal `json:"pf_ceiling"`
	ESIEmployeeRate decimal.Decimal  `json:"esi_employee_rate"`
	ESIEmployerRate decimal.Decimal  `json:"esi_employer_rate"`
	ESICeiling      *decimal.Decimal `json:"esi_ceiling"`

	Components []ComponentInput `json:"components" binding:"required,min=1,dive"`
}

type UpdateSalaryStructureRequest struct {
	Name          string  `json:"name" binding:"required,max=120"`
	EffectiveFrom string  `json:"effective_from" binding:"required"`
	EffectiveTo   *string `json:"effective_to"`
	IsActive      *bool   `json:"is_active"`

	PFApplicable       bool `json:"is_pf_applicable"`
	ESIApplicable      bool `json:"is_esi_applicable"`
	GratuityApplicable bool `json:"is_gratuity_applicable"`
	PTApplicable       bool `json:"is_pt_applicable"`
	LWFApplicable      bool `json:"is_lwf_applicable"`

	PFEmployeeRate  decimal.Decimal  `json:"pf_employee_rate"`
	PFEmployerRate  decimal.Decimal  `json:"pf_employer_rate"`
	PFCeiling       *decimal.Decimal `json:"pf_ceiling"`
	ESIEmployeeRate decimal.Decimal  `json:"esi_employee_rate"`
	ESIEmployerRate decimal.Decimal  `json:"esi_employer_rate"`
	ESICeiling      *decimal.Decimal `json:"esi_ceiling"`

	Components []ComponentInput `json:"components" binding:"required,min=1,dive"`
}

type ComponentResponse struct {
	ID              string          `json:"id"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	CalculationType string          `json:"calculation_type"`
	Value           decimal.Decimal `json:"value"`
	Formula         *string         `json:"formula,omitempty"`
	Statutory       bool            `json:"is_statutory"`
	Taxable         bool            `json:"is_taxable"`
	Proratable      bool            `json:"is_proratable"`
	PFApplicable    bool            `json:"is_pf_applicable"`
	ESIApplicable   bool            `json:"is_esi_applicable"`
	GratuityApplic  bool            `json:"is_gratuity_applicable"`
	DisplayOrder    int             `json:"display_order"`
	IsActive        bool            `json:"is_active"`
}

type SalaryStructureResponse struct {
	ID            string  `json:"id"`
	CompanyID     string  `json:"company_id"`
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	EffectiveFrom string  `json:"effective_from"`
	EffectiveTo   *string `json:"effective_to,omitempty"`
	IsActive      bool    `json:"is_active"`

	PFApplicable       bool `json:"is_pf_applicable"`
	ESIApplicable      bool `json:"is_esi_applicable"`
	GratuityApplicable bool `json:"is_gratuity_applicable"`
	PTApplicable       bool `json:"is_pt_applicable"`
	LWFApplicable      bool `json:"is_lwf_applicable"`

	PFEmployeeRate  decimal.Decimal  `json:"pf_employee_rate"`
	PFEmployerRate  decimal.Decimal  `json:"pf_employer_rate"`
	PFCeiling       *decimal.Decimal `json:"pf_ceiling,omitempty"`
	ESIEmployeeRate decimal.Decimal  `json:"esi_employee_rate"`
	ESIEmployerRate decimal.Decimal  `json:"esi_employer_rate"`
	ESICeiling      *decimal.Decimal `json:"esi_ceiling,omitempty"`

	Components []ComponentResponse `json:"components"`
}
