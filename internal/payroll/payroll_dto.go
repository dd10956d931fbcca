package payroll

import "github.com/shopspring/decimal"

type CreatePayrollRequest struct {
	Period              string   `json:"period" binding:"required,oneof=MONTHLY WEEKLY BIWEEKLY SEMI_MONTHLY"`
	Month               int      `json:"month" binding:"required,min=1,max=12"`
	Year                int      `json:"year" binding:"required,min=2000,max=2100"`
	StartDate           string   `json:"start_date" binding:"required"`
	EndDate             string   `json:"end_date" binding:"required"`
	PaymentDate         string   `json:"payment_date" binding:"required"`
	IncludedDepartments []string `json:"included_departments"`
	ExcludedEmployees   []string `json:"excluded_employees" binding:"omitempty,dive,uuid"`
}

type PostToLedgerRequest struct {
	// optional: when absent a journal reference is issued from the JV series
	JournalEntryRef *string `json:"journal_entry_ref"`
}

type MarkPaidRequest struct {
	PaymentReference string `json:"payment_reference" binding:"required,max=60"`
}

type GetPayrollsFilterRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=DRAFT PROCESSED VERIFIED APPROVED POSTED PAID CANCELLED"`
	Year   int    `form:"year" binding:"omitempty,min=2000,max=2100"`
	Month  int    `form:"month" binding:"omitempty,min=1,max=12"`
}

type PayrollResponse struct {
	ID            string `json:"id"`
	CompanyID     string `json:"company_id"`
	PayrollNumber string `json:"payroll_number"`
	Period        string `json:"period"`
	Month         int    `json:"month"`
	Year          int    `json:"year"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	PaymentDate   string `json:"payment_date"`

	IncludedDepartments []string `json:"included_departments,omitempty"`
	ExcludedEmployees   []string `json:"excluded_employees,omitempty"`

	TotalEmployees             int             `json:"total_employees"`
	ProcessedEmployees         int             `json:"processed_employees"`
	TotalGrossSalary           decimal.Decimal `json:"total_gross_salary"`
	TotalDeductions            decimal.Decimal `json:"total_deductions"`
	TotalNetSalary             decimal.Decimal `json:"total_net_salary"`
	TotalEmployerContributions decimal.Decimal `json:"total_employer_contributions"`
	TotalCTC                   decimal.Decimal `json:"total_ctc"`

	Status    string `json:"status"`
	CreatedBy string `json:"created_by"`

	ProcessedAt      *string `json:"processed_at,omitempty"`
	VerifiedBy       *string `json:"verified_by,omitempty"`
	VerifiedAt       *string `json:"verified_at,omitempty"`
	ApprovedBy       *string `json:"approved_by,omitempty"`
	ApprovedAt       *string `json:"approved_at,omitempty"`
	PostedBy         *string `json:"posted_by,omitempty"`
	PostedAt         *string `json:"posted_at,omitempty"`
	JournalEntryRef  *string `json:"journal_entry_ref,omitempty"`
	PaidBy           *string `json:"paid_by,omitempty"`
	PaidAt           *string `json:"paid_at,omitempty"`
	PaymentReference *string `json:"payment_reference,omitempty"`
}

type PayAdviceResponse struct {
	PayrollNumber  string          `json:"payroll_number"`
	Month          int             `json:"month"`
	Year           int             `json:"year"`
	TotalEmployees int             `json:"total_employees"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	PaymentDate    string          `json:"payment_date"`
}

type SlipLineResponse struct {
	LineType      string          `json:"line_type"`
	ComponentCode string          `json:"component_code"`
	ComponentName string          `json:"component_name"`
	Amount        decimal.Decimal `json:"amount"`
	Taxable       bool            `json:"is_taxable"`
	DisplayOrder  int             `json:"display_order"`
}

type SlipResponse struct {
	ID         string `json:"id"`
	PayrollID  string `json:"payroll_id"`
	EmployeeID string `json:"employee_id"`
	SlipNumber string `json:"slip_number"`

	EmployeeCode string `json:"employee_code"`
	EmployeeName string `json:"employee_name"`
	Designation  string `json:"designation,omitempty"`
	Department   string `json:"department,omitempty"`
	BankAccount  string `json:"bank_account,omitempty"`
	PANNumber    string `json:"pan_number,omitempty"`
	PFNumber     string `json:"pf_number,omitempty"`
	ESINumber    string `json:"esi_number,omitempty"`

	Month       int    `json:"month"`
	Year        int    `json:"year"`
	PaymentDate string `json:"payment_date"`

	WorkingDays   int             `json:"working_days"`
	PresentDays   int             `json:"present_days"`
	AbsentDays    int             `json:"absent_days"`
	LeaveDays     int             `json:"leave_days"`
	PaidDays      int             `json:"paid_days"`
	LOPDays       int             `json:"lop_days"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`

	GrossSalary     decimal.Decimal `json:"gross_salary"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`

	PFEmployeeContribution  decimal.Decimal `json:"pf_employee_contribution"`
	PFEmployerContribution  decimal.Decimal `json:"pf_employer_contribution"`
	ESIEmployeeContribution decimal.Decimal `json:"esi_employee_contribution"`
	ESIEmployerContribution decimal.Decimal `json:"esi_employer_contribution"`
	ProfessionalTax         decimal.Decimal `json:"professional_tax"`
	TDS                     decimal.Decimal `json:"tds"`

	Advance         decimal.Decimal `json:"advance"`
	Loan            decimal.Decimal `json:"loan"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
	Reimbursements  decimal.Decimal `json:"reimbursements"`
	Bonus           decimal.Decimal `json:"bonus"`
	Incentive       decimal.Decimal `json:"incentive"`
	Arrears         decimal.Decimal `json:"arrears"`

	TotalEmployerContributions decimal.Decimal `json:"total_employer_contributions"`
	CTC                        decimal.Decimal `json:"ctc"`
	NetSalary                  decimal.Decimal `json:"net_salary"`

	Status           string  `json:"status"`
	PaidAt           *string `json:"paid_at,omitempty"`
	PaymentReference *string `json:"payment_reference,omitempty"`

	Lines []SlipLineResponse `json:"lines"`
}
