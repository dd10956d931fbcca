package events

import "time"

const EmployeeLifecycleTopic = "hr.employee.lifecycle.v1"

// EmployeeUpsertedEvent is emitted by the HR system of record whenever an
// employee is hired, updated or deactivated. The payroll engine consumes it
// to keep its employee directory snapshot current.
type EmployeeUpsertedEvent struct {
	EventType         string    `json:"event_type"`
	EmployeeID        string    `json:"employee_id"`
	CompanyID         string    `json:"company_id"`
	Code              string    `json:"code"`
	FullName          string    `json:"full_name"`
	Designation       string    `json:"designation"`
	Department        string    `json:"department"`
	BankAccount       string    `json:"bank_account"`
	PANNumber         string    `json:"pan_number"`
	PFNumber          string    `json:"pf_number"`
	ESINumber         string    `json:"esi_number"`
	BasicSalary       string    `json:"basic_salary"`
	GrossSalary       string    `json:"gross_salary"`
	CTC               string    `json:"ctc"`
	SalaryStructureID *string   `json:"salary_structure_id"`
	IsActive          bool      `json:"is_active"`
	OccurredAt        time.Time `json:"occurred_at"`
}
