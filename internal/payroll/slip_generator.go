package payroll

import (
	"sort"

	"go-payroll/internal/attendance"
	"go-payroll/internal/employee"
	"go-payroll/internal/salarystructure"
	"go-payroll/internal/statutory"

	"github.com/shopspring/decimal"
)

var twelve = decimal.NewFromInt(12)

// Generator turns one employee, one salary structure and one attendance
// summary into a salary slip. It does no IO, so identical inputs always
// produce an identical slip.
type Generator struct {
	taxPolicy statutory.TaxPolicy
}

func NewGenerator(taxPolicy statutory.TaxPolicy) *Generator {
	return &Generator{taxPolicy: taxPolicy}
}

type GenerateInput struct {
	Run        *Payroll
	Employee   *employee.Employee
	Structure  *salarystructure.SalaryStructure
	Counts     attendance.Counts
	SlipNumber string
}

// Generate resolves the structure's components against the employee's pay
// figures, prorated by attendance, then layers statutory deductions and
// taxes on top. The caller is responsible for eligibility checks
// (structure assigned and effective) before calling.
func (g *Generator) Generate(in GenerateInput) (*SalarySlip, error) {
	factor := prorationFactor(in.Counts)

	base := salarystructure.BaseFigures{
		Basic: in.Employee.BasicSalary,
		Gross: in.Employee.GrossSalary,
		CTC:   in.Employee.CTC,
	}

	amounts, err := salarystructure.Resolve(in.Structure.Components, base, factor)
	if err != nil {
		return nil, err
	}

	slip := &SalarySlip{
		CompanyID:  in.Run.CompanyID,
		PayrollID:  in.Run.ID,
		EmployeeID: in.Employee.ID,
		SlipNumber: in.SlipNumber,

		EmployeeCode: in.Employee.Code,
		EmployeeName: in.Employee.FullName,
		Designation:  in.Employee.Designation,
		Department:   in.Employee.Department,
		BankAccount:  in.Employee.BankAccount,
		PANNumber:    in.Employee.PANNumber,
		PFNumber:     in.Employee.PFNumber,
		ESINumber:    in.Employee.ESINumber,

		Month:       in.Run.Month,
		Year:        in.Run.Year,
		PaymentDate: in.Run.PaymentDate,

		WorkingDays:   in.Counts.WorkingDays,
		PresentDays:   in.Counts.PresentDays,
		AbsentDays:    in.Counts.AbsentDays,
		LeaveDays:     in.Counts.LeaveDays,
		PaidDays:      in.Counts.PaidDays(),
		LOPDays:       in.Counts.LOPDays,
		OvertimeHours: in.Counts.OvertimeHours,

		Status: SlipStatusGenerated,
	}

	gross := decimal.Zero
	componentDeductions := decimal.Zero
	structureContributions := decimal.Zero
	pfBase := decimal.Zero
	pfBaseSet := false

	for _, c := range activeInDisplayOrder(in.Structure.Components) {
		amount := amounts[c.Code]

		slip.Lines = append(slip.Lines, SlipLine{
			CompanyID:     in.Run.CompanyID,
			LineType:      c.Type,
			ComponentCode: c.Code,
			ComponentName: c.Name,
			Amount:        amount,
			Taxable:       c.Taxable,
			DisplayOrder:  c.DisplayOrder,
		})

		switch c.Type {
		case salarystructure.ComponentTypeEarning:
			gross = gross.Add(amount)
			if c.PFApplicable {
				pfBase = pfBase.Add(amount)
				pfBaseSet = true
			}
		case salarystructure.ComponentTypeDeduction:
			componentDeductions = componentDeductions.Add(amount)
		case salarystructure.ComponentTypeContribution:
			structureContributions = structureContributions.Add(amount)
		}
	}

	// no component is flagged PF-applicable: contributions fall back to the
	// prorated contractual basic
	if !pfBaseSet {
		pfBase = in.Employee.BasicSalary.Mul(factor).Round(2)
	}

	contrib, err := statutory.Compute(statutoryConfig(in.Structure), pfBase, gross)
	if err != nil {
		return nil, err
	}
	slip.PFEmployeeContribution = contrib.PFEmployee
	slip.PFEmployerContribution = contrib.PFEmployer
	slip.ESIEmployeeContribution = contrib.ESIEmployee
	slip.ESIEmployerContribution = contrib.ESIEmployer

	if in.Structure.PTApplicable {
		slip.ProfessionalTax = g.taxPolicy.ProfessionalTax(gross)
	}
	slip.TDS = g.taxPolicy.TDS(gross.Mul(twelve))

	slip.GrossSalary = gross
	slip.TotalDeductions = componentDeductions.
		Add(contrib.PFEmployee).
		Add(contrib.ESIEmployee).
		Add(slip.ProfessionalTax).
		Add(slip.TDS).
		Add(slip.Advance).
		Add(slip.Loan).
		Add(slip.OtherDeductions)

	slip.TotalEmployerContributions = structureContributions.
		Add(contrib.PFEmployer).
		Add(contrib.ESIEmployer)
	slip.CTC = gross.Add(slip.TotalEmployerContributions)

	slip.NetSalary = gross.
		Sub(slip.TotalDeductions).
		Add(slip.Reimbursements).
		Add(slip.Bonus).
		Add(slip.Incentive).
		Add(slip.Arrears)

	return slip, nil
}

// prorationFactor is presentDays/workingDays. The attendance provider
// guarantees workingDays > 0.
func prorationFactor(counts attendance.Counts) decimal.Decimal {
	return decimal.NewFromInt(int64(counts.PresentDays)).
		Div(decimal.NewFromInt(int64(counts.WorkingDays)))
}

func activeInDisplayOrder(components []salarystructure.SalaryComponent) []salarystructure.SalaryComponent {
	out := make([]salarystructure.SalaryComponent, 0, len(components))
	for _, c := range components {
		if c.IsActive {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})
	return out
}

func statutoryConfig(s *salarystructure.SalaryStructure) statutory.Config {
	return statutory.Config{
		PFApplicable:   s.PFApplicable,
		PFEmployeeRate: s.PFEmployeeRate,
		PFEmployerRate: s.PFEmployerRate,
		PFCeiling:      nullDecimalPtr(s.PFCeiling),

		ESIApplicable:   s.ESIApplicable,
		ESIEmployeeRate: s.ESIEmployeeRate,
		ESIEmployerRate: s.ESIEmployerRate,
		ESICeiling:      nullDecimalPtr(s.ESICeiling),
	}
}

func nullDecimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
