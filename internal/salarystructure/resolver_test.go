package salarystructure_test

import (
	"testing"

	"go-payroll/internal/salarystructure"
	structureerrors "go-payroll/internal/salarystructure/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func fixedComponent(code string, value string, proratable bool, order int) salarystructure.SalaryComponent {
	return salarystructure.SalaryComponent{
		Code:            code,
		Name:            code,
		Type:            salarystructure.ComponentTypeEarning,
		CalculationType: salarystructure.CalcFixedAmount,
		Value:           decimal.RequireFromString(value),
		Proratable:      proratable,
		DisplayOrder:    order,
		IsActive:        true,
	}
}

func percentOfBasic(code string, percent string, order int) salarystructure.SalaryComponent {
	return salarystructure.SalaryComponent{
		Code:            code,
		Name:            code,
		Type:            salarystructure.ComponentTypeEarning,
		CalculationType: salarystructure.CalcPercentOfBasic,
		Value:           decimal.RequireFromString(percent),
		DisplayOrder:    order,
		IsActive:        true,
	}
}

func formulaComponent(code, formula string, order int) salarystructure.SalaryComponent {
	return salarystructure.SalaryComponent{
		Code:            code,
		Name:            code,
		Type:            salarystructure.ComponentTypeEarning,
		CalculationType: salarystructure.CalcFormula,
		Formula:         &formula,
		DisplayOrder:    order,
		IsActive:        true,
	}
}

func baseFigures(basic, gross, ctc string) salarystructure.BaseFigures {
	return salarystructure.BaseFigures{
		Basic: decimal.RequireFromString(basic),
		Gross: decimal.RequireFromString(gross),
		CTC:   decimal.RequireFromString(ctc),
	}
}

func TestResolve_FullAttendance(t *testing.T) {
	components := []salarystructure.SalaryComponent{
		fixedComponent("BASIC", "20000", true, 1),
		percentOfBasic("HRA", "40", 2),
	}

	resolved, err := salarystructure.Resolve(components, baseFigures("20000", "28000", "30000"), decimal.NewFromInt(1))
	assert.NoError(t, err)
	assert.Equal(t, "20000.00", resolved["BASIC"].StringFixed(2))
	assert.Equal(t, "8000.00", resolved["HRA"].StringFixed(2))
}

func TestResolve_ProratedBase(t *testing.T) {
	components := []salarystructure.SalaryComponent{
		fixedComponent("BASIC", "20000", true, 1),
		percentOfBasic("HRA", "40", 2),
	}

	// 20 of 25 working days
	factor := decimal.RequireFromString("0.8")

	resolved, err := salarystructure.Resolve(components, baseFigures("20000", "28000", "30000"), factor)
	assert.NoError(t, err)
	assert.Equal(t, "16000.00", resolved["BASIC"].StringFixed(2))
	assert.Equal(t, "6400.00", resolved["HRA"].StringFixed(2))
}

func TestResolve_FixedNotProratable(t *testing.T) {
	components := []salarystructure.SalaryComponent{
		fixedComponent("CONVEYANCE", "1600", false, 1),
	}

	resolved, err := salarystructure.Resolve(components, baseFigures("20000", "28000", "30000"), decimal.RequireFromString("0.5"))
	assert.NoError(t, err)
	assert.Equal(t, "1600.00", resolved["CONVEYANCE"].StringFixed(2))
}

func TestResolve_FormulaRequeuedUntilDepsReady(t *testing.T) {
	// the formula component sorts first yet depends on the later two
	components := []salarystructure.SalaryComponent{
		formulaComponent("SPECIAL", "BASIC + HRA / 2", 0),
		fixedComponent("BASIC", "10000", true, 1),
		percentOfBasic("HRA", "50", 2),
	}

	resolved, err := salarystructure.Resolve(components, baseFigures("10000", "15000", "18000"), decimal.NewFromInt(1))
	assert.NoError(t, err)
	assert.Equal(t, "12500.00", resolved["SPECIAL"].StringFixed(2))
}

func TestResolve_InactiveComponentsSkipped(t *testing.T) {
	inactive := fixedComponent("BONUS", "5000", false, 3)
	inactive.IsActive = false

	components := []salarystructure.SalaryComponent{
		fixedComponent("BASIC", "20000", true, 1),
		inactive,
	}

	resolved, err := salarystructure.Resolve(components, baseFigures("20000", "20000", "20000"), decimal.NewFromInt(1))
	assert.NoError(t, err)
	assert.Len(t, resolved, 1)
	assert.NotContains(t, resolved, "BONUS")
}

func TestResolve_CircularReference(t *testing.T) {
	components := []salarystructure.SalaryComponent{
		formulaComponent("A", "B + 1", 1),
		formulaComponent("B", "A + 1", 2),
	}

	_, err := salarystructure.Resolve(components, baseFigures("1000", "1000", "1000"), decimal.NewFromInt(1))
	assert.ErrorIs(t, err, structureerrors.ErrCircularReference)
}

func TestResolve_UnknownReference(t *testing.T) {
	components := []salarystructure.SalaryComponent{
		formulaComponent("SPECIAL", "BASIC + MISSING", 1),
		fixedComponent("BASIC", "1000", false, 2),
	}

	_, err := salarystructure.Resolve(components, baseFigures("1000", "1000", "1000"), decimal.NewFromInt(1))
	assert.ErrorIs(t, err, structureerrors.ErrUnknownComponent)
}

func TestValidateComponents(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		err := salarystructure.ValidateComponents(nil)
		assert.ErrorIs(t, err, structureerrors.ErrNoComponents)
	})

	t.Run("duplicate code", func(t *testing.T) {
		err := salarystructure.ValidateComponents([]salarystructure.SalaryComponent{
			fixedComponent("BASIC", "1000", false, 1),
			fixedComponent("BASIC", "2000", false, 2),
		})
		assert.ErrorIs(t, err, structureerrors.ErrDuplicateComponentCode)
	})

	t.Run("negative value", func(t *testing.T) {
		err := salarystructure.ValidateComponents([]salarystructure.SalaryComponent{
			fixedComponent("BASIC", "-1", false, 1),
		})
		assert.ErrorIs(t, err, structureerrors.ErrNegativeComponentValue)
	})

	t.Run("missing formula", func(t *testing.T) {
		c := fixedComponent("SPECIAL", "0", false, 1)
		c.CalculationType = salarystructure.CalcFormula
		err := salarystructure.ValidateComponents([]salarystructure.SalaryComponent{c})
		assert.ErrorIs(t, err, structureerrors.ErrMissingFormula)
	})

	t.Run("unknown calculation type", func(t *testing.T) {
		c := fixedComponent("BASIC", "1000", false, 1)
		c.CalculationType = "LOOKUP_TABLE"
		err := salarystructure.ValidateComponents([]salarystructure.SalaryComponent{c})
		assert.ErrorIs(t, err, structureerrors.ErrInvalidFormula)
	})

	t.Run("cycle rejected before processing", func(t *testing.T) {
		err := salarystructure.ValidateComponents([]salarystructure.SalaryComponent{
			formulaComponent("A", "B + 1", 1),
			formulaComponent("B", "A + 1", 2),
		})
		assert.ErrorIs(t, err, structureerrors.ErrCircularReference)
	})

	t.Run("valid set", func(t *testing.T) {
		err := salarystructure.ValidateComponents([]salarystructure.SalaryComponent{
			fixedComponent("BASIC", "20000", true, 1),
			percentOfBasic("HRA", "40", 2),
			formulaComponent("SPECIAL", "BASIC - HRA", 3),
		})
		assert.NoError(t, err)
	})
}
