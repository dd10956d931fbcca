package salarystructure

import (
	"fmt"
	"sort"
	"strings"

	structureerrors "go-payroll/internal/salarystructure/errors"

	"github.com/shopspring/decimal"
)

// BaseFigures are the employee's contractual pay figures that percentage
// components are computed against.
type BaseFigures struct {
	Basic decimal.Decimal
	Gross decimal.Decimal
	CTC   decimal.Decimal
}

var oneHundred = decimal.NewFromInt(100)

// round2 applies the engine-wide rounding policy: 2 decimal places,
// half up. Applied exactly once per component, never re-applied to sums.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Resolve evaluates the structure's active components into concrete amounts
// keyed by component code.
//
// Components are walked in display order. Formula components that reference
// codes not yet resolved are re-queued; when a full pass makes no progress
// the remaining components form a cycle. factor is the loss-of-pay proration
// ratio (presentDays/workingDays): percentage components see prorated base
// figures, fixed components are scaled only when flagged Proratable, and
// formula components inherit proration through their operands. Rounding is
// applied once per component, after proration.
func Resolve(components []SalaryComponent, base BaseFigures, factor decimal.Decimal) (map[string]decimal.Decimal, error) {
	active := make([]SalaryComponent, 0, len(components))
	for _, c := range components {
		if c.IsActive {
			active = append(active, c)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].DisplayOrder < active[j].DisplayOrder
	})

	known := make(map[string]bool, len(active))
	for _, c := range active {
		known[c.Code] = true
	}

	proratedBase := BaseFigures{
		Basic: base.Basic.Mul(factor),
		Gross: base.Gross.Mul(factor),
		CTC:   base.CTC.Mul(factor),
	}

	resolved := make(map[string]decimal.Decimal, len(active))
	pending := active

	for pass := 0; len(pending) > 0 && pass <= len(active); pass++ {
		var requeued []SalaryComponent
		progress := false

		for _, c := range pending {
			amount, ready, err := resolveComponent(c, proratedBase, factor, resolved, known)
			if err != nil {
				return nil, err
			}
			if !ready {
				requeued = append(requeued, c)
				continue
			}
			resolved[c.Code] = amount
			progress = true
		}

		if !progress {
			codes := make([]string, len(requeued))
			for i, c := range requeued {
				codes[i] = c.Code
			}
			return nil, fmt.Errorf("%w: %s", structureerrors.ErrCircularReference, strings.Join(codes, ", "))
		}
		pending = requeued
	}

	return resolved, nil
}

func resolveComponent(
	c SalaryComponent,
	base BaseFigures,
	factor decimal.Decimal,
	resolved map[string]decimal.Decimal,
	known map[string]bool,
) (decimal.Decimal, bool, error) {
	switch c.CalculationType {
	case CalcFixedAmount:
		amount := c.Value
		if c.Proratable {
			amount = amount.Mul(factor)
		}
		return round2(amount), true, nil

	case CalcPercentOfBasic:
		return round2(c.Value.Div(oneHundred).Mul(base.Basic)), true, nil

	case CalcPercentOfGross:
		return round2(c.Value.Div(oneHundred).Mul(base.Gross)), true, nil

	case CalcPercentOfCTC:
		return round2(c.Value.Div(oneHundred).Mul(base.CTC)), true, nil

	case CalcFormula:
		if c.Formula == nil {
			return decimal.Zero, false, fmt.Errorf("%w: component %s", structureerrors.ErrMissingFormula, c.Code)
		}
		f, err := ParseFormula(*c.Formula)
		if err != nil {
			return decimal.Zero, false, fmt.Errorf("component %s: %w", c.Code, err)
		}
		for _, ref := range f.Refs() {
			if !known[ref] {
				return decimal.Zero, false, fmt.Errorf("%w: component %s references %s", structureerrors.ErrUnknownComponent, c.Code, ref)
			}
			if _, ok := resolved[ref]; !ok {
				// dependency not resolved yet, re-queue
				return decimal.Zero, false, nil
			}
		}
		amount, err := f.Eval(resolved)
		if err != nil {
			return decimal.Zero, false, fmt.Errorf("component %s: %w", c.Code, err)
		}
		return round2(amount), true, nil
	}

	return decimal.Zero, false, fmt.Errorf("%w: component %s has calculation type %q", structureerrors.ErrInvalidFormula, c.Code, c.CalculationType)
}

// ValidateComponents rejects a malformed component set before anything is
// persisted: duplicate codes, negative values, missing or unparsable
// formulas, references to unknown codes, and reference cycles.
func ValidateComponents(components []SalaryComponent) error {
	if len(components) == 0 {
		return structureerrors.ErrNoComponents
	}

	known := make(map[string]bool, len(components))
	for _, c := range components {
		if known[c.Code] {
			return fmt.Errorf("%w: %s", structureerrors.ErrDuplicateComponentCode, c.Code)
		}
		known[c.Code] = true

		if c.Value.IsNegative() {
			return fmt.Errorf("%w: component %s", structureerrors.ErrNegativeComponentValue, c.Code)
		}

		switch c.CalculationType {
		case CalcFixedAmount, CalcPercentOfBasic, CalcPercentOfGross, CalcPercentOfCTC:
		case CalcFormula:
			if c.Formula == nil || strings.TrimSpace(*c.Formula) == "" {
				return fmt.Errorf("%w: component %s", structureerrors.ErrMissingFormula, c.Code)
			}
		default:
			return fmt.Errorf("%w: component %s has calculation type %q", structureerrors.ErrInvalidFormula, c.Code, c.CalculationType)
		}
	}

	// dependency graph over formula references
	deps := make(map[string][]string, len(components))
	for _, c := range components {
		if c.CalculationType != CalcFormula {
			continue
		}
		f, err := ParseFormula(*c.Formula)
		if err != nil {
			return fmt.Errorf("component %s: %w", c.Code, err)
		}
		for _, ref := range f.Refs() {
			if !known[ref] {
				return fmt.Errorf("%w: component %s references %s", structureerrors.ErrUnknownComponent, c.Code, ref)
			}
		}
		deps[c.Code] = f.Refs()
	}

	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[string]int, len(deps))

	var visit func(code string) error
	visit = func(code string) error {
		switch state[code] {
		case visiting:
			return fmt.Errorf("%w: %s", structureerrors.ErrCircularReference, code)
		case done:
			return nil
		}
		state[code] = visiting
		for _, ref := range deps[code] {
			if err := visit(ref); err != nil {
				return err
			}
		}
		state[code] = done
		return nil
	}

	for code := range deps {
		if err := visit(code); err != nil {
			return err
		}
	}

	return nil
}
