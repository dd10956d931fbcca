package statutory

import (
	"sort"

	"github.com/shopspring/decimal"
)

// TaxPolicy answers the two rate-table lookups the slip generator needs.
// Exact slabs are jurisdiction config, not engine logic, so they stay
// behind this interface.
type TaxPolicy interface {
	ProfessionalTax(gross decimal.Decimal) decimal.Decimal
	TDS(annualizedGross decimal.Decimal) decimal.Decimal
}

// Bracket is one row of a rate table: the amount (PT) or percentage (TDS)
// applied to a gross at or above From.
type Bracket struct {
	From  decimal.Decimal
	Value decimal.Decimal
}

// BracketTaxPolicy is a table-driven TaxPolicy. PT brackets hold flat
// monthly amounts; TDS brackets hold percentages applied to the annualized
// gross, with the resulting annual tax spread over 12 months.
type BracketTaxPolicy struct {
	ptBrackets  []Bracket
	tdsBrackets []Bracket
}

func NewBracketTaxPolicy(ptBrackets, tdsBrackets []Bracket) *BracketTaxPolicy {
	pt := make([]Bracket, len(ptBrackets))
	copy(pt, ptBrackets)
	sort.Slice(pt, func(i, j int) bool { return pt[i].From.LessThan(pt[j].From) })

	tds := make([]Bracket, len(tdsBrackets))
	copy(tds, tdsBrackets)
	sort.Slice(tds, func(i, j int) bool { return tds[i].From.LessThan(tds[j].From) })

	return &BracketTaxPolicy{ptBrackets: pt, tdsBrackets: tds}
}

// NewZeroTaxPolicy returns a policy with empty tables, for organizations
// where neither levy applies.
func NewZeroTaxPolicy() *BracketTaxPolicy {
	return &BracketTaxPolicy{}
}

func (p *BracketTaxPolicy) ProfessionalTax(gross decimal.Decimal) decimal.Decimal {
	return lookup(p.ptBrackets, gross)
}

func (p *BracketTaxPolicy) TDS(annualizedGross decimal.Decimal) decimal.Decimal {
	rate := lookup(p.tdsBrackets, annualizedGross)
	if rate.IsZero() {
		return decimal.Zero
	}
	annualTax := annualizedGross.Mul(rate).Div(decimal.NewFromInt(100))
	return annualTax.Div(decimal.NewFromInt(12)).Round(2)
}

// lookup returns the value of the highest bracket whose From is not above
// the amount, or zero below the lowest bracket.
func lookup(brackets []Bracket, amount decimal.Decimal) decimal.Decimal {
	result := decimal.Zero
	for _, b := range brackets {
		if amount.GreaterThanOrEqual(b.From) {
			result = b.Value
			continue
		}
		break
	}
	return result
}
