package statutory

import (
	"net/http"

	"go-payroll/internal/shared/apperror"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidRate = apperror.New(
		apperror.CodeInvalidInput,
		"statutory rates must be between 0 and 100",
		http.StatusBadRequest,
	)
)

var oneHundred = decimal.NewFromInt(100)

// Config carries the statutory settings of one salary structure. Ceilings
// and the ESI eligibility threshold are optional; nil disables them.
type Config struct {
	PFApplicable   bool
	PFEmployeeRate decimal.Decimal
	PFEmployerRate decimal.Decimal
	PFCeiling      *decimal.Decimal

	ESIApplicable           bool
	ESIEmployeeRate         decimal.Decimal
	ESIEmployerRate         decimal.Decimal
	ESICeiling              *decimal.Decimal
	ESIEligibilityThreshold *decimal.Decimal // gross above this ⇒ out of the scheme
}

// Result holds the per-slip statutory contributions, already rounded.
type Result struct {
	PFEmployee  decimal.Decimal
	PFEmployer  decimal.Decimal
	ESIEmployee decimal.Decimal
	ESIEmployer decimal.Decimal
}

// Compute derives provident-fund and state-insurance contributions from the
// resolved (prorated) basic and gross. Each amount is rounded to 2 decimals
// half up, once.
func Compute(cfg Config, basic, gross decimal.Decimal) (Result, error) {
	if err := validateRates(cfg.PFEmployeeRate, cfg.PFEmployerRate, cfg.ESIEmployeeRate, cfg.ESIEmployerRate); err != nil {
		return Result{}, err
	}

	var res Result

	if cfg.PFApplicable {
		pfBase := capped(basic, cfg.PFCeiling)
		res.PFEmployee = contribution(pfBase, cfg.PFEmployeeRate)
		res.PFEmployer = contribution(pfBase, cfg.PFEmployerRate)
	}

	if cfg.ESIApplicable && withinESIScheme(gross, cfg.ESIEligibilityThreshold) {
		esiBase := capped(gross, cfg.ESICeiling)
		res.ESIEmployee = contribution(esiBase, cfg.ESIEmployeeRate)
		res.ESIEmployer = contribution(esiBase, cfg.ESIEmployerRate)
	}

	return res, nil
}

func contribution(base, rate decimal.Decimal) decimal.Decimal {
	return base.Mul(rate).Div(oneHundred).Round(2)
}

func capped(base decimal.Decimal, ceiling *decimal.Decimal) decimal.Decimal {
	if ceiling != nil && base.GreaterThan(*ceiling) {
		return *ceiling
	}
	return base
}

// withinESIScheme applies the scheme's eligibility cutoff: employees whose
// gross exceeds the threshold fall out of ESI entirely.
func withinESIScheme(gross decimal.Decimal, threshold *decimal.Decimal) bool {
	if threshold == nil {
		return true
	}
	return gross.LessThanOrEqual(*threshold)
}

func validateRates(rates ...decimal.Decimal) error {
	for _, rate := range rates {
		if rate.IsNegative() || rate.GreaterThan(oneHundred) {
			return ErrInvalidRate
		}
	}
	return nil
}
