package payroll

import (
	"errors"
	"strings"

	payrollerrors "go-payroll/internal/payroll/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrPayrollNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return duplicateFor(pgErr.ConstraintName)
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return duplicateFor(err.Error())
	}

	return err
}

func duplicateFor(detail string) error {
	if strings.Contains(detail, "idx_slip_payroll_employee") {
		return payrollerrors.ErrDuplicateSlip
	}
	return payrollerrors.ErrDuplicatePayrollNumber
}
