package structureerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrStructureNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary structure not found",
		http.StatusNotFound,
	)
	ErrDuplicateStructureCode = apperror.New(
		apperror.CodeConflict,
		"salary structure code already exists",
		http.StatusConflict,
	)
	ErrEffectiveWindowOverlap = apperror.New(
		apperror.CodeConflict,
		"an effective salary structure already exists for this code in the given window",
		http.StatusConflict,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidEffectiveWindow = apperror.New(
		apperror.CodeInvalidInput,
		"effective_from must be before effective_to",
		http.StatusBadRequest,
	)
	ErrNoComponents = apperror.New(
		apperror.CodeInvalidInput,
		"salary structure requires at least one component",
		http.StatusBadRequest,
	)
	ErrDuplicateComponentCode = apperror.New(
		apperror.CodeInvalidInput,
		"component codes must be unique within a structure",
		http.StatusBadRequest,
	)
	ErrNegativeComponentValue = apperror.New(
		apperror.CodeInvalidInput,
		"component value cannot be negative",
		http.StatusBadRequest,
	)
	ErrMissingFormula = apperror.New(
		apperror.CodeInvalidInput,
		"formula components require a formula expression",
		http.StatusBadRequest,
	)
	ErrInvalidFormula = apperror.New(
		apperror.CodeInvalidInput,
		"formula expression is invalid",
		http.StatusBadRequest,
	)
	ErrUnknownComponent = apperror.New(
		apperror.CodeInvalidInput,
		"formula references an unknown component code",
		http.StatusBadRequest,
	)
	ErrCircularReference = apperror.New(
		apperror.CodeInvalidInput,
		"formula components form a circular reference",
		http.StatusBadRequest,
	)
	ErrInvalidRate = apperror.New(
		apperror.CodeInvalidInput,
		"statutory rates must be between 0 and 100",
		http.StatusBadRequest,
	)
	ErrDivisionByZero = apperror.New(
		apperror.CodeInvalidInput,
		"formula divides by zero",
		http.StatusBadRequest,
	)
)
