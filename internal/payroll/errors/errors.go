package payrollerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll not found",
		http.StatusNotFound,
	)
	ErrSlipNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary slip not found",
		http.StatusNotFound,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidPeriodRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrDuplicatePayrollNumber = apperror.New(
		apperror.CodeConflict,
		"payroll number already exists",
		http.StatusConflict,
	)
	ErrDuplicateSlip = apperror.New(
		apperror.CodeConflict,
		"a salary slip already exists for this payroll and employee",
		http.StatusConflict,
	)

	// state machine guards: each names the state the operation requires
	ErrProcessOnlyDraft = apperror.New(
		apperror.CodeInvalidState,
		"payroll can only be processed while status is DRAFT",
		http.StatusBadRequest,
	)
	ErrVerifyOnlyProcessed = apperror.New(
		apperror.CodeInvalidState,
		"payroll can only be verified while status is PROCESSED",
		http.StatusBadRequest,
	)
	ErrApproveOnlyProcessed = apperror.New(
		apperror.CodeInvalidState,
		"payroll can only be approved while status is PROCESSED or VERIFIED",
		http.StatusBadRequest,
	)
	ErrPostOnlyApproved = apperror.New(
		apperror.CodeInvalidState,
		"payroll can only be posted to the ledger while status is APPROVED",
		http.StatusBadRequest,
	)
	ErrPayOnlyPosted = apperror.New(
		apperror.CodeInvalidState,
		"payroll can only be marked as paid while status is POSTED",
		http.StatusBadRequest,
	)
	ErrCancelOnlyDraft = apperror.New(
		apperror.CodeInvalidState,
		"payroll can only be cancelled while status is DRAFT",
		http.StatusBadRequest,
	)
	ErrDeleteOnlyDraft = apperror.New(
		apperror.CodeInvalidState,
		"payroll can only be deleted while status is DRAFT",
		http.StatusBadRequest,
	)
	ErrPayAdviceNotReady = apperror.New(
		apperror.CodeInvalidState,
		"pay advice is available once the payroll is PROCESSED",
		http.StatusBadRequest,
	)
	ErrSendSlipsOnlyApproved = apperror.New(
		apperror.CodeInvalidState,
		"slips can only be sent after the payroll is APPROVED",
		http.StatusBadRequest,
	)
	ErrSlipNotGenerated = apperror.New(
		apperror.CodeInvalidState,
		"slip can only be put on hold or cancelled while status is GENERATED",
		http.StatusBadRequest,
	)

	// batch eligibility failures abort the whole run
	ErrNoEligibleEmployees = apperror.New(
		apperror.CodeInvalidInput,
		"no eligible employees match the payroll scope",
		http.StatusBadRequest,
	)
	ErrEmployeeMissingStructure = apperror.New(
		apperror.CodeInvalidInput,
		"employee has no salary structure assigned",
		http.StatusBadRequest,
	)
	ErrStructureNotEffective = apperror.New(
		apperror.CodeInvalidInput,
		"salary structure is not effective for the payroll period",
		http.StatusBadRequest,
	)

	ErrEmployeeDirectoryUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"employee directory is unavailable, retry the payroll run",
		http.StatusServiceUnavailable,
	).Retry()
	ErrProcessFailed = apperror.New(
		apperror.CodeServiceUnavailable,
		"payroll processing failed and was rolled back, retry the run",
		http.StatusServiceUnavailable,
	).Retry()
)
