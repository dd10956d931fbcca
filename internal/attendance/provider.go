package attendance

import (
	"context"
	"net/http"
	"time"

	"go-payroll/internal/shared/apperror"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrNoAttendanceData aborts the whole payroll batch: a missing or empty
// attendance feed means the upstream sync has not run for the period yet.
var ErrNoAttendanceData = apperror.New(
	apperror.CodeServiceUnavailable,
	"no attendance data for employee in the payroll period",
	http.StatusServiceUnavailable,
).Retry()

// Counts is the per-employee attendance summary for one pay period.
type Counts struct {
	WorkingDays   int
	PresentDays   int
	AbsentDays    int
	LeaveDays     int
	LOPDays       int
	OvertimeHours decimal.Decimal
}

// PaidDays are the days the employee is paid for.
func (c Counts) PaidDays() int {
	return c.PresentDays + c.LeaveDays
}

//go:generate mockgen -source=provider.go -destination=mock/provider_mock.go -package=mock

// Provider aggregates attendance rows into period counts for the slip
// generator.
type Provider interface {
	Counts(ctx context.Context, companyID, employeeID string, periodStart, periodEnd time.Time) (Counts, error)
}

type provider struct {
	db *gorm.DB
}

func NewProvider(db *gorm.DB) Provider {
	return &provider{db: db}
}

func (p *provider) Counts(
	ctx context.Context,
	companyID, employeeID string,
	periodStart, periodEnd time.Time,
) (Counts, error) {
	var row struct {
		WorkingDays   int
		PresentDays   int
		AbsentDays    int
		LeaveDays     int
		LopDays       int
		OvertimeHours decimal.Decimal
	}

	err := p.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE status NOT IN ('HOLIDAY', 'WEEKLY_OFF')) AS working_days,
			COUNT(*) FILTER (WHERE status = 'PRESENT') AS present_days,
			COUNT(*) FILTER (WHERE status = 'ABSENT') AS absent_days,
			COUNT(*) FILTER (WHERE status = 'LEAVE') AS leave_days,
			COUNT(*) FILTER (WHERE status = 'LOP') AS lop_days,
			COALESCE(SUM(overtime_hours), 0) AS overtime_hours
		FROM attendances
		WHERE company_id = ?
		  AND employee_id = ?
		  AND attendance_date BETWEEN ? AND ?
		  AND deleted_at IS NULL
	`, companyID, employeeID,
		periodStart.Format("2006-01-02"), periodEnd.Format("2006-01-02"),
	).Scan(&row).Error
	if err != nil {
		return Counts{}, err
	}

	if row.WorkingDays <= 0 {
		return Counts{}, ErrNoAttendanceData
	}

	return Counts{
		WorkingDays:   row.WorkingDays,
		PresentDays:   row.PresentDays,
		AbsentDays:    row.AbsentDays,
		LeaveDays:     row.LeaveDays,
		LOPDays:       row.LopDays,
		OvertimeHours: row.OvertimeHours,
	}, nil
}
