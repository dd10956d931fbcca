package attendance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusPresent   = "PRESENT"
	StatusAbsent    = "ABSENT"
	StatusLeave     = "LEAVE"
	StatusLOP       = "LOP"
	StatusHoliday   = "HOLIDAY"
	StatusWeeklyOff = "WEEKLY_OFF"
)

// Attendance is one employee-day, synced from the time & attendance system.
// Holiday and weekly-off rows exist so working-day math needs no calendar.
type Attendance struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	EmployeeID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_attendance_employee_date,unique"`
	AttendanceDate time.Time       `gorm:"type:date;not null;index:idx_attendance_employee_date,unique"`
	Status         string          `gorm:"type:varchar(20);not null;default:PRESENT"`
	OvertimeHours  decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	Source         string          `gorm:"type:varchar(30);not null;default:SYNC"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (Attendance) TableName() string {
	return "attendances"
}
