package events

import "time"

const PayrollLifecycleTopic = "payroll.run.lifecycle.v1"

const (
	PayrollProcessedEventType = "payroll_processed"
	PayrollApprovedEventType  = "payroll_approved"
	PayrollPostedEventType    = "payroll_posted"
	PayrollPaidEventType      = "payroll_paid"
)

// PayrollLifecycleEvent announces a payroll run state transition to the
// surrounding systems (ledger, notifications, reporting).
type PayrollLifecycleEvent struct {
	EventType     string    `json:"event_type"`
	PayrollID     string    `json:"payroll_id"`
	CompanyID     string    `json:"company_id"`
	PayrollNumber string    `json:"payroll_number"`
	Month         int       `json:"month"`
	Year          int       `json:"year"`
	TotalNet      string    `json:"total_net"`
	ActorID       string    `json:"actor_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}
