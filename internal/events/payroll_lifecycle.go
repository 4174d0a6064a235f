package events

import "time"

const PayrollLifecycleTopic = "hr.payroll.lifecycle.v1"

const (
	EventPayrollEntryCreated  = "payroll_entry_created"
	EventPayrollEntryApproved = "payroll_entry_approved"
	EventPayrollPeriodClosed  = "payroll_period_closed"
)

// PayrollLifecycleEvent is published for entry creation, entry approval and
// period closing. EntryID is empty for period events.
type PayrollLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	CompanyID  string    `json:"company_id"`
	EntryID    string    `json:"entry_id,omitempty"`
	PeriodID   string    `json:"period_id"`
	PeriodName string    `json:"period_name,omitempty"`
	ContractID string    `json:"contract_id,omitempty"`
	EmployeeID string    `json:"employee_id,omitempty"`
	NetPay     string    `json:"net_pay,omitempty"`
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
