package entities

import "time"

// ConversionSettings are the run-wide defaults applied to any group that has
// not overridden them. Zero values mean "no override" and fall back to the
// group's own fields.
type ConversionSettings struct {
	UrgencyLevel           UrgencyLevel `json:"urgency_level,omitempty"`
	ExpectedProductionDays int          `json:"expected_production_days,omitempty"`
	PaymentMethod          string       `json:"payment_method,omitempty"`
	ShippingAddressID      string       `json:"shipping_address_id,omitempty"`
	BillingAddressID       string       `json:"billing_address_id,omitempty"`
	DesignApprovalRequired *bool        `json:"design_approval_required,omitempty"`
	SpecialInstructions    string       `json:"special_instructions,omitempty"`
}

// ResultStatus is the per-group outcome of one order-creation attempt.

type ResultStatus string

const (
	ResultStatusSuccess ResultStatus = "success"
	ResultStatusFailed  ResultStatus = "failed"
)

// ConversionResult records the outcome of one group's order creation.
// Immutable once appended to a run.
type ConversionResult struct {
	GroupID     string       `json:"group_id"`
	GroupName   string       `json:"group_name"`
	Status      ResultStatus `json:"status"`
	OrderID     string       `json:"order_id,omitempty"`
	OrderNumber string       `json:"order_number,omitempty"`
	Error       string       `json:"error,omitempty"`
}

// RunStatus is the lifecycle of a conversion run.

type RunStatus string

const (
	RunStatusNotStarted RunStatus = "not_started"
	RunStatusRunning    RunStatus = "running"
	RunStatusCompleted  RunStatus = "completed"
)

// ConversionRun is the execution aggregate for one attempt over a validated
// group set.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (session_id-index): session_id
//
// Progress is attempted/total × 100, monotonically non-decreasing, persisted
// after every group so callers can poll it mid-run. Status reaches completed
// only after every group was attempted exactly once; a run is never re-entered.
type ConversionRun struct {
	ID         string             `json:"id"`
	SessionID  string             `json:"session_id"`
	Results    []ConversionResult `json:"results"`
	Progress   int                `json:"progress"`
	Status     RunStatus          `json:"status"`
	StartedAt  time.Time          `json:"started_at"`
	FinishedAt time.Time          `json:"finished_at,omitempty"`
}

// SucceededCount returns how many groups converted successfully so far.
func (r ConversionRun) SucceededCount() int {
	n := 0
	for _, res := range r.Results {
		if res.Status == ResultStatusSuccess {
			n++
		}
	}
	return n
}

// FailedCount returns how many groups failed so far.
func (r ConversionRun) FailedCount() int {
	return len(r.Results) - r.SucceededCount()
}
