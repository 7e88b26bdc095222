package entities

import "time"

// UrgencyLevel is the production urgency of one order group.
//
// Levels are ordered: normal < expedited < rush < emergency.

type UrgencyLevel string

const (
	UrgencyNormal    UrgencyLevel = "normal"
	UrgencyExpedited UrgencyLevel = "expedited"
	UrgencyRush      UrgencyLevel = "rush"
	UrgencyEmergency UrgencyLevel = "emergency"
)

// Rank returns the ordinal position of the level, -1 for unknown values.
func (u UrgencyLevel) Rank() int {
	switch u {
	case UrgencyNormal:
		return 0
	case UrgencyExpedited:
		return 1
	case UrgencyRush:
		return 2
	case UrgencyEmergency:
		return 3
	}
	return -1
}

func (u UrgencyLevel) Valid() bool {
	return u.Rank() >= 0
}

// PartitionStrategy selects how a quote is initially split into groups.
//
//   - separate: one group per line item
//   - combined: one group holding every line item
//   - custom:   starts like separate; the only strategy under which group
//     mutations (merge/split/duplicate/...) are permitted

type PartitionStrategy string

const (
	StrategySeparate PartitionStrategy = "separate"
	StrategyCombined PartitionStrategy = "combined"
	StrategyCustom   PartitionStrategy = "custom"
)

func (s PartitionStrategy) Valid() bool {
	switch s {
	case StrategySeparate, StrategyCombined, StrategyCustom:
		return true
	}
	return false
}

// Group is one mutable bucket of line items destined to become one order.
//
// EstimatedValue is derived (sum of TotalPrice over Items) and recomputed on
// every structural change; it is never set by callers directly.
type Group struct {
	ID                     string       `json:"id"`
	Name                   string       `json:"name"`
	Items                  []LineItem   `json:"items"`
	UrgencyLevel           UrgencyLevel `json:"urgency_level"`
	ExpectedProductionDays int          `json:"expected_production_days"`
	DesignApprovalRequired bool         `json:"design_approval_required"`
	SpecialInstructions    string       `json:"special_instructions,omitempty"`
	EstimatedValue         float64      `json:"estimated_value"`
}

// RecomputeValue refreshes the derived EstimatedValue from the current items.
func (g *Group) RecomputeValue() {
	total := 0.0
	for _, it := range g.Items {
		total += it.TotalPrice
	}
	g.EstimatedValue = total
}

// HasItem reports whether the group already references the line item id.
func (g Group) HasItem(itemID string) bool {
	for _, it := range g.Items {
		if it.ID == itemID {
			return true
		}
	}
	return false
}

// SessionStatus is the lifecycle of a conversion session.

type SessionStatus string

const (
	SessionStatusDraft      SessionStatus = "draft"
	SessionStatusConverting SessionStatus = "converting"
	SessionStatusConverted  SessionStatus = "converted"
)

// ConversionSession owns the group set for one quote-to-orders conversion.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
//
// Invariant: every line item of the quote belongs to exactly one group
// (the partition invariant). Duplicate groups deliberately break it; the
// session records that as an auditable exception which the caller must
// acknowledge before validation passes.
type ConversionSession struct {
	ID                      string            `json:"id"`
	QuoteID                 string            `json:"quote_id"`
	Strategy                PartitionStrategy `json:"strategy"`
	Groups                  []Group           `json:"groups"`
	DuplicationAcknowledged bool              `json:"duplication_acknowledged"`
	Status                  SessionStatus     `json:"status"`
	CreatedAt               time.Time         `json:"created_at"`
	UpdatedAt               time.Time         `json:"updated_at"`
}

// GroupByID returns the index of the group with the given id, -1 if absent.
func (s ConversionSession) GroupByID(groupID string) int {
	for i, g := range s.Groups {
		if g.ID == groupID {
			return i
		}
	}
	return -1
}
