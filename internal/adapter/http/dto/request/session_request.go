package request

import (
	"strings"

	"grafica_xpto/internal/domain/entities"
	"grafica_xpto/internal/usecase"
)

// CreateSessionRequest starts a conversion session over an approved quote.
type CreateSessionRequest struct {
	QuoteID  string `json:"quote_id" binding:"required"`
	Strategy string `json:"strategy" binding:"required"`
}

func (r CreateSessionRequest) ResolveQuoteID() string {
	return strings.TrimSpace(r.QuoteID)
}

func (r CreateSessionRequest) ResolveStrategy() entities.PartitionStrategy {
	return entities.PartitionStrategy(strings.ToLower(strings.TrimSpace(r.Strategy)))
}

// SwitchStrategyRequest regenerates the group set under another strategy.
// Confirm must be true: the switch discards all manual grouping work.
type SwitchStrategyRequest struct {
	Strategy string `json:"strategy" binding:"required"`
	Confirm  bool   `json:"confirm"`
}

func (r SwitchStrategyRequest) ResolveStrategy() entities.PartitionStrategy {
	return entities.PartitionStrategy(strings.ToLower(strings.TrimSpace(r.Strategy)))
}

// MergeGroupsRequest selects the groups to merge into one.
type MergeGroupsRequest struct {
	GroupIDs []string `json:"group_ids" binding:"required"`
}

func (r MergeGroupsRequest) ResolveGroupIDs() []string {
	out := make([]string, 0, len(r.GroupIDs))
	for _, id := range r.GroupIDs {
		if v := strings.TrimSpace(id); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// UpdateGroupRequest carries a partial group update. Absent fields stay
// untouched; estimated value and items are derived/structural and cannot be
// set through this payload at all.
type UpdateGroupRequest struct {
	Name                   *string `json:"name"`
	UrgencyLevel           *string `json:"urgency_level"`
	ExpectedProductionDays *int    `json:"expected_production_days"`
	DesignApprovalRequired *bool   `json:"design_approval_required"`
	SpecialInstructions    *string `json:"special_instructions"`
}

func (r UpdateGroupRequest) ToPatch() usecase.GroupPatch {
	patch := usecase.GroupPatch{
		Name:                   r.Name,
		ExpectedProductionDays: r.ExpectedProductionDays,
		DesignApprovalRequired: r.DesignApprovalRequired,
		SpecialInstructions:    r.SpecialInstructions,
	}
	if r.UrgencyLevel != nil {
		level := entities.UrgencyLevel(strings.ToLower(strings.TrimSpace(*r.UrgencyLevel)))
		patch.UrgencyLevel = &level
	}
	return patch
}
