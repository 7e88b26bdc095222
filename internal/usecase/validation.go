package usecase

import (
	"fmt"
	"strings"

	"grafica_xpto/internal/domain/entities"
)

// Violation is one invariant breach found during pre-conversion validation.
// GroupID is empty for set-level problems (empty set, missing quote items).
type Violation struct {
	GroupID string `json:"group_id,omitempty"`
	Reason  string `json:"reason"`
}

// ValidationError enumerates every violation in the group set, never just the
// first one, so the caller can fix all of them in one pass.
type ValidationError struct {
	Violations []Violation `json:"violations"`
}

func (e *ValidationError) Error() string {
	reasons := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		if v.GroupID != "" {
			reasons = append(reasons, fmt.Sprintf("group %s: %s", v.GroupID, v.Reason))
		} else {
			reasons = append(reasons, v.Reason)
		}
	}
	return "group set validation failed: " + strings.Join(reasons, "; ")
}

// validateSession checks the group set against the quote before a conversion
// run may start:
//
//	(a) the set is non-empty
//	(b) every group holds at least one item
//	(c) the partition invariant: every quote line item appears in exactly one
//	    group — duplicates are tolerated only when the session's duplication
//	    exception was acknowledged; missing items are never tolerated
//	(d) per-group settings are sane (days >= 1, known urgency level)
//
// Returns nil when the set is valid.
func validateSession(q entities.Quote, s entities.ConversionSession) *ValidationError {
	var violations []Violation

	if len(s.Groups) == 0 {
		violations = append(violations, Violation{Reason: "group set is empty"})
		return &ValidationError{Violations: violations}
	}

	seen := make(map[string][]string, len(q.Items)) // line item id -> group ids holding it
	for _, g := range s.Groups {
		if len(g.Items) == 0 {
			violations = append(violations, Violation{GroupID: g.ID, Reason: "group has no items; remove it or assign items"})
		}
		if g.ExpectedProductionDays < 1 {
			violations = append(violations, Violation{GroupID: g.ID, Reason: "expected production days must be >= 1"})
		}
		if !g.UrgencyLevel.Valid() {
			violations = append(violations, Violation{GroupID: g.ID, Reason: fmt.Sprintf("unknown urgency level %q", g.UrgencyLevel)})
		}
		for _, it := range g.Items {
			seen[it.ID] = append(seen[it.ID], g.ID)
		}
	}

	for _, it := range q.Items {
		holders := seen[it.ID]
		switch {
		case len(holders) == 0:
			violations = append(violations, Violation{Reason: fmt.Sprintf("quote item %s (%s) is not assigned to any group", it.ID, it.ProductName)})
		case len(holders) > 1 && !s.DuplicationAcknowledged:
			violations = append(violations, Violation{Reason: fmt.Sprintf("quote item %s (%s) appears in %d groups (%s); acknowledge the duplication or re-partition", it.ID, it.ProductName, len(holders), strings.Join(holders, ", "))})
		}
	}

	// Items that belong to no quote are a session corruption, not a caller
	// mistake, but report them the same way.
	known := make(map[string]bool, len(q.Items))
	for _, it := range q.Items {
		known[it.ID] = true
	}
	for _, g := range s.Groups {
		for _, it := range g.Items {
			if !known[it.ID] {
				violations = append(violations, Violation{GroupID: g.ID, Reason: fmt.Sprintf("item %s does not belong to quote %s", it.ID, q.ID)})
			}
		}
	}

	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}
