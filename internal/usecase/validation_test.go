package usecase

import (
	"strings"
	"testing"

	"grafica_xpto/internal/domain/entities"
)

func sessionWith(q entities.Quote, groups []entities.Group) entities.ConversionSession {
	return entities.ConversionSession{
		ID:       "session-1",
		QuoteID:  q.ID,
		Strategy: entities.StrategyCustom,
		Groups:   groups,
		Status:   entities.SessionStatusDraft,
	}
}

func TestValidateSession_ValidPartition(t *testing.T) {
	q := makeQuote(10, 20, 30)
	for _, strategy := range []entities.PartitionStrategy{entities.StrategySeparate, entities.StrategyCombined} {
		groups, _ := GenerateGroups(q, strategy)
		if verr := validateSession(q, sessionWith(q, groups)); verr != nil {
			t.Fatalf("strategy %s: expected valid, got %v", strategy, verr)
		}
	}
}

func TestValidateSession_EmptySet(t *testing.T) {
	q := makeQuote(10)
	verr := validateSession(q, sessionWith(q, nil))
	if verr == nil || len(verr.Violations) != 1 {
		t.Fatalf("expected single empty-set violation, got %v", verr)
	}
}

func TestValidateSession_EmptyGroupIsNamed(t *testing.T) {
	q := makeQuote(10, 20)
	groups, _ := GenerateGroups(q, entities.StrategySeparate)
	groups = addGroup(groups)
	emptyID := groups[2].ID

	verr := validateSession(q, sessionWith(q, groups))
	if verr == nil {
		t.Fatalf("expected validation error")
	}
	found := false
	for _, v := range verr.Violations {
		if v.GroupID == emptyID && strings.Contains(v.Reason, "no items") {
			found = true
		}
	}
	if !found {
		t.Fatalf("empty group %s not named in violations: %v", emptyID, verr.Violations)
	}
}

func TestValidateSession_DuplicationException(t *testing.T) {
	q := makeQuote(10, 20)
	groups, _ := GenerateGroups(q, entities.StrategyCombined)
	groups, err := duplicateGroup(groups, groups[0].ID)
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}

	s := sessionWith(q, groups)
	verr := validateSession(q, s)
	if verr == nil {
		t.Fatalf("expected duplication violations")
	}
	if len(verr.Violations) != 2 {
		t.Fatalf("expected one violation per duplicated item, got %v", verr.Violations)
	}
	for _, v := range verr.Violations {
		if !strings.Contains(v.Reason, "appears in 2 groups") {
			t.Fatalf("unexpected reason: %q", v.Reason)
		}
	}

	s.DuplicationAcknowledged = true
	if verr := validateSession(q, s); verr != nil {
		t.Fatalf("acknowledged duplication must pass, got %v", verr)
	}
}

func TestValidateSession_MissingItemAlwaysReported(t *testing.T) {
	q := makeQuote(10, 20)
	groups, _ := GenerateGroups(q, entities.StrategySeparate)
	// Drop the second group's item coverage without removing the group.
	groups[1].Items = nil
	groups[1].RecomputeValue()

	s := sessionWith(q, groups)
	s.DuplicationAcknowledged = true // acknowledgment never excuses gaps
	verr := validateSession(q, s)
	if verr == nil {
		t.Fatalf("expected validation error")
	}
	hasGap := false
	for _, v := range verr.Violations {
		if strings.Contains(v.Reason, "not assigned to any group") {
			hasGap = true
		}
	}
	if !hasGap {
		t.Fatalf("missing item not reported: %v", verr.Violations)
	}
}

func TestValidateSession_SettingsViolations(t *testing.T) {
	q := makeQuote(10, 20)
	groups, _ := GenerateGroups(q, entities.StrategySeparate)
	groups[0].ExpectedProductionDays = 0
	groups[1].UrgencyLevel = entities.UrgencyLevel("whenever")

	verr := validateSession(q, sessionWith(q, groups))
	if verr == nil {
		t.Fatalf("expected validation error")
	}
	if len(verr.Violations) != 2 {
		t.Fatalf("expected every violation enumerated, got %v", verr.Violations)
	}
	if verr.Violations[0].GroupID != groups[0].ID || verr.Violations[1].GroupID != groups[1].ID {
		t.Fatalf("violations must name the offending groups: %v", verr.Violations)
	}
}

func TestValidateSession_ForeignItem(t *testing.T) {
	q := makeQuote(10)
	groups, _ := GenerateGroups(q, entities.StrategySeparate)
	groups[0].Items = append(groups[0].Items, entities.LineItem{ID: "alien", ProductName: "Mugs", TotalPrice: 5})
	groups[0].RecomputeValue()

	verr := validateSession(q, sessionWith(q, groups))
	if verr == nil {
		t.Fatalf("expected validation error")
	}
	found := false
	for _, v := range verr.Violations {
		if strings.Contains(v.Reason, "does not belong to quote") {
			found = true
		}
	}
	if !found {
		t.Fatalf("foreign item not reported: %v", verr.Violations)
	}
}
