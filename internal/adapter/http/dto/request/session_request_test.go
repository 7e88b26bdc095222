package request

import (
	"testing"

	"grafica_xpto/internal/domain/entities"
)

func TestCreateSessionRequest_Resolvers(t *testing.T) {
	r := CreateSessionRequest{QuoteID: " quote-1 ", Strategy: " Separate "}
	if got := r.ResolveQuoteID(); got != "quote-1" {
		t.Fatalf("expected quote-1, got %q", got)
	}
	if got := r.ResolveStrategy(); got != entities.StrategySeparate {
		t.Fatalf("expected separate, got %q", got)
	}

	r2 := CreateSessionRequest{QuoteID: "   "}
	if got := r2.ResolveQuoteID(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestSwitchStrategyRequest_ResolveStrategy(t *testing.T) {
	r := SwitchStrategyRequest{Strategy: "COMBINED", Confirm: true}
	if got := r.ResolveStrategy(); got != entities.StrategyCombined {
		t.Fatalf("expected combined, got %q", got)
	}
}

func TestMergeGroupsRequest_ResolveGroupIDs(t *testing.T) {
	r := MergeGroupsRequest{GroupIDs: []string{" g1 ", "", "g2", "   "}}
	got := r.ResolveGroupIDs()
	if len(got) != 2 || got[0] != "g1" || got[1] != "g2" {
		t.Fatalf("unexpected ids: %v", got)
	}
}

func TestUpdateGroupRequest_ToPatch(t *testing.T) {
	name := " Posters "
	urgency := " RUSH "
	days := 3
	r := UpdateGroupRequest{Name: &name, UrgencyLevel: &urgency, ExpectedProductionDays: &days}

	patch := r.ToPatch()
	if patch.Name == nil || *patch.Name != " Posters " {
		t.Fatalf("unexpected name: %+v", patch.Name)
	}
	if patch.UrgencyLevel == nil || *patch.UrgencyLevel != entities.UrgencyRush {
		t.Fatalf("unexpected urgency: %+v", patch.UrgencyLevel)
	}
	if patch.ExpectedProductionDays == nil || *patch.ExpectedProductionDays != 3 {
		t.Fatalf("unexpected days: %+v", patch.ExpectedProductionDays)
	}
	if patch.DesignApprovalRequired != nil || patch.SpecialInstructions != nil {
		t.Fatalf("expected untouched fields to stay nil: %+v", patch)
	}
}

func TestConvertRequest_ToSettings(t *testing.T) {
	approval := true
	r := ConvertRequest{
		UrgencyLevel:           " Expedited ",
		ExpectedProductionDays: 4,
		PaymentMethod:          " pix ",
		ShippingAddressID:      "addr-1",
		DesignApprovalRequired: &approval,
		SpecialInstructions:    "handle with care",
	}

	s := r.ToSettings()
	if s.UrgencyLevel != entities.UrgencyExpedited {
		t.Fatalf("unexpected urgency: %q", s.UrgencyLevel)
	}
	if s.ExpectedProductionDays != 4 || s.PaymentMethod != "pix" || s.ShippingAddressID != "addr-1" {
		t.Fatalf("unexpected settings: %+v", s)
	}
	if s.DesignApprovalRequired == nil || !*s.DesignApprovalRequired {
		t.Fatalf("unexpected approval: %+v", s.DesignApprovalRequired)
	}
	if s.SpecialInstructions != "handle with care" {
		t.Fatalf("unexpected instructions: %q", s.SpecialInstructions)
	}

	empty := ConvertRequest{}.ToSettings()
	if empty.UrgencyLevel != "" || empty.DesignApprovalRequired != nil {
		t.Fatalf("expected zero settings, got %+v", empty)
	}
}
