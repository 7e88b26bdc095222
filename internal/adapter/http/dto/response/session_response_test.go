package response

import (
	"testing"
	"time"

	"grafica_xpto/internal/domain/entities"
)

func TestFromSession(t *testing.T) {
	now := time.Now().UTC()
	s := entities.ConversionSession{
		ID:       "sess-1",
		QuoteID:  "quote-1",
		Strategy: entities.StrategyCustom,
		Groups: []entities.Group{
			{
				ID:   "g1",
				Name: "Group 1",
				Items: []entities.LineItem{
					{ID: "item-1", ProductName: "Business cards", Quantity: 500, UnitPrice: 0.1, TotalPrice: 50},
				},
				UrgencyLevel:           entities.UrgencyRush,
				ExpectedProductionDays: 3,
				DesignApprovalRequired: true,
				EstimatedValue:         50,
			},
			{
				ID:                     "g2",
				Name:                   "Group 2",
				Items:                  []entities.LineItem{{ID: "item-2", Quantity: 1, UnitPrice: 25, TotalPrice: 25}},
				UrgencyLevel:           entities.UrgencyNormal,
				ExpectedProductionDays: 5,
				EstimatedValue:         25,
			},
		},
		DuplicationAcknowledged: true,
		Status:                  entities.SessionStatusDraft,
		CreatedAt:               now,
		UpdatedAt:               now,
	}

	res := FromSession(s)
	if res.ID != "sess-1" || res.SessionID != "sess-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.QuoteID != "quote-1" || res.Strategy != "custom" || res.Status != "draft" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.GroupCount != 2 || len(res.Groups) != 2 {
		t.Fatalf("unexpected group count: %+v", res)
	}
	if res.TotalEstimatedValue != 75 {
		t.Fatalf("expected total 75, got %v", res.TotalEstimatedValue)
	}
	if !res.DuplicationAcknowledged {
		t.Fatalf("expected acknowledged flag set")
	}

	g := res.Groups[0]
	if g.ItemCount != 1 || g.UrgencyLevel != "rush" || g.ExpectedProductionDays != 3 || !g.DesignApprovalRequired {
		t.Fatalf("unexpected group mapping: %+v", g)
	}
	if g.Items[0].ProductName != "Business cards" || g.Items[0].TotalPrice != 50 {
		t.Fatalf("unexpected item mapping: %+v", g.Items[0])
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}
