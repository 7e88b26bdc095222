package response

import (
	"time"

	"grafica_xpto/internal/domain/entities"
)

type LineItemResponse struct {
	ID             string         `json:"id"`
	ProductName    string         `json:"product_name"`
	Quantity       int            `json:"quantity"`
	UnitPrice      float64        `json:"unit_price"`
	TotalPrice     float64        `json:"total_price"`
	Specifications map[string]any `json:"specifications,omitempty"`
}

type GroupResponse struct {
	ID                     string             `json:"id"`
	Name                   string             `json:"name"`
	Items                  []LineItemResponse `json:"items"`
	ItemCount              int                `json:"item_count"`
	UrgencyLevel           string             `json:"urgency_level"`
	ExpectedProductionDays int                `json:"expected_production_days"`
	DesignApprovalRequired bool               `json:"design_approval_required"`
	SpecialInstructions    string             `json:"special_instructions,omitempty"`
	EstimatedValue         float64            `json:"estimated_value"`
}

type SessionResponse struct {
	SessionID               string          `json:"session_id"`
	ID                      string          `json:"id"`
	QuoteID                 string          `json:"quote_id"`
	Strategy                string          `json:"strategy"`
	Groups                  []GroupResponse `json:"groups"`
	GroupCount              int             `json:"group_count"`
	TotalEstimatedValue     float64         `json:"total_estimated_value"`
	DuplicationAcknowledged bool            `json:"duplication_acknowledged"`
	Status                  string          `json:"status"`
	CreatedAt               time.Time       `json:"created_at"`
	UpdatedAt               time.Time       `json:"updated_at"`
}

func FromGroup(g entities.Group) GroupResponse {
	items := make([]LineItemResponse, 0, len(g.Items))
	for _, it := range g.Items {
		items = append(items, LineItemResponse{
			ID:             it.ID,
			ProductName:    it.ProductName,
			Quantity:       it.Quantity,
			UnitPrice:      it.UnitPrice,
			TotalPrice:     it.TotalPrice,
			Specifications: it.Specifications,
		})
	}
	return GroupResponse{
		ID:                     g.ID,
		Name:                   g.Name,
		Items:                  items,
		ItemCount:              len(items),
		UrgencyLevel:           string(g.UrgencyLevel),
		ExpectedProductionDays: g.ExpectedProductionDays,
		DesignApprovalRequired: g.DesignApprovalRequired,
		SpecialInstructions:    g.SpecialInstructions,
		EstimatedValue:         g.EstimatedValue,
	}
}

func FromSession(s entities.ConversionSession) SessionResponse {
	groups := make([]GroupResponse, 0, len(s.Groups))
	total := 0.0
	for _, g := range s.Groups {
		groups = append(groups, FromGroup(g))
		total += g.EstimatedValue
	}
	return SessionResponse{
		SessionID:               s.ID,
		ID:                      s.ID,
		QuoteID:                 s.QuoteID,
		Strategy:                string(s.Strategy),
		Groups:                  groups,
		GroupCount:              len(groups),
		TotalEstimatedValue:     total,
		DuplicationAcknowledged: s.DuplicationAcknowledged,
		Status:                  string(s.Status),
		CreatedAt:               s.CreatedAt,
		UpdatedAt:               s.UpdatedAt,
	}
}
