package request

import (
	"strings"

	"grafica_xpto/internal/domain/entities"
)

// ConvertRequest carries the run-wide settings for one conversion run.
// All fields are optional defaults; per-group overrides win.
type ConvertRequest struct {
	UrgencyLevel           string `json:"urgency_level"`
	ExpectedProductionDays int    `json:"expected_production_days"`
	PaymentMethod          string `json:"payment_method"`
	ShippingAddressID      string `json:"shipping_address_id"`
	BillingAddressID       string `json:"billing_address_id"`
	DesignApprovalRequired *bool  `json:"design_approval_required"`
	SpecialInstructions    string `json:"special_instructions"`
}

func (r ConvertRequest) ToSettings() entities.ConversionSettings {
	return entities.ConversionSettings{
		UrgencyLevel:           entities.UrgencyLevel(strings.ToLower(strings.TrimSpace(r.UrgencyLevel))),
		ExpectedProductionDays: r.ExpectedProductionDays,
		PaymentMethod:          strings.TrimSpace(r.PaymentMethod),
		ShippingAddressID:      strings.TrimSpace(r.ShippingAddressID),
		BillingAddressID:       strings.TrimSpace(r.BillingAddressID),
		DesignApprovalRequired: r.DesignApprovalRequired,
		SpecialInstructions:    r.SpecialInstructions,
	}
}
