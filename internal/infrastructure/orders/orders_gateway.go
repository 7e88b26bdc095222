package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"grafica_xpto/internal/domain/entities"
	"grafica_xpto/internal/usecase/interfaces"
)

var ErrMissingOrderServiceBaseURL = errors.New("missing ORDER_SERVICE_BASE_URL")
var ErrOrderServiceGatewayNotConfigured = errors.New("order service gateway not configured")

// OrderServiceGateway creates orders on the storefront's order service.
//
// The service is a plain REST API (POST /v1/orders). The gateway keeps the
// raw provider response so callers can persist it for traceability. A mock
// mode (ORDER_SERVICE_MOCK) fabricates approved orders for local runs
// without the order service.

type OrderServiceGateway struct {
	httpClient *http.Client
	baseURL    string
	apiToken   string
	mockMode   bool
}

var _ interfaces.IOrderGateway = (*OrderServiceGateway)(nil)

func NewOrderServiceGateway(baseURL, apiToken string) (*OrderServiceGateway, error) {
	if isOrderServiceMockEnabled() {
		log.Printf("[orders][gateway] mock mode enabled")
		return &OrderServiceGateway{mockMode: true}, nil
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[orders][gateway] missing ORDER_SERVICE_BASE_URL")
		return nil, ErrMissingOrderServiceBaseURL
	}

	log.Printf("[orders][gateway] order service client initialized base_url=%s", baseURL)
	return &OrderServiceGateway{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		apiToken:   apiToken,
	}, nil
}

type orderItemPayload struct {
	LineItemID     string         `json:"line_item_id"`
	ProductName    string         `json:"product_name"`
	Quantity       int            `json:"quantity"`
	UnitPrice      float64        `json:"unit_price"`
	TotalPrice     float64        `json:"total_price"`
	Specifications map[string]any `json:"specifications,omitempty"`
}

type createOrderPayload struct {
	Name                   string             `json:"name"`
	Items                  []orderItemPayload `json:"items"`
	UrgencyLevel           string             `json:"urgency_level"`
	ExpectedProductionDays int                `json:"expected_production_days"`
	DesignApprovalRequired bool               `json:"design_approval_required"`
	SpecialInstructions    string             `json:"special_instructions,omitempty"`
	EstimatedValue         float64            `json:"estimated_value"`
	PaymentMethod          string             `json:"payment_method,omitempty"`
	ShippingAddressID      string             `json:"shipping_address_id,omitempty"`
	BillingAddressID       string             `json:"billing_address_id,omitempty"`
}

type createOrderResponse struct {
	ID          string `json:"id"`
	OrderNumber string `json:"order_number"`
	Status      string `json:"status"`
}

func (g *OrderServiceGateway) CreateOrder(ctx context.Context, group entities.Group, settings entities.ConversionSettings) (orderID string, orderNumber string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return g.mockCreateOrder(group)
	}

	if g == nil || g.httpClient == nil {
		log.Printf("[orders][gateway] gateway not configured")
		return "", "", nil, ErrOrderServiceGatewayNotConfigured
	}

	payload := createOrderPayload{
		Name:                   group.Name,
		UrgencyLevel:           string(group.UrgencyLevel),
		ExpectedProductionDays: group.ExpectedProductionDays,
		DesignApprovalRequired: group.DesignApprovalRequired,
		SpecialInstructions:    group.SpecialInstructions,
		EstimatedValue:         group.EstimatedValue,
		PaymentMethod:          settings.PaymentMethod,
		ShippingAddressID:      settings.ShippingAddressID,
		BillingAddressID:       settings.BillingAddressID,
	}
	for _, it := range group.Items {
		payload.Items = append(payload.Items, orderItemPayload{
			LineItemID:     it.ID,
			ProductName:    it.ProductName,
			Quantity:       it.Quantity,
			UnitPrice:      it.UnitPrice,
			TotalPrice:     it.TotalPrice,
			Specifications: it.Specifications,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", "", nil, err
	}
	log.Printf("[orders][gateway] create start group_id=%s items=%d payload_len=%d", group.ID, len(group.Items), len(body))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return "", "", nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiToken)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[orders][gateway] create request failed group_id=%s err=%v", group.ID, err)
		return "", "", nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[orders][gateway] create rejected group_id=%s status=%d body=%s", group.ID, resp.StatusCode, raw)
		return "", "", nil, fmt.Errorf("order service returned status %d: %s", resp.StatusCode, raw)
	}

	var parsed createOrderResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		log.Printf("[orders][gateway] response unmarshal failed group_id=%s err=%v", group.ID, err)
		return "", "", nil, err
	}
	if parsed.ID == "" {
		return "", "", nil, fmt.Errorf("order service response missing order id: %s", raw)
	}

	log.Printf("[orders][gateway] create success group_id=%s order_id=%s order_number=%s", group.ID, parsed.ID, parsed.OrderNumber)
	return parsed.ID, parsed.OrderNumber, raw, nil
}

func (g *OrderServiceGateway) mockCreateOrder(group entities.Group) (string, string, json.RawMessage, error) {
	log.Printf("[orders][gateway] mock create start group_id=%s items=%d", group.ID, len(group.Items))

	now := time.Now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	orderNumber := fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), id[len(id)-6:])

	resp := map[string]any{
		"id":           id,
		"order_number": orderNumber,
		"status":       "created",
		"group_id":     group.ID,
		"item_count":   len(group.Items),
		"date_created": now.Format(time.RFC3339Nano),
	}
	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[orders][gateway] mock response marshal failed err=%v", err)
		return "", "", nil, err
	}

	log.Printf("[orders][gateway] mock create success order_id=%s order_number=%s", id, orderNumber)
	return id, orderNumber, b, nil
}

func isOrderServiceMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("ORDER_SERVICE_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
