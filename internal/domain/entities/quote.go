package entities

import "time"

// QuoteStatus represents the lifecycle of a bulk quote (orçamento em lote).
//
// Domain notes:
//   - The storefront is the source of truth for quote state; this service
//     only reads quotes and requires them to be approved before conversion.

type QuoteStatus string

const (
	QuoteStatusPendente  QuoteStatus = "pendente"
	QuoteStatusAprovado  QuoteStatus = "aprovado"
	QuoteStatusRejeitado QuoteStatus = "rejeitado"
	QuoteStatusCancelado QuoteStatus = "cancelado"
)

// LineItem is one priced product entry within a Quote.
//
// Prices are quote-supplied and never recomputed here: TotalPrice is taken
// as-is (quantity × unit price at quoting time, including any negotiated
// discount the storefront applied).
//
// Specifications is an opaque key-value bag (size, material, print color...)
// passed through to the order service unmodified.
type LineItem struct {
	ID             string         `json:"id"`
	ProductName    string         `json:"product_name"`
	Quantity       int            `json:"quantity"`
	UnitPrice      float64        `json:"unit_price"`
	TotalPrice     float64        `json:"total_price"`
	Specifications map[string]any `json:"specifications,omitempty"`
}

// Quote is the approved bulk quote being converted into orders.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The quote is read-only for the life of a conversion session.
type Quote struct {
	ID           string      `json:"id"`
	QuoteNumber  string      `json:"quote_number"`
	CustomerID   string      `json:"customer_id"`
	CustomerName string      `json:"customer_name"`
	Items        []LineItem  `json:"items"`
	TotalAmount  float64     `json:"total_amount"`
	Notes        string      `json:"notes,omitempty"`
	Status       QuoteStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
