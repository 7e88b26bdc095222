package interfaces

import (
	"context"
	"encoding/json"
	"grafica_xpto/internal/domain/entities"
)

// IOrderGateway abstracts the storefront's order service.
//
// The gateway is treated as a black box: it may be slow, it may fail
// transiently, and it is assumed (not verified) idempotent per call. The
// conversion engine never deduplicates retried calls itself. The raw provider
// response is returned for traceability/audit.
type IOrderGateway interface {
	CreateOrder(ctx context.Context, group entities.Group, settings entities.ConversionSettings) (orderID string, orderNumber string, providerResponse json.RawMessage, err error)
}
