package interfaces

import (
	"context"
	"grafica_xpto/internal/domain/entities"
)

// IQuoteRepository abstracts read-only access to the storefront's quotes
// table. Quotes are written by the storefront; the conversion service never
// mutates them.

type IQuoteRepository interface {
	GetByID(ctx context.Context, id string) (entities.Quote, error)
}
