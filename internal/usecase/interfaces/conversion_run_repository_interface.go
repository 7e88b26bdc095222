package interfaces

import (
	"context"
	"grafica_xpto/internal/domain/entities"
)

// IConversionRunRepository abstracts DynamoDB persistence for ConversionRun.
//
// Update is called after every attempted group so the persisted snapshot is
// what GET /runs/:id serves while a conversion is in flight.

type IConversionRunRepository interface {
	Create(ctx context.Context, r entities.ConversionRun) (entities.ConversionRun, error)
	GetByID(ctx context.Context, id string) (entities.ConversionRun, error)
	Update(ctx context.Context, r entities.ConversionRun) (entities.ConversionRun, error)
}
