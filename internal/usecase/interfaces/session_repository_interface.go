package interfaces

import (
	"context"
	"grafica_xpto/internal/domain/entities"
)

// ISessionRepository abstracts DynamoDB persistence for ConversionSession.
//
// The conversion service must be able to:
//   - create a session when a conversion starts from an approved quote
//   - load a session by id for mutation and execution
//   - replace the whole session document after each mutation (group sets are
//     small; replace keeps the functional mutation model simple)

type ISessionRepository interface {
	Create(ctx context.Context, s entities.ConversionSession) (entities.ConversionSession, error)
	GetByID(ctx context.Context, id string) (entities.ConversionSession, error)
	Update(ctx context.Context, s entities.ConversionSession) (entities.ConversionSession, error)
}
