package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
)

// IClientRepository abstracts persistence for Client records.
//
// List preserves insertion order. A GetByID miss returns a zero-value Client
// and nil error; the use case decides whether that is a not-found condition.

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
}
