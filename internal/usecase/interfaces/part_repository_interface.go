package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
)

// IPartRepository abstracts persistence for Part stock records.

type IPartRepository interface {
	Create(ctx context.Context, p entities.Part) (entities.Part, error)
	GetByID(ctx context.Context, id string) (entities.Part, error)
	List(ctx context.Context) ([]entities.Part, error)
}
