package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
)

// IMachineRepository abstracts persistence for Machine records.

type IMachineRepository interface {
	Create(ctx context.Context, m entities.Machine) (entities.Machine, error)
	GetByID(ctx context.Context, id string) (entities.Machine, error)
	List(ctx context.Context) ([]entities.Machine, error)
}
