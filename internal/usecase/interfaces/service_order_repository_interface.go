package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
)

// IServiceOrderRepository abstracts persistence for the ServiceOrder
// aggregate (nested equipment, budget lines, payments and history travel as
// one record).
//
// Contract notes:
//   - Create must fail when the id or the short code already exists, so a
//     short-code race cannot silently overwrite another order.
//   - Update replaces the whole aggregate and must fail when the id does not
//     exist.
//   - List returns most-recent-first (new orders are what the counter looks
//     at).
//   - NextShortCode draws from an atomic sequence; two concurrent calls never
//     return the same code.

type IServiceOrderRepository interface {
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	GetByShortCode(ctx context.Context, shortCode string) (entities.ServiceOrder, error)
	Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	NextShortCode(ctx context.Context) (string, error)
}
