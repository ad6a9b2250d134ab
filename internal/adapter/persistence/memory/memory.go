// Package memory provides mutex-guarded in-memory implementations of the
// repository ports. It backs the test suite and local runs (STORE=memory);
// the DynamoDB repositories are the durable twin behind the same interfaces.
//
// Semantics mirror the DynamoDB implementations: a lookup miss returns a
// zero value with nil error, update on a missing id returns a zero value,
// create fails on a taken short code.
package memory

import (
	"context"
	"strconv"
	"sync"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

// shortCodeSeed keeps freshly issued codes in the 4-digit range the shop
// already prints on order tickets.
const shortCodeSeed = 4100

type ClientRepository struct {
	mu    sync.RWMutex
	items []entities.Client
	byID  map[string]entities.Client
}

var _ interfaces.IClientRepository = (*ClientRepository)(nil)

func NewClientRepository() *ClientRepository {
	return &ClientRepository{byID: map[string]entities.Client{}}
}

func (r *ClientRepository) Create(_ context.Context, c entities.Client) (entities.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, c)
	r.byID[c.ID] = c
	return c, nil
}

func (r *ClientRepository) GetByID(_ context.Context, id string) (entities.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

func (r *ClientRepository) List(_ context.Context) ([]entities.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Client, len(r.items))
	copy(out, r.items)
	return out, nil
}

type MachineRepository struct {
	mu    sync.RWMutex
	items []entities.Machine
	byID  map[string]entities.Machine
}

var _ interfaces.IMachineRepository = (*MachineRepository)(nil)

func NewMachineRepository() *MachineRepository {
	return &MachineRepository{byID: map[string]entities.Machine{}}
}

func (r *MachineRepository) Create(_ context.Context, m entities.Machine) (entities.Machine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, m)
	r.byID[m.ID] = m
	return m, nil
}

func (r *MachineRepository) GetByID(_ context.Context, id string) (entities.Machine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

func (r *MachineRepository) List(_ context.Context) ([]entities.Machine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Machine, len(r.items))
	copy(out, r.items)
	return out, nil
}

type PartRepository struct {
	mu    sync.RWMutex
	items []entities.Part
	byID  map[string]entities.Part
}

var _ interfaces.IPartRepository = (*PartRepository)(nil)

func NewPartRepository() *PartRepository {
	return &PartRepository{byID: map[string]entities.Part{}}
}

func (r *PartRepository) Create(_ context.Context, p entities.Part) (entities.Part, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, p)
	r.byID[p.ID] = p
	return p, nil
}

func (r *PartRepository) GetByID(_ context.Context, id string) (entities.Part, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

func (r *PartRepository) List(_ context.Context) ([]entities.Part, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Part, len(r.items))
	copy(out, r.items)
	return out, nil
}

// ServiceOrderRepository keeps orders most-recent-first (new orders are
// prepended) and allocates short codes from an atomic counter.
type ServiceOrderRepository struct {
	mu          sync.RWMutex
	items       []entities.ServiceOrder
	byShortCode map[string]string
	counter     int
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderRepository)(nil)

func NewServiceOrderRepository() *ServiceOrderRepository {
	return &ServiceOrderRepository{byShortCode: map[string]string{}, counter: shortCodeSeed}
}

func (r *ServiceOrderRepository) Create(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byShortCode[o.ShortCode]; taken {
		return entities.ServiceOrder{}, interfaces.ErrDuplicateShortCode
	}
	r.items = append([]entities.ServiceOrder{cloneOrder(o)}, r.items...)
	r.byShortCode[o.ShortCode] = o.ID
	return o, nil
}

func (r *ServiceOrderRepository) GetByID(_ context.Context, id string) (entities.ServiceOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.items {
		if o.ID == id {
			return cloneOrder(o), nil
		}
	}
	return entities.ServiceOrder{}, nil
}

func (r *ServiceOrderRepository) GetByShortCode(_ context.Context, shortCode string) (entities.ServiceOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byShortCode[shortCode]
	if !ok {
		return entities.ServiceOrder{}, nil
	}
	for _, o := range r.items {
		if o.ID == id {
			return cloneOrder(o), nil
		}
	}
	return entities.ServiceOrder{}, nil
}

func (r *ServiceOrderRepository) Update(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.items {
		if existing.ID == o.ID {
			r.items[i] = cloneOrder(o)
			return o, nil
		}
	}
	return entities.ServiceOrder{}, nil
}

func (r *ServiceOrderRepository) List(_ context.Context) ([]entities.ServiceOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.ServiceOrder, len(r.items))
	for i, o := range r.items {
		out[i] = cloneOrder(o)
	}
	return out, nil
}

func (r *ServiceOrderRepository) NextShortCode(_ context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counter++
	return strconv.Itoa(r.counter), nil
}

// cloneOrder deep-copies the aggregate so callers cannot mutate stored state
// through shared slice backing arrays.
func cloneOrder(o entities.ServiceOrder) entities.ServiceOrder {
	out := o
	if o.DeadlineDate != nil {
		d := *o.DeadlineDate
		out.DeadlineDate = &d
	}
	out.Equipment = make([]entities.OSEquipment, len(o.Equipment))
	for i, eq := range o.Equipment {
		eqCopy := eq
		eqCopy.BudgetItems = append([]entities.BudgetItem(nil), eq.BudgetItems...)
		out.Equipment[i] = eqCopy
	}
	out.Payments = append([]entities.Payment(nil), o.Payments...)
	out.History = append([]entities.HistoryEntry(nil), o.History...)
	return out
}
