package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/workflow"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound      = errors.New("service order not found")
	ErrInvalidOrderID     = errors.New("invalid service order id")
	ErrClientReference    = errors.New("service order references unknown client")
	ErrMachineReference   = errors.New("service order references unknown machine")
	ErrPartReference      = errors.New("budget item references unknown part")
	ErrDuplicateShortCode = errors.New("could not allocate a unique short code")
)

// shortCodeAttempts bounds the create retry loop. With a sequence-backed
// generator one attempt is enough; the retries only matter if the counter
// item was reset behind an existing collection.
const shortCodeAttempts = 3

const openingNote = "Recebido"

// IServiceOrderUseCase owns the ServiceOrder aggregate lifecycle: opening,
// partial updates, status transitions and payment recording.
//
// Updates are read-merge-write with no version field: two concurrent editors
// last-write-wins per call. Known limitation of this scope, not silently
// patched over.

type IServiceOrderUseCase interface {
	Open(ctx context.Context, draft entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	Update(ctx context.Context, id string, upd entities.ServiceOrderUpdate) (entities.ServiceOrder, error)
	ChangeStatus(ctx context.Context, id string, status entities.OSStatus, note string) (entities.ServiceOrder, error)
	RecordPayment(ctx context.Context, id string, p entities.Payment) (entities.ServiceOrder, error)
}

type ServiceOrderUseCase struct {
	repo        interfaces.IServiceOrderRepository
	clientRepo  interfaces.IClientRepository
	machineRepo interfaces.IMachineRepository
	partRepo    interfaces.IPartRepository
	now         func() time.Time
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(
	repo interfaces.IServiceOrderRepository,
	clientRepo interfaces.IClientRepository,
	machineRepo interfaces.IMachineRepository,
	partRepo interfaces.IPartRepository,
) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{
		repo:        repo,
		clientRepo:  clientRepo,
		machineRepo: machineRepo,
		partRepo:    partRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Open creates a new order in ANALYSIS with one seeded history entry and a
// sequence-allocated short code. The draft carries client, equipment,
// deadline and discount; id, short code, status and history are assigned
// here.
func (u *ServiceOrderUseCase) Open(ctx context.Context, draft entities.ServiceOrder) (entities.ServiceOrder, error) {
	draft.ClientID = strings.TrimSpace(draft.ClientID)
	draft.Payments = nil

	normalized, err := u.normalizeEquipment(ctx, draft.Equipment)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	draft.Equipment = normalized

	if err := draft.Validate(); err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := u.checkReferences(ctx, draft); err != nil {
		return entities.ServiceOrder{}, err
	}

	now := u.now()
	draft.ID = uuid.NewString()
	if draft.EntryDate.IsZero() {
		draft.EntryDate = now
	}
	draft = workflow.SeedHistory(draft, openingNote, now)

	for attempt := 0; attempt < shortCodeAttempts; attempt++ {
		code, err := u.repo.NextShortCode(ctx)
		if err != nil {
			return entities.ServiceOrder{}, err
		}

		taken, err := u.repo.GetByShortCode(ctx, code)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		if taken.ID != "" {
			log.Printf("[os][usecase] short code %s already taken, retrying attempt=%d", code, attempt+1)
			continue
		}

		draft.ShortCode = code
		created, err := u.repo.Create(ctx, draft)
		if errors.Is(err, interfaces.ErrDuplicateShortCode) {
			log.Printf("[os][usecase] short code %s collided on create, retrying attempt=%d", code, attempt+1)
			continue
		}
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		log.Printf("[os][usecase] opened order id=%s short_code=%s client_id=%s equipment=%d", created.ID, created.ShortCode, created.ClientID, len(created.Equipment))
		return created, nil
	}

	return entities.ServiceOrder{}, ErrDuplicateShortCode
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *ServiceOrderUseCase) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	return u.repo.List(ctx)
}

// Update merges the populated fields of upd into the stored aggregate and
// persists the result. Equipment replacement re-runs part copy-in and
// referential checks; the whole operation rejects wholesale on any violation.
func (u *ServiceOrderUseCase) Update(ctx context.Context, id string, upd entities.ServiceOrderUpdate) (entities.ServiceOrder, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	if upd.Equipment != nil {
		normalized, err := u.normalizeEquipment(ctx, *upd.Equipment)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		upd.Equipment = &normalized
	}

	merged := upd.Merge(current)
	if err := merged.Validate(); err != nil {
		return entities.ServiceOrder{}, err
	}
	if err := u.checkReferences(ctx, merged); err != nil {
		return entities.ServiceOrder{}, err
	}

	return u.persist(ctx, merged)
}

// ChangeStatus runs the workflow transition and persists the moved order.
// Workflow rules (unknown status, backward move without note) surface as-is.
func (u *ServiceOrderUseCase) ChangeStatus(ctx context.Context, id string, status entities.OSStatus, note string) (entities.ServiceOrder, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	moved, err := workflow.Transition(current, status, note, u.now())
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	updated, err := u.persist(ctx, moved)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	log.Printf("[os][usecase] status change id=%s short_code=%s from=%s to=%s", updated.ID, updated.ShortCode, current.Status, updated.Status)
	return updated, nil
}

// RecordPayment appends one payment fact to the order. Amounts are recorded
// as given; overpayment is allowed and shows up as a negative balance.
func (u *ServiceOrderUseCase) RecordPayment(ctx context.Context, id string, p entities.Payment) (entities.ServiceOrder, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	if p.Date.IsZero() {
		p.Date = u.now()
	}
	if err := p.Validate(); err != nil {
		return entities.ServiceOrder{}, err
	}
	p.ID = uuid.NewString()

	current.Payments = append(current.Payments, p)
	updated, err := u.persist(ctx, current)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	log.Printf("[os][usecase] payment recorded id=%s short_code=%s method=%s amount=%.2f", updated.ID, updated.ShortCode, p.Method, p.Amount)
	return updated, nil
}

func (u *ServiceOrderUseCase) persist(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	updated, err := u.repo.Update(ctx, o)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if updated.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return updated, nil
}

// normalizeEquipment assigns missing ids and applies the part copy-in rule:
// a budget line that references a part and arrives without description or
// price takes the part's name and sell price at this moment. The copy is
// final; later part edits never re-sync existing lines.
func (u *ServiceOrderUseCase) normalizeEquipment(ctx context.Context, equipment []entities.OSEquipment) ([]entities.OSEquipment, error) {
	out := make([]entities.OSEquipment, len(equipment))
	for i, eq := range equipment {
		if eq.ID == "" {
			eq.ID = uuid.NewString()
		}
		items := make([]entities.BudgetItem, len(eq.BudgetItems))
		for j, item := range eq.BudgetItems {
			if item.ID == "" {
				item.ID = uuid.NewString()
			}
			if item.PartID != "" && (item.Description == "" || item.UnitPrice == 0) {
				part, err := u.partRepo.GetByID(ctx, item.PartID)
				if err != nil {
					return nil, err
				}
				if part.ID == "" {
					return nil, ErrPartReference
				}
				if item.Description == "" {
					item.Description = part.Name
				}
				if item.UnitPrice == 0 {
					item.UnitPrice = part.SellPrice
				}
			}
			items[j] = item
		}
		eq.BudgetItems = items
		out[i] = eq
	}
	return out, nil
}

// checkReferences enforces referential integrity: the client and every
// equipment machine must exist before anything is written.
func (u *ServiceOrderUseCase) checkReferences(ctx context.Context, o entities.ServiceOrder) error {
	client, err := u.clientRepo.GetByID(ctx, o.ClientID)
	if err != nil {
		return err
	}
	if client.ID == "" {
		return ErrClientReference
	}

	for _, eq := range o.Equipment {
		machine, err := u.machineRepo.GetByID(ctx, eq.MachineID)
		if err != nil {
			return err
		}
		if machine.ID == "" {
			return ErrMachineReference
		}
	}
	return nil
}
