package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/pricing"
	"oficina_xpto/internal/domain/workflow"
	"oficina_xpto/internal/usecase/interfaces"
)

// PublicLineItem is one budget line as shown to the client. Money is rounded
// here, at the presentation boundary.
type PublicLineItem struct {
	Type        entities.BudgetItemType
	Description string
	Quantity    float64
	UnitPrice   float64
	LineTotal   float64
}

// PublicEquipmentView is one machine on the public page. Diagnosis notes are
// staff-only and never cross into this type.
type PublicEquipmentView struct {
	Brand          string
	Model          string
	SerialNumber   string
	DefectReported string
	Items          []PublicLineItem
	Subtotal       float64
}

// PublicOrderView is the client-safe progress/billing summary behind the
// shareable /view/{id} link. While the order is still in ANALYSIS no budget
// exists yet, so BudgetHidden is set and every money field stays zero.
// Payment method/date detail is internal bookkeeping and is not exposed,
// only the paid/remaining aggregates.
type PublicOrderView struct {
	ShortCode        string
	ClientFirstName  string
	Status           entities.OSStatus
	StageIndex       int
	EntryDate        time.Time
	DeadlineDate     *time.Time
	BudgetHidden     bool
	Equipment        []PublicEquipmentView
	Subtotal         float64
	Discount         float64
	Total            float64
	TotalPaid        float64
	RemainingBalance float64
}

// IPublicViewUseCase builds the unauthenticated projection of an order.

type IPublicViewUseCase interface {
	GetByOrderID(ctx context.Context, id string) (PublicOrderView, error)
}

type PublicViewUseCase struct {
	orderRepo   interfaces.IServiceOrderRepository
	clientRepo  interfaces.IClientRepository
	machineRepo interfaces.IMachineRepository
}

var _ IPublicViewUseCase = (*PublicViewUseCase)(nil)

func NewPublicViewUseCase(
	orderRepo interfaces.IServiceOrderRepository,
	clientRepo interfaces.IClientRepository,
	machineRepo interfaces.IMachineRepository,
) *PublicViewUseCase {
	return &PublicViewUseCase{orderRepo: orderRepo, clientRepo: clientRepo, machineRepo: machineRepo}
}

func (u *PublicViewUseCase) GetByOrderID(ctx context.Context, id string) (PublicOrderView, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return PublicOrderView{}, ErrInvalidOrderID
	}

	o, err := u.orderRepo.GetByID(ctx, id)
	if err != nil {
		return PublicOrderView{}, err
	}
	if o.ID == "" {
		return PublicOrderView{}, ErrOrderNotFound
	}

	view := PublicOrderView{
		ShortCode:    o.ShortCode,
		Status:       o.Status,
		StageIndex:   workflow.StageIndex(o.Status),
		EntryDate:    o.EntryDate,
		DeadlineDate: o.DeadlineDate,
		BudgetHidden: o.Status == entities.StatusAnalysis,
	}

	// Dangling references should not happen given the integrity checks on
	// write, but the projection degrades instead of failing if a record was
	// removed out of band.
	client, err := u.clientRepo.GetByID(ctx, o.ClientID)
	if err != nil {
		return PublicOrderView{}, err
	}
	if client.ID == "" {
		log.Printf("[view][usecase] dangling client reference order_id=%s client_id=%s", o.ID, o.ClientID)
	}
	view.ClientFirstName = firstName(client.Name)

	for _, eq := range o.Equipment {
		machine, err := u.machineRepo.GetByID(ctx, eq.MachineID)
		if err != nil {
			return PublicOrderView{}, err
		}
		if machine.ID == "" {
			log.Printf("[view][usecase] dangling machine reference order_id=%s machine_id=%s", o.ID, eq.MachineID)
		}

		eqView := PublicEquipmentView{
			Brand:          machine.Brand,
			Model:          machine.Model,
			SerialNumber:   machine.SerialNumber,
			DefectReported: eq.DefectReported,
		}
		if !view.BudgetHidden {
			for _, item := range eq.BudgetItems {
				eqView.Items = append(eqView.Items, PublicLineItem{
					Type:        item.Type,
					Description: item.Description,
					Quantity:    item.Quantity,
					UnitPrice:   pricing.Round2(item.UnitPrice),
					LineTotal:   pricing.Round2(item.Quantity * item.UnitPrice),
				})
			}
			eqView.Subtotal = pricing.Round2(pricing.EquipmentSubtotal(eq))
		}
		view.Equipment = append(view.Equipment, eqView)
	}

	if !view.BudgetHidden {
		view.Subtotal = pricing.Round2(pricing.OrderSubtotal(o))
		view.Discount = pricing.Round2(o.Discount)
		view.Total = pricing.Round2(pricing.OrderTotal(o))
		view.TotalPaid = pricing.Round2(pricing.TotalPaid(o))
		view.RemainingBalance = pricing.Round2(pricing.RemainingBalance(o))
	}

	return view, nil
}

func firstName(full string) string {
	fields := strings.Fields(full)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
