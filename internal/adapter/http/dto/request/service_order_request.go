package request

import (
	"strings"
	"time"

	"oficina_xpto/internal/domain/entities"
)

type BudgetItemRequest struct {
	Type        string  `json:"type" binding:"required"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price"`
	PartID      string  `json:"part_id"`
}

// EquipmentRequest is one machine entry on an order. Description and unit
// price may be omitted on PART lines that carry a part_id: the registry values
// are copied in when the order is processed.
type EquipmentRequest struct {
	MachineID      string              `json:"machine_id" binding:"required"`
	DefectReported string              `json:"defect_reported"`
	DiagnosisNotes string              `json:"diagnosis_notes"`
	BudgetItems    []BudgetItemRequest `json:"budget_items"`
}

// ServiceOrderRequest opens a new order. Status, short code and history are
// assigned server-side and are not accepted here.
type ServiceOrderRequest struct {
	ClientID     string             `json:"client_id" binding:"required"`
	EntryDate    *time.Time         `json:"entry_date"`
	DeadlineDate *time.Time         `json:"deadline_date"`
	Discount     float64            `json:"discount"`
	Equipment    []EquipmentRequest `json:"equipment_items" binding:"required"`
}

func (r ServiceOrderRequest) ToEntity() entities.ServiceOrder {
	o := entities.ServiceOrder{
		ClientID:     r.ClientID,
		DeadlineDate: r.DeadlineDate,
		Discount:     r.Discount,
		Equipment:    toEquipmentEntities(r.Equipment),
	}
	if r.EntryDate != nil {
		o.EntryDate = *r.EntryDate
	}
	return o
}

// ServiceOrderUpdateRequest is the partial-update payload. Absent fields are
// left untouched; equipment_items, when present, replaces the stored list
// wholesale.
type ServiceOrderUpdateRequest struct {
	DeadlineDate *time.Time          `json:"deadline_date"`
	Discount     *float64            `json:"discount"`
	Equipment    *[]EquipmentRequest `json:"equipment_items"`
}

func (r ServiceOrderUpdateRequest) ToUpdate() entities.ServiceOrderUpdate {
	upd := entities.ServiceOrderUpdate{
		DeadlineDate: r.DeadlineDate,
		Discount:     r.Discount,
	}
	if r.Equipment != nil {
		eq := toEquipmentEntities(*r.Equipment)
		upd.Equipment = &eq
	}
	return upd
}

// StatusChangeRequest moves an order through the workflow. Note is required by
// the workflow when the move goes backward.
type StatusChangeRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

func (r StatusChangeRequest) ResolveStatus() entities.OSStatus {
	return entities.OSStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
}

type PaymentRequest struct {
	Description string     `json:"description"`
	Method      string     `json:"method" binding:"required"`
	Amount      float64    `json:"amount" binding:"required"`
	Date        *time.Time `json:"date"`
}

func (r PaymentRequest) ToEntity() entities.Payment {
	p := entities.Payment{
		Description: r.Description,
		Method:      entities.PaymentMethod(strings.ToUpper(strings.TrimSpace(r.Method))),
		Amount:      r.Amount,
	}
	if r.Date != nil {
		p.Date = *r.Date
	}
	return p
}

func toEquipmentEntities(in []EquipmentRequest) []entities.OSEquipment {
	out := make([]entities.OSEquipment, 0, len(in))
	for _, eq := range in {
		entry := entities.OSEquipment{
			MachineID:      eq.MachineID,
			DefectReported: eq.DefectReported,
			DiagnosisNotes: eq.DiagnosisNotes,
		}
		for _, item := range eq.BudgetItems {
			entry.BudgetItems = append(entry.BudgetItems, entities.BudgetItem{
				Type:        entities.BudgetItemType(strings.ToUpper(strings.TrimSpace(item.Type))),
				Description: item.Description,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				PartID:      strings.TrimSpace(item.PartID),
			})
		}
		out = append(out, entry)
	}
	return out
}
