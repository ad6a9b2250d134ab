package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/pricing"
	"oficina_xpto/internal/domain/workflow"
)

type BudgetItemResponse struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
	PartID      string  `json:"part_id,omitempty"`
}

type EquipmentResponse struct {
	ID             string               `json:"id"`
	MachineID      string               `json:"machine_id"`
	DefectReported string               `json:"defect_reported"`
	DiagnosisNotes string               `json:"diagnosis_notes,omitempty"`
	BudgetItems    []BudgetItemResponse `json:"budget_items"`
	Subtotal       float64              `json:"subtotal"`
}

type PaymentResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description,omitempty"`
	Method      string    `json:"method"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
}

type HistoryEntryResponse struct {
	Date   time.Time `json:"date"`
	Status string    `json:"status"`
	Note   string    `json:"note,omitempty"`
}

// ServiceOrderResponse is the staff-facing view of the aggregate. Totals are
// derived on every render; rounding happens only here.
type ServiceOrderResponse struct {
	ID               string                 `json:"id"`
	ShortCode        string                 `json:"short_code"`
	ClientID         string                 `json:"client_id"`
	EntryDate        time.Time              `json:"entry_date"`
	DeadlineDate     *time.Time             `json:"deadline_date,omitempty"`
	Status           string                 `json:"status"`
	StageIndex       int                    `json:"stage_index"`
	Equipment        []EquipmentResponse    `json:"equipment_items"`
	Discount         float64                `json:"discount"`
	Subtotal         float64                `json:"subtotal"`
	Total            float64                `json:"total"`
	TotalPaid        float64                `json:"total_paid"`
	RemainingBalance float64                `json:"remaining_balance"`
	Payments         []PaymentResponse      `json:"payments"`
	History          []HistoryEntryResponse `json:"history"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	res := ServiceOrderResponse{
		ID:               o.ID,
		ShortCode:        o.ShortCode,
		ClientID:         o.ClientID,
		EntryDate:        o.EntryDate,
		DeadlineDate:     o.DeadlineDate,
		Status:           string(o.Status),
		StageIndex:       workflow.StageIndex(o.Status),
		Discount:         pricing.Round2(o.Discount),
		Subtotal:         pricing.Round2(pricing.OrderSubtotal(o)),
		Total:            pricing.Round2(pricing.OrderTotal(o)),
		TotalPaid:        pricing.Round2(pricing.TotalPaid(o)),
		RemainingBalance: pricing.Round2(pricing.RemainingBalance(o)),
		Equipment:        make([]EquipmentResponse, 0, len(o.Equipment)),
		Payments:         make([]PaymentResponse, 0, len(o.Payments)),
		History:          make([]HistoryEntryResponse, 0, len(o.History)),
	}

	for _, eq := range o.Equipment {
		eqRes := EquipmentResponse{
			ID:             eq.ID,
			MachineID:      eq.MachineID,
			DefectReported: eq.DefectReported,
			DiagnosisNotes: eq.DiagnosisNotes,
			BudgetItems:    make([]BudgetItemResponse, 0, len(eq.BudgetItems)),
			Subtotal:       pricing.Round2(pricing.EquipmentSubtotal(eq)),
		}
		for _, item := range eq.BudgetItems {
			eqRes.BudgetItems = append(eqRes.BudgetItems, BudgetItemResponse{
				ID:          item.ID,
				Type:        string(item.Type),
				Description: item.Description,
				Quantity:    item.Quantity,
				UnitPrice:   pricing.Round2(item.UnitPrice),
				LineTotal:   pricing.Round2(item.Quantity * item.UnitPrice),
				PartID:      item.PartID,
			})
		}
		res.Equipment = append(res.Equipment, eqRes)
	}

	for _, p := range o.Payments {
		res.Payments = append(res.Payments, PaymentResponse{
			ID:          p.ID,
			Description: p.Description,
			Method:      string(p.Method),
			Amount:      pricing.Round2(p.Amount),
			Date:        p.Date,
		})
	}

	for _, h := range o.History {
		res.History = append(res.History, HistoryEntryResponse{
			Date:   h.Date,
			Status: string(h.Status),
			Note:   h.Note,
		})
	}

	return res
}

func FromServiceOrders(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o))
	}
	return out
}
