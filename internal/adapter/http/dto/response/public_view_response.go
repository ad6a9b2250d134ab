package response

import (
	"time"

	"oficina_xpto/internal/usecase"
)

type PublicLineItemResponse struct {
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

type PublicEquipmentResponse struct {
	Brand          string                   `json:"brand"`
	Model          string                   `json:"model"`
	SerialNumber   string                   `json:"serial_number"`
	DefectReported string                   `json:"defect_reported"`
	Items          []PublicLineItemResponse `json:"items,omitempty"`
	Subtotal       float64                  `json:"subtotal"`
}

// PublicOrderResponse is rendered on the unauthenticated tracking page. It
// carries no internal ids and no diagnosis notes.
type PublicOrderResponse struct {
	ShortCode        string                    `json:"short_code"`
	ClientFirstName  string                    `json:"client_first_name"`
	Status           string                    `json:"status"`
	StageIndex       int                       `json:"stage_index"`
	EntryDate        time.Time                 `json:"entry_date"`
	DeadlineDate     *time.Time                `json:"deadline_date,omitempty"`
	BudgetHidden     bool                      `json:"budget_hidden"`
	Equipment        []PublicEquipmentResponse `json:"equipment_items"`
	Subtotal         float64                   `json:"subtotal"`
	Discount         float64                   `json:"discount"`
	Total            float64                   `json:"total"`
	TotalPaid        float64                   `json:"total_paid"`
	RemainingBalance float64                   `json:"remaining_balance"`
}

func FromPublicOrderView(v usecase.PublicOrderView) PublicOrderResponse {
	res := PublicOrderResponse{
		ShortCode:        v.ShortCode,
		ClientFirstName:  v.ClientFirstName,
		Status:           string(v.Status),
		StageIndex:       v.StageIndex,
		EntryDate:        v.EntryDate,
		DeadlineDate:     v.DeadlineDate,
		BudgetHidden:     v.BudgetHidden,
		Equipment:        make([]PublicEquipmentResponse, 0, len(v.Equipment)),
		Subtotal:         v.Subtotal,
		Discount:         v.Discount,
		Total:            v.Total,
		TotalPaid:        v.TotalPaid,
		RemainingBalance: v.RemainingBalance,
	}
	for _, eq := range v.Equipment {
		eqRes := PublicEquipmentResponse{
			Brand:          eq.Brand,
			Model:          eq.Model,
			SerialNumber:   eq.SerialNumber,
			DefectReported: eq.DefectReported,
			Subtotal:       eq.Subtotal,
		}
		for _, item := range eq.Items {
			eqRes.Items = append(eqRes.Items, PublicLineItemResponse{
				Type:        string(item.Type),
				Description: item.Description,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				LineTotal:   item.LineTotal,
			})
		}
		res.Equipment = append(res.Equipment, eqRes)
	}
	return res
}
