package request

import (
	"testing"
	"time"

	"oficina_xpto/internal/domain/entities"
)

func TestServiceOrderRequest_ToEntity(t *testing.T) {
	deadline := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	r := ServiceOrderRequest{
		ClientID:     "client-1",
		DeadlineDate: &deadline,
		Discount:     15,
		Equipment: []EquipmentRequest{
			{
				MachineID:      "machine-1",
				DefectReported: "nao liga",
				DiagnosisNotes: "fonte queimada",
				BudgetItems: []BudgetItemRequest{
					{Type: "part", Description: "Fonte 12V", Quantity: 1, UnitPrice: 180, PartID: " part-1 "},
					{Type: "SERVICE", Description: "Troca da fonte", Quantity: 2, UnitPrice: 60},
				},
			},
		},
	}

	o := r.ToEntity()
	if o.ClientID != "client-1" || o.Discount != 15 {
		t.Fatalf("unexpected order fields: %+v", o)
	}
	if o.DeadlineDate == nil || !o.DeadlineDate.Equal(deadline) {
		t.Fatalf("unexpected deadline: %+v", o.DeadlineDate)
	}
	if !o.EntryDate.IsZero() {
		t.Fatalf("entry date should stay zero when omitted, got %v", o.EntryDate)
	}
	if len(o.Equipment) != 1 || len(o.Equipment[0].BudgetItems) != 2 {
		t.Fatalf("unexpected equipment mapping: %+v", o.Equipment)
	}
	first := o.Equipment[0].BudgetItems[0]
	if first.Type != entities.BudgetItemPart || first.PartID != "part-1" {
		t.Fatalf("type/part id not normalized: %+v", first)
	}
	if o.Equipment[0].BudgetItems[1].Type != entities.BudgetItemService {
		t.Fatalf("service line type not mapped: %+v", o.Equipment[0].BudgetItems[1])
	}
}

func TestServiceOrderUpdateRequest_ToUpdate(t *testing.T) {
	t.Run("absent fields stay nil", func(t *testing.T) {
		upd := ServiceOrderUpdateRequest{}.ToUpdate()
		if upd.DeadlineDate != nil || upd.Discount != nil || upd.Equipment != nil {
			t.Fatalf("expected empty update, got %+v", upd)
		}
	})

	t.Run("equipment replacement maps through", func(t *testing.T) {
		discount := 20.0
		eq := []EquipmentRequest{{MachineID: "machine-2"}}
		upd := ServiceOrderUpdateRequest{Discount: &discount, Equipment: &eq}.ToUpdate()
		if upd.Discount == nil || *upd.Discount != 20 {
			t.Fatalf("unexpected discount: %+v", upd.Discount)
		}
		if upd.Equipment == nil || len(*upd.Equipment) != 1 || (*upd.Equipment)[0].MachineID != "machine-2" {
			t.Fatalf("unexpected equipment: %+v", upd.Equipment)
		}
	})
}

func TestStatusChangeRequest_ResolveStatus(t *testing.T) {
	if got := (StatusChangeRequest{Status: " budgeted "}).ResolveStatus(); got != entities.StatusBudgeted {
		t.Fatalf("expected BUDGETED, got %q", got)
	}
}

func TestPaymentRequest_ToEntity(t *testing.T) {
	paid := time.Date(2025, 7, 2, 14, 30, 0, 0, time.UTC)
	p := PaymentRequest{Description: "sinal", Method: "pix", Amount: 100, Date: &paid}.ToEntity()
	if p.Method != entities.PaymentMethodPix || p.Amount != 100 {
		t.Fatalf("unexpected payment: %+v", p)
	}
	if !p.Date.Equal(paid) {
		t.Fatalf("unexpected date: %v", p.Date)
	}
}
