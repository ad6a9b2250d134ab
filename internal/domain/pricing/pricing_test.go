package pricing

import (
	"testing"
	"time"

	"oficina_xpto/internal/domain/entities"
)

// sampleOrder mirrors a real bench case: one circular saw with two parts and
// one labor line (150 + 35 + 80).
func sampleOrder(discount float64) entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:       "os-1",
		ClientID: "c-1",
		Status:   entities.StatusBudgeted,
		Discount: discount,
		Equipment: []entities.OSEquipment{
			{
				ID:        "eq-1",
				MachineID: "m-1",
				BudgetItems: []entities.BudgetItem{
					{ID: "i-1", Type: entities.BudgetItemPart, Description: "Induzido 5007N", Quantity: 1, UnitPrice: 150.00, PartID: "p-1"},
					{ID: "i-2", Type: entities.BudgetItemPart, Description: "Jogo de Escovas CB-153", Quantity: 1, UnitPrice: 35.00, PartID: "p-2"},
					{ID: "i-3", Type: entities.BudgetItemService, Description: "Mão de Obra Especializada", Quantity: 1, UnitPrice: 80.00},
				},
			},
		},
	}
}

func TestOrderSubtotalAndTotal(t *testing.T) {
	o := sampleOrder(0)

	if got := OrderSubtotal(o); got != 265.00 {
		t.Fatalf("expected subtotal 265.00, got %v", got)
	}
	if got := OrderTotal(o); got != 265.00 {
		t.Fatalf("expected total 265.00, got %v", got)
	}
}

func TestOrderTotalAppliesDiscount(t *testing.T) {
	o := sampleOrder(65)

	if got := OrderTotal(o); got != 200.00 {
		t.Fatalf("expected total 200.00, got %v", got)
	}
	if OrderTotal(o) != OrderSubtotal(o)-o.Discount {
		t.Fatalf("total must equal subtotal minus discount when discount <= subtotal")
	}
}

func TestOrderTotalClampsToZero(t *testing.T) {
	o := sampleOrder(300)

	if got := OrderTotal(o); got != 0 {
		t.Fatalf("expected clamped total 0, got %v", got)
	}
}

func TestEquipmentSubtotalMultipleEquipment(t *testing.T) {
	o := sampleOrder(0)
	o.Equipment = append(o.Equipment, entities.OSEquipment{
		ID:        "eq-2",
		MachineID: "m-2",
		BudgetItems: []entities.BudgetItem{
			{ID: "i-4", Type: entities.BudgetItemService, Description: "Limpeza", Quantity: 2, UnitPrice: 25.00},
		},
	})

	if got := EquipmentSubtotal(o.Equipment[1]); got != 50.00 {
		t.Fatalf("expected equipment subtotal 50.00, got %v", got)
	}
	if got := OrderSubtotal(o); got != 315.00 {
		t.Fatalf("expected order subtotal 315.00, got %v", got)
	}
}

func TestTotalPaidAndRemainingBalance(t *testing.T) {
	o := sampleOrder(0)
	o.Payments = []entities.Payment{
		{ID: "pay-1", Description: "Sinal", Method: entities.PaymentMethodPix, Amount: 100.00, Date: time.Now()},
	}

	if got := TotalPaid(o); got != 100.00 {
		t.Fatalf("expected paid 100.00, got %v", got)
	}
	if got := RemainingBalance(o); got != 165.00 {
		t.Fatalf("expected balance 165.00, got %v", got)
	}
}

func TestRemainingBalanceMayGoNegative(t *testing.T) {
	o := sampleOrder(0)
	o.Payments = []entities.Payment{
		{ID: "pay-1", Method: entities.PaymentMethodCash, Amount: 300.00, Date: time.Now()},
	}

	if got := RemainingBalance(o); got != -35.00 {
		t.Fatalf("expected overpaid balance -35.00, got %v", got)
	}
}

func TestPricingIsIdempotent(t *testing.T) {
	o := sampleOrder(10)
	o.Payments = []entities.Payment{{ID: "pay-1", Method: entities.PaymentMethodPix, Amount: 50, Date: time.Now()}}

	first := RemainingBalance(o)
	second := RemainingBalance(o)
	if first != second {
		t.Fatalf("expected identical results on unchanged order, got %v then %v", first, second)
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(10.006); got != 10.01 {
		t.Fatalf("expected 10.01, got %v", got)
	}
	if got := Round2(3.14159); got != 3.14 {
		t.Fatalf("expected 3.14, got %v", got)
	}
}
