// Package pricing derives every monetary figure of a service order from its
// nested collections. Nothing here is ever persisted: totals are recomputed
// on read so they cannot drift from the budget lines that back them.
//
// All functions are total over structurally valid input and never error;
// negative quantities/prices are rejected upstream at entity validation.
package pricing

import (
	"math"

	"oficina_xpto/internal/domain/entities"
)

// EquipmentSubtotal sums quantity times unit price over the budget lines of
// one equipment entry.
func EquipmentSubtotal(eq entities.OSEquipment) float64 {
	total := 0.0
	for _, item := range eq.BudgetItems {
		total += item.Quantity * item.UnitPrice
	}
	return total
}

// OrderSubtotal sums the equipment subtotals across the whole order.
func OrderSubtotal(o entities.ServiceOrder) float64 {
	total := 0.0
	for _, eq := range o.Equipment {
		total += EquipmentSubtotal(eq)
	}
	return total
}

// OrderTotal applies the global discount to the order subtotal, clamped at
// zero. A discount larger than the subtotal yields a free order, never a
// negative one.
func OrderTotal(o entities.ServiceOrder) float64 {
	return math.Max(0, OrderSubtotal(o)-o.Discount)
}

// TotalPaid sums every recorded payment.
func TotalPaid(o entities.ServiceOrder) float64 {
	total := 0.0
	for _, p := range o.Payments {
		total += p.Amount
	}
	return total
}

// RemainingBalance is total minus paid. It goes negative on overpayment;
// callers display the sign, this package does not clamp it.
func RemainingBalance(o entities.ServiceOrder) float64 {
	return OrderTotal(o) - TotalPaid(o)
}

// Round2 rounds to two fraction digits for presentation. Intermediate sums
// stay unrounded so rounding error does not compound across lines.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
