package entities

import (
	"errors"
	"testing"
	"time"
)

func validClient() Client {
	return Client{
		Type:     PersonTypeIndividual,
		Name:     "Carlos Eduardo",
		Document: "123.456.789-00",
		Whatsapp: "(11) 99999-9999",
		Address: Address{
			ZipCode: "01001-000",
			Street:  "Praça da Sé",
			Number:  "100",
			City:    "São Paulo",
			State:   "SP",
		},
	}
}

func TestClientValidate(t *testing.T) {
	t.Run("valid individual", func(t *testing.T) {
		if err := validClient().Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("organization without state registration is fine", func(t *testing.T) {
		c := validClient()
		c.Type = PersonTypeOrganization
		c.Name = "Oficina do Zé LTDA"
		c.Document = "12.345.678/0001-90"
		if err := c.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("individual with state registration is accepted", func(t *testing.T) {
		// The field is stored but only meaningful for PJ display logic.
		c := validClient()
		c.StateRegistration = "123456789"
		if err := c.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		cases := map[string]func(*Client){
			"name":     func(c *Client) { c.Name = "  " },
			"document": func(c *Client) { c.Document = "" },
			"whatsapp": func(c *Client) { c.Whatsapp = "" },
			"type":     func(c *Client) { c.Type = "XX" },
		}
		for name, mutate := range cases {
			c := validClient()
			mutate(&c)
			if err := c.Validate(); !errors.Is(err, ErrValidation) {
				t.Fatalf("%s: expected ErrValidation, got %v", name, err)
			}
		}
	})
}

func TestMachineValidate(t *testing.T) {
	m := Machine{Brand: "Makita", Model: "5007N", SerialNumber: "99887766", Type: "Serra Circular"}
	if err := m.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m.SerialNumber = ""
	if err := m.Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestPartValidate(t *testing.T) {
	p := Part{Name: "Induzido Makita 5007N", Code: "IND-5007", CostPrice: 80, SellPrice: 150, Supplier: "J Nakao", StockQuantity: 5}
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("negative stock allowed", func(t *testing.T) {
		p := p
		p.StockQuantity = -3
		if err := p.Validate(); err != nil {
			t.Fatalf("backordered stock must validate, got %v", err)
		}
	})

	t.Run("negative price rejected", func(t *testing.T) {
		p := p
		p.SellPrice = -1
		if err := p.Validate(); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

func TestBudgetItemValidate(t *testing.T) {
	item := BudgetItem{Type: BudgetItemService, Description: "Mão de Obra", Quantity: 1, UnitPrice: 80}
	if err := item.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := map[string]func(*BudgetItem){
		"zero quantity":     func(b *BudgetItem) { b.Quantity = 0 },
		"negative price":    func(b *BudgetItem) { b.UnitPrice = -5 },
		"empty description": func(b *BudgetItem) { b.Description = " " },
		"bad type":          func(b *BudgetItem) { b.Type = "LABOR" },
	}
	for name, mutate := range cases {
		b := item
		mutate(&b)
		if err := b.Validate(); !errors.Is(err, ErrValidation) {
			t.Fatalf("%s: expected ErrValidation, got %v", name, err)
		}
	}
}

func TestPaymentValidate(t *testing.T) {
	p := Payment{Description: "Sinal", Method: PaymentMethodPix, Amount: 100, Date: time.Now()}
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p.Method = "CHEQUE"
	if err := p.Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	p.Method = PaymentMethodCash
	p.Amount = -1
	if err := p.Validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestServiceOrderValidate(t *testing.T) {
	order := ServiceOrder{
		ClientID: "c-1",
		Equipment: []OSEquipment{
			{MachineID: "m-1", DefectReported: "Parou de funcionar"},
		},
	}
	if err := order.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("no equipment", func(t *testing.T) {
		o := order
		o.Equipment = nil
		if err := o.Validate(); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("negative discount", func(t *testing.T) {
		o := order
		o.Discount = -10
		if err := o.Validate(); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("invalid nested item bubbles up", func(t *testing.T) {
		o := order
		o.Equipment = []OSEquipment{{MachineID: "m-1", BudgetItems: []BudgetItem{{Type: BudgetItemPart, Description: "Rolamento", Quantity: -1, UnitPrice: 15}}}}
		if err := o.Validate(); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

func TestServiceOrderUpdateMerge(t *testing.T) {
	deadline := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	discount := 25.0
	order := ServiceOrder{ID: "os-1", ClientID: "c-1", Discount: 0}

	merged := ServiceOrderUpdate{DeadlineDate: &deadline, Discount: &discount}.Merge(order)
	if merged.Discount != 25.0 || merged.DeadlineDate == nil || !merged.DeadlineDate.Equal(deadline) {
		t.Fatalf("unexpected merge result: %+v", merged)
	}

	// Nil fields leave the stored value untouched.
	unchanged := ServiceOrderUpdate{}.Merge(merged)
	if unchanged.Discount != 25.0 || unchanged.DeadlineDate == nil {
		t.Fatalf("empty update must not reset fields: %+v", unchanged)
	}
}
