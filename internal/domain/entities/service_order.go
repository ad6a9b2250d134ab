package entities

import (
	"strings"
	"time"
)

// OSStatus is the lifecycle status of a service order.
//
// BUDGETED means "quote sent, waiting client confirmation"; APPROVED and
// WAITING_PARTS are both "in production" from the client's point of view
// (WAITING_PARTS is the parts-backorder side branch of APPROVED).

type OSStatus string

const (
	StatusAnalysis     OSStatus = "ANALYSIS"
	StatusBudgeted     OSStatus = "BUDGETED"
	StatusApproved     OSStatus = "APPROVED"
	StatusWaitingParts OSStatus = "WAITING_PARTS"
	StatusFinished     OSStatus = "FINISHED"
	StatusDelivered    OSStatus = "DELIVERED"
)

// BudgetItemType classifies a budget line as a stocked part or labor.

type BudgetItemType string

const (
	BudgetItemPart    BudgetItemType = "PART"
	BudgetItemService BudgetItemType = "SERVICE"
)

// BudgetItem is one billable line inside an equipment entry.
//
// PartID is an optional link to the Part registry, meaningful only for PART
// lines. Selecting a part copies its name and sell price into
// Description/UnitPrice at selection time; later part edits never re-sync an
// existing line (price lock at quote time).
type BudgetItem struct {
	ID          string         `json:"id"`
	Type        BudgetItemType `json:"type"`
	Description string         `json:"description"`
	Quantity    float64        `json:"quantity"`
	UnitPrice   float64        `json:"unit_price"`
	PartID      string         `json:"part_id,omitempty"`
}

func (b BudgetItem) Validate() error {
	switch b.Type {
	case BudgetItemPart, BudgetItemService:
	default:
		return validationErrorf("budget item type must be PART or SERVICE, got %q", b.Type)
	}
	if strings.TrimSpace(b.Description) == "" {
		return validationErrorf("budget item description is required")
	}
	if b.Quantity <= 0 {
		return validationErrorf("budget item quantity must be positive")
	}
	if b.UnitPrice < 0 {
		return validationErrorf("budget item unit price cannot be negative")
	}
	return nil
}

// OSEquipment is one machine undergoing repair within a service order, with
// its own reported defect, technician diagnosis and budget lines. Budget line
// order is insertion order, significant for display only.
type OSEquipment struct {
	ID             string       `json:"id"`
	MachineID      string       `json:"machine_id"`
	DefectReported string       `json:"defect_reported"`
	DiagnosisNotes string       `json:"diagnosis_notes,omitempty"`
	BudgetItems    []BudgetItem `json:"budget_items"`
}

func (e OSEquipment) Validate() error {
	if strings.TrimSpace(e.MachineID) == "" {
		return validationErrorf("equipment machine_id is required")
	}
	for _, item := range e.BudgetItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// PaymentMethod enumerates the payment methods the shop accepts.

type PaymentMethod string

const (
	PaymentMethodPix        PaymentMethod = "PIX"
	PaymentMethodCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentMethodDebitCard  PaymentMethod = "DEBIT_CARD"
	PaymentMethodCash       PaymentMethod = "CASH"
	PaymentMethodBoleto     PaymentMethod = "BOLETO"
)

// Payment is a recorded fact (down payment, installment), not a processed
// transaction. There is no gateway behind it.
type Payment struct {
	ID          string        `json:"id"`
	Description string        `json:"description"`
	Method      PaymentMethod `json:"method"`
	Amount      float64       `json:"amount"`
	Date        time.Time     `json:"date"`
}

func (p Payment) Validate() error {
	switch p.Method {
	case PaymentMethodPix, PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodCash, PaymentMethodBoleto:
	default:
		return validationErrorf("payment method %q is not accepted", p.Method)
	}
	if p.Amount < 0 {
		return validationErrorf("payment amount cannot be negative")
	}
	return nil
}

// HistoryEntry is one row of the append-only status log.
type HistoryEntry struct {
	Date   time.Time `json:"date"`
	Status OSStatus  `json:"status"`
	Note   string    `json:"note,omitempty"`
}

// ServiceOrder is the aggregate for one repair job, possibly covering several
// machines. Totals are never stored: they are derived from the nested
// collections by the pricing package on every read.
//
// Storage model (DynamoDB):
//   - PK: id
//   - ShortCode is the human-facing reference used with the client; it is
//     unique within the collection and distinct from the internal id.
type ServiceOrder struct {
	ID           string        `json:"id"`
	ShortCode    string        `json:"short_code"`
	ClientID     string        `json:"client_id"`
	EntryDate    time.Time     `json:"entry_date"`
	DeadlineDate *time.Time    `json:"deadline_date,omitempty"`
	Status       OSStatus      `json:"status"`
	Equipment    []OSEquipment `json:"equipment_items"`
	Discount     float64       `json:"discount"`
	Payments     []Payment     `json:"payments"`
	History      []HistoryEntry `json:"history"`
}

func (o ServiceOrder) Validate() error {
	if strings.TrimSpace(o.ClientID) == "" {
		return validationErrorf("service order client_id is required")
	}
	if len(o.Equipment) == 0 {
		return validationErrorf("service order needs at least one equipment entry")
	}
	if o.Discount < 0 {
		return validationErrorf("service order discount cannot be negative")
	}
	for _, eq := range o.Equipment {
		if err := eq.Validate(); err != nil {
			return err
		}
	}
	for _, p := range o.Payments {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ServiceOrderUpdate is an explicit optional-field update payload for the
// aggregate. Nil means "leave as is"; a non-nil slice replaces the stored one
// wholesale. Status is deliberately absent: status moves only through the
// workflow transition, which also appends history.
type ServiceOrderUpdate struct {
	DeadlineDate *time.Time     `json:"deadline_date,omitempty"`
	Discount     *float64       `json:"discount,omitempty"`
	Equipment    *[]OSEquipment `json:"equipment_items,omitempty"`
}

// Merge applies the populated fields over o and returns the merged order.
func (u ServiceOrderUpdate) Merge(o ServiceOrder) ServiceOrder {
	if u.DeadlineDate != nil {
		d := *u.DeadlineDate
		o.DeadlineDate = &d
	}
	if u.Discount != nil {
		o.Discount = *u.Discount
	}
	if u.Equipment != nil {
		o.Equipment = *u.Equipment
	}
	return o
}
