package entities

import "strings"

// Part is a stock item that can be sold on a budget line.
//
// Storage model (DynamoDB):
//   - PK: id
//
// StockQuantity may go negative: there is no hard stock reservation, the shop
// sometimes sells a part that is already on backorder.
type Part struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Code          string  `json:"code"`
	CostPrice     float64 `json:"cost_price"`
	SellPrice     float64 `json:"sell_price"`
	Supplier      string  `json:"supplier"`
	StockQuantity int     `json:"stock_quantity"`
}

func (p Part) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return validationErrorf("part name is required")
	}
	if strings.TrimSpace(p.Code) == "" {
		return validationErrorf("part code is required")
	}
	if p.CostPrice < 0 {
		return validationErrorf("part cost price cannot be negative")
	}
	if p.SellPrice < 0 {
		return validationErrorf("part sell price cannot be negative")
	}
	return nil
}
