package request

import "oficina_xpto/internal/domain/entities"

type PartRequest struct {
	Name          string  `json:"name" binding:"required"`
	Code          string  `json:"code" binding:"required"`
	CostPrice     float64 `json:"cost_price"`
	SellPrice     float64 `json:"sell_price"`
	Supplier      string  `json:"supplier"`
	StockQuantity int     `json:"stock_quantity"`
}

func (r PartRequest) ToEntity() entities.Part {
	return entities.Part{
		Name:          r.Name,
		Code:          r.Code,
		CostPrice:     r.CostPrice,
		SellPrice:     r.SellPrice,
		Supplier:      r.Supplier,
		StockQuantity: r.StockQuantity,
	}
}
