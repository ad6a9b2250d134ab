package response

import "oficina_xpto/internal/domain/entities"

type PartResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Code          string  `json:"code"`
	CostPrice     float64 `json:"cost_price"`
	SellPrice     float64 `json:"sell_price"`
	Supplier      string  `json:"supplier,omitempty"`
	StockQuantity int     `json:"stock_quantity"`
}

func FromPart(p entities.Part) PartResponse {
	return PartResponse{
		ID:            p.ID,
		Name:          p.Name,
		Code:          p.Code,
		CostPrice:     p.CostPrice,
		SellPrice:     p.SellPrice,
		Supplier:      p.Supplier,
		StockQuantity: p.StockQuantity,
	}
}

func FromParts(parts []entities.Part) []PartResponse {
	out := make([]PartResponse, 0, len(parts))
	for _, p := range parts {
		out = append(out, FromPart(p))
	}
	return out
}
