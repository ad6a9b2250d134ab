package request

import "oficina_xpto/internal/domain/entities"

type MachineRequest struct {
	Brand        string `json:"brand" binding:"required"`
	Model        string `json:"model" binding:"required"`
	SerialNumber string `json:"serial_number" binding:"required"`
	Type         string `json:"type"`
}

func (r MachineRequest) ToEntity() entities.Machine {
	return entities.Machine{
		Brand:        r.Brand,
		Model:        r.Model,
		SerialNumber: r.SerialNumber,
		Type:         r.Type,
	}
}
