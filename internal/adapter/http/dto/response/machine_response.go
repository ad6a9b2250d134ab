package response

import "oficina_xpto/internal/domain/entities"

type MachineResponse struct {
	ID           string `json:"id"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`
	Type         string `json:"type,omitempty"`
}

func FromMachine(m entities.Machine) MachineResponse {
	return MachineResponse{
		ID:           m.ID,
		Brand:        m.Brand,
		Model:        m.Model,
		SerialNumber: m.SerialNumber,
		Type:         m.Type,
	}
}

func FromMachines(machines []entities.Machine) []MachineResponse {
	out := make([]MachineResponse, 0, len(machines))
	for _, m := range machines {
		out = append(out, FromMachine(m))
	}
	return out
}
