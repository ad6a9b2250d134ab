package response

import "oficina_xpto/internal/domain/entities"

type AddressResponse struct {
	ZipCode      string `json:"zip_code"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	Complement   string `json:"complement,omitempty"`
}

type ClientResponse struct {
	ID                string          `json:"id"`
	Type              string          `json:"type"`
	Name              string          `json:"name"`
	Document          string          `json:"document"`
	StateRegistration string          `json:"state_registration,omitempty"`
	Whatsapp          string          `json:"whatsapp"`
	Email             string          `json:"email,omitempty"`
	Address           AddressResponse `json:"address"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:                c.ID,
		Type:              string(c.Type),
		Name:              c.Name,
		Document:          c.Document,
		StateRegistration: c.StateRegistration,
		Whatsapp:          c.Whatsapp,
		Email:             c.Email,
		Address: AddressResponse{
			ZipCode:      c.Address.ZipCode,
			Street:       c.Address.Street,
			Number:       c.Address.Number,
			Neighborhood: c.Address.Neighborhood,
			City:         c.Address.City,
			State:        c.Address.State,
			Complement:   c.Address.Complement,
		},
	}
}

func FromClients(clients []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, FromClient(c))
	}
	return out
}
