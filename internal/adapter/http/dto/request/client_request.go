package request

import (
	"strings"

	"oficina_xpto/internal/domain/entities"
)

type AddressRequest struct {
	ZipCode      string `json:"zip_code"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	Complement   string `json:"complement"`
}

// ClientRequest is the registration payload for a shop customer. Type is PF
// for individuals and PJ for organizations.
type ClientRequest struct {
	Type              string         `json:"type" binding:"required"`
	Name              string         `json:"name" binding:"required"`
	Document          string         `json:"document" binding:"required"`
	StateRegistration string         `json:"state_registration"`
	Whatsapp          string         `json:"whatsapp" binding:"required"`
	Email             string         `json:"email"`
	Address           AddressRequest `json:"address"`
}

func (r ClientRequest) ToEntity() entities.Client {
	return entities.Client{
		Type:              entities.PersonType(strings.ToUpper(strings.TrimSpace(r.Type))),
		Name:              r.Name,
		Document:          r.Document,
		StateRegistration: strings.TrimSpace(r.StateRegistration),
		Whatsapp:          r.Whatsapp,
		Email:             strings.TrimSpace(r.Email),
		Address: entities.Address{
			ZipCode:      r.Address.ZipCode,
			Street:       r.Address.Street,
			Number:       r.Address.Number,
			Neighborhood: r.Address.Neighborhood,
			City:         r.Address.City,
			State:        r.Address.State,
			Complement:   r.Address.Complement,
		},
	}
}
