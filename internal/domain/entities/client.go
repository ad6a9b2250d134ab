package entities

import "strings"

// PersonType distinguishes individual (PF) from organization (PJ) clients.

type PersonType string

const (
	PersonTypeIndividual   PersonType = "PF"
	PersonTypeOrganization PersonType = "PJ"
)

// Address is the structured postal address attached to a client.
//
// The core stores whatever the caller sends; postal-code lookup and format
// validation happen at the form boundary, outside this service.
type Address struct {
	ZipCode      string `json:"zip_code"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	Complement   string `json:"complement,omitempty"`
}

// Client is a registered customer of the shop.
//
// Storage model (DynamoDB):
//   - PK: id
//
// StateRegistration (inscrição estadual) is meaningful only for PJ clients;
// a value supplied for a PF client is stored but ignored by any
// organization-only display logic.
type Client struct {
	ID                string     `json:"id"`
	Type              PersonType `json:"type"`
	Name              string     `json:"name"`
	Document          string     `json:"document"`
	StateRegistration string     `json:"state_registration,omitempty"`
	Whatsapp          string     `json:"whatsapp"`
	Email             string     `json:"email,omitempty"`
	Address           Address    `json:"address"`
}

func (c Client) Validate() error {
	switch c.Type {
	case PersonTypeIndividual, PersonTypeOrganization:
	default:
		return validationErrorf("client type must be PF or PJ, got %q", c.Type)
	}
	if strings.TrimSpace(c.Name) == "" {
		return validationErrorf("client name is required")
	}
	if strings.TrimSpace(c.Document) == "" {
		return validationErrorf("client document is required")
	}
	if strings.TrimSpace(c.Whatsapp) == "" {
		return validationErrorf("client whatsapp is required")
	}
	return nil
}
