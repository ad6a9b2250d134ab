package entities

import "strings"

// Machine is a piece of equipment known to the shop. Machines are shared
// inventory-of-record: they are not owned by a single client, the same record
// may appear on orders for different clients.
//
// Storage model (DynamoDB):
//   - PK: id
type Machine struct {
	ID           string `json:"id"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`
	Type         string `json:"type"`
}

func (m Machine) Validate() error {
	if strings.TrimSpace(m.Brand) == "" {
		return validationErrorf("machine brand is required")
	}
	if strings.TrimSpace(m.Model) == "" {
		return validationErrorf("machine model is required")
	}
	if strings.TrimSpace(m.SerialNumber) == "" {
		return validationErrorf("machine serial number is required")
	}
	return nil
}
