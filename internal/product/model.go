// Package product holds the product reference carried by order line items.
package product

import (
	"bytes"
	"encoding/json"
)

// DefaultWarrantyMonths applies when the catalog does not state a warranty length.
const DefaultWarrantyMonths = 12

type Product struct {
	ID       string         `json:"id,omitempty"`
	Name     string         `json:"name"`
	Category Category       `json:"category"`
	Specs    map[string]any `json:"specs,omitempty"`
	// WarrantyMonths is nil when the catalog entry carries no warranty length.
	WarrantyMonths *int `json:"warrantyMonths,omitempty"`
}

// Category is sent either as a plain name or as a populated {"name": ...} object.
type Category struct {
	Name string `json:"name"`
}

func (c *Category) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &c.Name)
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	c.Name = obj.Name
	return nil
}

// Warranty returns the warranty length in months, defaulting when unset.
func (p *Product) Warranty() int {
	if p == nil || p.WarrantyMonths == nil || *p.WarrantyMonths < 0 {
		return DefaultWarrantyMonths
	}
	return *p.WarrantyMonths
}

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: not found
	Error string `json:"error"`
}
