package order

import "github.com/MikeMC777/storefront-account/internal/product"

// Attribute is one labelled variant value shown next to a line item.
type Attribute struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Attributes lists the variant values worth displaying for the item.
// Headphones and accessories only show color; phones also show ram and storage.
func (it Item) Attributes() []Attribute {
	var out []Attribute
	if it.Color != "" {
		out = append(out, Attribute{Label: "Màu sắc", Value: it.Color})
	}
	if product.IsHeadphoneLike(it.Product) {
		return out
	}
	if it.RAM != "" {
		out = append(out, Attribute{Label: "RAM", Value: it.RAM})
	}
	if it.Storage != "" {
		out = append(out, Attribute{Label: "Bộ nhớ", Value: it.Storage})
	}
	return out
}
