package order

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/storefront-account/internal/product"
)

type Order struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Items  []Item `json:"items"`
	Status Status `json:"status"`
	// TotalPrice and Total are both optional on the wire; see ResolveTotal.
	TotalPrice Amount    `json:"totalPrice"`
	Total      Amount    `json:"total"`
	Address    string    `json:"address"`
	Phone      string    `json:"phone"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// EffectiveTime is the last update time, or the creation time when the order was never updated.
func (o Order) EffectiveTime() time.Time {
	if !o.UpdatedAt.IsZero() {
		return o.UpdatedAt
	}
	return o.CreatedAt
}

type Item struct {
	Product *product.Product `json:"product,omitempty"`
	// Color is always a single value; list-shaped colors keep their first element.
	Color    string `json:"color,omitempty"`
	RAM      string `json:"ram,omitempty"`
	Storage  string `json:"storage,omitempty"`
	Quantity *int   `json:"quantity,omitempty"`
	Price    Amount `json:"price"`
}

func (it *Item) UnmarshalJSON(data []byte) error {
	type plain Item
	var raw struct {
		plain
		Color    json.RawMessage `json:"color"`
		Quantity json.RawMessage `json:"quantity"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*it = Item(raw.plain)
	it.Color = firstString(raw.Color)
	it.Quantity = lenientInt(raw.Quantity)
	return nil
}

// Qty is the quantity used for pricing: 1 when absent.
func (it Item) Qty() int {
	if it.Quantity == nil {
		return 1
	}
	return *it.Quantity
}

// Name is the product name, empty when the product reference is missing.
func (it Item) Name() string {
	if it.Product == nil {
		return ""
	}
	return it.Product.Name
}

func firstString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		return list[0]
	}
	return ""
}

func lenientInt(raw json.RawMessage) *int {
	var a Amount
	if err := a.UnmarshalJSON(raw); err != nil || !a.Valid {
		return nil
	}
	n := int(a.Decimal.IntPart())
	return &n
}

// Amount is an optional money value. A present zero is distinct from absent.
type Amount struct {
	decimal.NullDecimal
}

func Some(d decimal.Decimal) Amount {
	return Amount{decimal.NewNullDecimal(d)}
}

func SomeInt(v int64) Amount {
	return Some(decimal.NewFromInt(v))
}

// UnmarshalJSON never fails: only JSON numbers are amounts. Null, missing,
// quoted or otherwise non-numeric values decode as absent.
func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = Amount{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] == '"' || bytes.Equal(data, []byte("null")) {
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return nil
	}
	*a = Some(d)
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("null"), nil
	}
	return []byte(a.Decimal.String()), nil
}
