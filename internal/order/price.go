package order

import "github.com/shopspring/decimal"

// ResolveTotal picks the authoritative total of o: totalPrice, then total,
// then the sum of price*quantity over the items. Missing prices count as 0.
func ResolveTotal(o Order) decimal.Decimal {
	if o.TotalPrice.Valid {
		return o.TotalPrice.Decimal
	}
	if o.Total.Valid {
		return o.Total.Decimal
	}
	sum := decimal.Zero
	for _, it := range o.Items {
		if !it.Price.Valid {
			continue
		}
		sum = sum.Add(it.Price.Decimal.Mul(decimal.NewFromInt(int64(it.Qty()))))
	}
	return sum
}

// Summary aggregates an order list for the account overview.
type Summary struct {
	Count    int             `json:"count"`
	Revenue  decimal.Decimal `json:"revenue"`
	Shipping int             `json:"shipping"`
}

func Summarize(orders []Order) Summary {
	s := Summary{Revenue: decimal.Zero}
	for _, o := range orders {
		s.Count++
		s.Revenue = s.Revenue.Add(ResolveTotal(o))
		if o.Status == StatusShipping {
			s.Shipping++
		}
	}
	return s
}
