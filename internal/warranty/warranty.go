// Package warranty derives warranty windows for delivered line items.
package warranty

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/MikeMC777/storefront-account/internal/logger"
	"github.com/MikeMC777/storefront-account/internal/order"
)

// ExpiringSoonDays is the window, in days, in which a valid warranty is flagged.
const ExpiringSoonDays = 30

// Remote validity labels.
const (
	RemoteValid   = "Valid"
	RemoteExpired = "Expired"
)

// Display labels.
const (
	LabelValid        = "Còn hiệu lực"
	LabelExpiringSoon = "Sắp hết hạn"
	LabelExpired      = "Đã hết hạn"
)

// Record is one warranty-eligible line item. Identity is (OrderID, ProductName).
type Record struct {
	OrderID        string    `json:"orderId"`
	ProductName    string    `json:"productName"`
	PurchaseDate   time.Time `json:"purchaseDate"`
	WarrantyMonths int       `json:"warrantyMonths"`
	// RemoteStatus is the server-reported label, empty when unknown.
	RemoteStatus string `json:"status,omitempty"`
}

// Source supplies warranty records for the current customer.
type Source interface {
	FetchWarrantyRecords(ctx context.Context) ([]Record, error)
}

type View struct {
	Record
	ExpiredDate   time.Time `json:"expiredDate"`
	DaysRemaining int       `json:"daysRemaining"`
	Valid         bool      `json:"valid"`
	ExpiringSoon  bool      `json:"expiringSoon"`
	Label         string    `json:"label"`
	// Mismatch is set when RemoteStatus disagrees with Valid. Both values are kept.
	Mismatch bool `json:"mismatch"`
}

// AddMonths advances t by n calendar months keeping day and time of day.
// The day is clamped to the last day of the target month.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	ty, tm, _ := first.Date()
	if last := daysIn(ty, tm, t.Location()); d > last {
		d = last
	}
	return time.Date(ty, tm, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(y int, m time.Month, loc *time.Location) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, loc).Day()
}

// DaysRemaining counts whole days from now until expiry, rounding up. It is
// negative once the warranty has lapsed.
func DaysRemaining(expired, now time.Time) int {
	return int(math.Ceil(float64(expired.Sub(now)) / float64(24*time.Hour)))
}

func Evaluate(r Record, now time.Time) View {
	v := View{Record: r, ExpiredDate: AddMonths(r.PurchaseDate, r.WarrantyMonths)}
	v.DaysRemaining = DaysRemaining(v.ExpiredDate, now)
	v.Valid = v.DaysRemaining > 0
	v.ExpiringSoon = v.Valid && v.DaysRemaining <= ExpiringSoonDays

	switch {
	case !v.Valid:
		v.Label = LabelExpired
	case v.ExpiringSoon:
		v.Label = LabelExpiringSoon
	default:
		v.Label = LabelValid
	}

	switch r.RemoteStatus {
	case RemoteValid:
		v.Mismatch = !v.Valid
	case RemoteExpired:
		v.Mismatch = v.Valid
	}
	return v
}

// EvaluateAll evaluates every record and logs the ones whose remote label disagrees.
func EvaluateAll(records []Record, now time.Time) []View {
	out := make([]View, 0, len(records))
	for _, r := range records {
		v := Evaluate(r, now)
		if !knownRemoteStatus(r.RemoteStatus) {
			logger.Warn("warranty status unrecognized",
				zap.String("order", r.OrderID),
				zap.String("product", r.ProductName),
				zap.String("remote", r.RemoteStatus),
				zap.Bool("valid", v.Valid))
		}
		if v.Mismatch {
			logger.Warn("warranty status mismatch",
				zap.String("order", r.OrderID),
				zap.String("product", r.ProductName),
				zap.String("remote", r.RemoteStatus),
				zap.Bool("valid", v.Valid),
				zap.Int("days_remaining", v.DaysRemaining))
		}
		out = append(out, v)
	}
	return out
}

func knownRemoteStatus(s string) bool {
	return s == "" || s == RemoteValid || s == RemoteExpired
}

// Eligible keeps the records whose order is Delivered in orders. Dropped
// records are logged.
func Eligible(records []Record, orders []order.Order) []Record {
	delivered := make(map[string]bool, len(orders))
	for _, o := range orders {
		if o.Status == order.StatusDelivered {
			delivered[o.ID] = true
		}
	}
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if !delivered[r.OrderID] {
			logger.Warn("warranty record for undelivered order",
				zap.String("order", r.OrderID),
				zap.String("product", r.ProductName))
			continue
		}
		out = append(out, r)
	}
	return out
}

// FromOrders projects delivered orders into one record per line item. Other
// statuses contribute nothing. The purchase date is the delivery update time.
func FromOrders(orders []order.Order) []Record {
	var out []Record
	for _, o := range orders {
		if o.Status != order.StatusDelivered {
			continue
		}
		for _, it := range o.Items {
			out = append(out, Record{
				OrderID:        o.ID,
				ProductName:    it.Name(),
				PurchaseDate:   o.EffectiveTime(),
				WarrantyMonths: it.Product.Warranty(),
			})
		}
	}
	return out
}
