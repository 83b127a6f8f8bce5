package warranty

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/MikeMC777/storefront-account/internal/logger"
	"github.com/MikeMC777/storefront-account/internal/order"
	"github.com/MikeMC777/storefront-account/internal/product"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{"one year", date(2024, 1, 1), 12, date(2025, 1, 1)},
		{"clamp to leap february", date(2024, 1, 31), 1, date(2024, 2, 29)},
		{"clamp to february", date(2023, 1, 31), 1, date(2023, 2, 28)},
		{"thirty day month", date(2024, 3, 31), 1, date(2024, 4, 30)},
		{"year rollover", date(2024, 11, 15), 3, date(2025, 2, 15)},
		{"zero months", date(2024, 6, 10), 0, date(2024, 6, 10)},
		{"keeps time of day",
			time.Date(2024, 5, 31, 14, 30, 5, 0, time.UTC), 6,
			time.Date(2024, 11, 30, 14, 30, 5, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonths(tt.start, tt.months))
		})
	}
}

func TestEvaluate_ExpiringSoon(t *testing.T) {
	r := Record{OrderID: "o1", ProductName: "iPhone", PurchaseDate: date(2024, 1, 1), WarrantyMonths: 12, RemoteStatus: RemoteValid}
	v := Evaluate(r, date(2024, 12, 15))

	assert.Equal(t, date(2025, 1, 1), v.ExpiredDate)
	assert.Equal(t, 17, v.DaysRemaining)
	assert.True(t, v.Valid)
	assert.True(t, v.ExpiringSoon)
	assert.Equal(t, LabelExpiringSoon, v.Label)
	assert.False(t, v.Mismatch)
}

func TestEvaluate_Boundaries(t *testing.T) {
	r := Record{PurchaseDate: date(2024, 1, 1), WarrantyMonths: 12}

	v := Evaluate(r, date(2024, 6, 1))
	assert.True(t, v.Valid)
	assert.False(t, v.ExpiringSoon)
	assert.Equal(t, LabelValid, v.Label)

	v = Evaluate(r, date(2024, 12, 2))
	assert.Equal(t, 30, v.DaysRemaining)
	assert.True(t, v.ExpiringSoon)

	v = Evaluate(r, date(2024, 12, 31).Add(12*time.Hour))
	assert.Equal(t, 1, v.DaysRemaining, "partial days round up")

	v = Evaluate(r, date(2025, 1, 1))
	assert.Equal(t, 0, v.DaysRemaining)
	assert.False(t, v.Valid)
	assert.False(t, v.ExpiringSoon)
	assert.Equal(t, LabelExpired, v.Label)

	v = Evaluate(r, date(2025, 1, 11))
	assert.Equal(t, -10, v.DaysRemaining)
	assert.False(t, v.Valid)
}

func TestEvaluate_RemoteMismatch(t *testing.T) {
	now := date(2025, 6, 1)
	expired := Record{PurchaseDate: date(2024, 1, 1), WarrantyMonths: 12, RemoteStatus: RemoteValid}
	v := Evaluate(expired, now)
	assert.True(t, v.Mismatch)
	assert.Equal(t, LabelExpired, v.Label, "lapsed windows always render expired")
	assert.Equal(t, RemoteValid, v.RemoteStatus)

	valid := Record{PurchaseDate: date(2025, 1, 1), WarrantyMonths: 12, RemoteStatus: RemoteExpired}
	assert.True(t, Evaluate(valid, now).Mismatch)

	unknown := Record{PurchaseDate: date(2025, 1, 1), WarrantyMonths: 12}
	assert.False(t, Evaluate(unknown, now).Mismatch)

	views := EvaluateAll([]Record{expired, valid, unknown}, now)
	require.Len(t, views, 3)
	assert.True(t, views[0].Mismatch)
	assert.False(t, views[2].Mismatch)
}

func TestFromOrders_DeliveredOnly(t *testing.T) {
	months := 24
	delivered := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	orders := []order.Order{
		{ID: "d1", Status: order.StatusDelivered, CreatedAt: date(2024, 3, 1), UpdatedAt: delivered, Items: []order.Item{
			{Product: &product.Product{Name: "Galaxy S24", WarrantyMonths: &months}},
			{Product: &product.Product{Name: "Buds"}},
		}},
		{ID: "s1", Status: order.StatusShipping, Items: []order.Item{{Product: &product.Product{Name: "Pixel"}}}},
		{ID: "c1", Status: order.StatusCancelled, Items: []order.Item{{Product: &product.Product{Name: "Pixel"}}}},
		{ID: "d2", Status: order.StatusDelivered, CreatedAt: date(2024, 1, 5), Items: []order.Item{{}}},
	}

	recs := FromOrders(orders)
	require.Len(t, recs, 3)
	assert.Equal(t, Record{OrderID: "d1", ProductName: "Galaxy S24", PurchaseDate: delivered, WarrantyMonths: 24}, recs[0])
	assert.Equal(t, product.DefaultWarrantyMonths, recs[1].WarrantyMonths)
	assert.Equal(t, "d2", recs[2].OrderID)
	assert.Equal(t, date(2024, 1, 5), recs[2].PurchaseDate)
}

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := logger.L()
	logger.Set(zap.New(core))
	t.Cleanup(func() { logger.Set(prev) })
	return logs
}

func TestEvaluateAll_UnrecognizedRemoteLabel(t *testing.T) {
	logs := observeLogs(t)
	now := date(2024, 6, 1)

	views := EvaluateAll([]Record{
		{OrderID: "o1", ProductName: "Galaxy S24", PurchaseDate: date(2024, 1, 1), WarrantyMonths: 12, RemoteStatus: "Pending"},
		{OrderID: "o2", ProductName: "iPhone 15", PurchaseDate: date(2024, 1, 1), WarrantyMonths: 12, RemoteStatus: RemoteValid},
	}, now)
	require.Len(t, views, 2)
	assert.True(t, views[0].Valid)
	assert.False(t, views[0].Mismatch, "an unknown label is not compared")

	entries := logs.FilterMessage("warranty status unrecognized").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "Pending", entries[0].ContextMap()["remote"])
}

func TestEligible_DeliveredOrdersOnly(t *testing.T) {
	logs := observeLogs(t)
	orders := []order.Order{
		{ID: "o-delivered", Status: order.StatusDelivered},
		{ID: "o-shipping", Status: order.StatusShipping},
	}
	records := []Record{
		{OrderID: "o-delivered", ProductName: "Galaxy S24"},
		{OrderID: "o-shipping", ProductName: "AirPods"},
		{OrderID: "o-unknown", ProductName: "Pixel 8"},
	}

	got := Eligible(records, orders)
	require.Len(t, got, 1)
	assert.Equal(t, "o-delivered", got[0].OrderID)
	assert.Equal(t, 2, logs.FilterMessage("warranty record for undelivered order").Len())
}
