package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/storefront-account/internal/order"
)

var now = time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time { return now.Add(-time.Duration(n) * 24 * time.Hour) }

func TestDerive_WindowAndOrder(t *testing.T) {
	orders := []order.Order{
		{ID: "old", Status: order.StatusShipping, UpdatedAt: daysAgo(10)},
		{ID: "recent", Status: order.StatusShipping, UpdatedAt: daysAgo(2), TotalPrice: order.SomeInt(2000)},
		{ID: "newest", Status: order.StatusDelivered, CreatedAt: daysAgo(20), UpdatedAt: daysAgo(1)},
		{ID: "created-only", Status: order.StatusPending, CreatedAt: daysAgo(3)},
		{ID: "stale-created", Status: order.StatusPending, CreatedAt: daysAgo(8)},
	}

	got := Derive(orders, now)
	require.Len(t, got, 3)
	assert.Equal(t, "newest", got[0].ID)
	assert.Equal(t, "recent", got[1].ID)
	assert.Equal(t, "created-only", got[2].ID)

	assert.Equal(t, "Đơn hàng đang giao", got[1].Title)
	assert.Equal(t, "Đơn hàng #recent - Tổng tiền: 2000 đ", got[1].Message)
	assert.Equal(t, daysAgo(2), got[1].CreatedAt)
	assert.Equal(t, daysAgo(3), got[2].CreatedAt)
	for _, n := range got {
		assert.False(t, n.Read)
	}
}

func TestDerive_TwoAndTenDaysAgo(t *testing.T) {
	got := Derive([]order.Order{
		{ID: "two", UpdatedAt: daysAgo(2)},
		{ID: "ten", UpdatedAt: daysAgo(10)},
	}, now)
	require.Len(t, got, 1)
	assert.Equal(t, "two", got[0].ID)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Đơn hàng chờ xác nhận", Title(order.StatusPending))
	assert.Equal(t, "Đơn hàng đã xác nhận", Title(order.StatusConfirmed))
	assert.Equal(t, "Đơn hàng đã giao thành công", Title(order.StatusDelivered))
	assert.Equal(t, "Đơn hàng đã hủy", Title(order.StatusCancelled))
	assert.Equal(t, "Đơn hàng cập nhật", Title(order.Status(42)))
}

func TestFeed_ReadState(t *testing.T) {
	orders := []order.Order{
		{ID: "a", UpdatedAt: daysAgo(1)},
		{ID: "b", UpdatedAt: daysAgo(2)},
		{ID: "c", UpdatedAt: daysAgo(3)},
	}
	f := NewFeed()
	f.Refresh(orders, now)
	assert.Equal(t, 3, f.Unread())

	assert.True(t, f.MarkAsRead("b"))
	assert.Equal(t, 2, f.Unread())
	assert.False(t, f.MarkAsRead("b"), "second mark is a no-op")
	assert.False(t, f.MarkAsRead("zzz"))
	assert.Equal(t, 2, f.Unread())

	// refetch keeps the read flag for b and drops entries that left the list
	f.Refresh(orders[1:], now)
	assert.Equal(t, 1, f.Unread())
	items := f.Items()
	require.Len(t, items, 2)
	assert.True(t, items[0].Read)

	f.MarkAllAsRead()
	assert.Equal(t, 0, f.Unread())
	f.MarkAllAsRead()
	assert.Equal(t, 0, f.Unread())

	f.Refresh(orders, now)
	assert.Equal(t, 1, f.Unread(), "a was not present when everything was marked read")
}

func TestFeed_EmptyItemsNotNil(t *testing.T) {
	f := NewFeed()
	assert.NotNil(t, f.Items())
	assert.Empty(t, f.Items())

	f.Refresh([]order.Order{{ID: "old", UpdatedAt: daysAgo(30)}}, now)
	assert.NotNil(t, f.Items())
	assert.Equal(t, 0, f.Unread())
}
