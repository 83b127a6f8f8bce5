// Package notify turns recent order activity into header notifications.
// Read state lives only in this process and is never sent to the server.
package notify

import (
	"fmt"
	"sort"
	"time"

	"github.com/MikeMC777/storefront-account/internal/order"
)

// Window is how far back order activity produces a notification.
const Window = 7 * 24 * time.Hour

type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// Title returns the notification title for a status. Unknown codes get a
// generic update title.
func Title(s order.Status) string {
	switch s {
	case order.StatusPending:
		return "Đơn hàng chờ xác nhận"
	case order.StatusConfirmed:
		return "Đơn hàng đã xác nhận"
	case order.StatusShipping:
		return "Đơn hàng đang giao"
	case order.StatusDelivered:
		return "Đơn hàng đã giao thành công"
	case order.StatusCancelled:
		return "Đơn hàng đã hủy"
	}
	return "Đơn hàng cập nhật"
}

// Derive builds the unread notification list for orders active within Window of now,
// newest first.
func Derive(orders []order.Order, now time.Time) []Notification {
	var out []Notification
	for _, o := range orders {
		at := o.EffectiveTime()
		if now.Sub(at) > Window {
			continue
		}
		out = append(out, Notification{
			ID:        o.ID,
			Title:     Title(o.Status),
			Message:   fmt.Sprintf("Đơn hàng #%s - Tổng tiền: %s đ", o.ID, order.ResolveTotal(o).StringFixed(0)),
			CreatedAt: at,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Feed keeps the derived notifications plus a side table of read ids, so a
// refresh from the server neither resurrects nor clears read flags.
type Feed struct {
	items []Notification
	read  map[string]bool
}

func NewFeed() *Feed {
	return &Feed{read: make(map[string]bool)}
}

// Refresh rederives the list. Read flags survive for ids still present.
func (f *Feed) Refresh(orders []order.Order, now time.Time) {
	items := Derive(orders, now)
	read := make(map[string]bool, len(f.read))
	for i := range items {
		if f.read[items[i].ID] {
			items[i].Read = true
			read[items[i].ID] = true
		}
	}
	f.items = items
	f.read = read
}

// Items returns a copy of the feed, never nil.
func (f *Feed) Items() []Notification {
	out := make([]Notification, len(f.items))
	copy(out, f.items)
	return out
}

func (f *Feed) Unread() int {
	n := 0
	for _, it := range f.items {
		if !it.Read {
			n++
		}
	}
	return n
}

// MarkAsRead flips one notification. It reports false when id is unknown or already read.
func (f *Feed) MarkAsRead(id string) bool {
	for i := range f.items {
		if f.items[i].ID != id {
			continue
		}
		if f.items[i].Read {
			return false
		}
		f.items[i].Read = true
		f.read[id] = true
		return true
	}
	return false
}

func (f *Feed) MarkAllAsRead() {
	for i := range f.items {
		f.items[i].Read = true
		f.read[f.items[i].ID] = true
	}
}
