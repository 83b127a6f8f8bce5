// Package account wires the order views for the single signed-in customer.
package account

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/MikeMC777/storefront-account/internal/logger"
	"github.com/MikeMC777/storefront-account/internal/notify"
	"github.com/MikeMC777/storefront-account/internal/order"
	"github.com/MikeMC777/storefront-account/internal/product"
	"github.com/MikeMC777/storefront-account/internal/remote"
	"github.com/MikeMC777/storefront-account/internal/warranty"
)

// Collaborator is everything the session needs from the order API.
type Collaborator interface {
	order.Remote
	warranty.Source
}

// OrderView is an order with its derived display fields.
type OrderView struct {
	order.Order
	StatusLabel string     `json:"statusLabel"`
	Amount      string     `json:"amount"`
	Lines       []LineView `json:"lines"`
}

type LineView struct {
	Name       string            `json:"name"`
	Quantity   int               `json:"quantity"`
	Headphone  bool              `json:"headphone"`
	Attributes []order.Attribute `json:"attributes"`
}

// Session serializes access from concurrent HTTP handlers; the order core
// underneath holds no locks.
type Session struct {
	mu      sync.Mutex
	remote  Collaborator
	history *order.History
	feed    *notify.Feed
	now     func() time.Time
}

func NewSession(remote Collaborator, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	return &Session{
		remote:  remote,
		history: order.NewHistory(remote),
		feed:    notify.NewFeed(),
		now:     now,
	}
}

// Refresh reloads orders from the server, overwriting the local copy, and
// rederives notifications.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refresh(ctx)
}

func (s *Session) refresh(ctx context.Context) error {
	if err := s.history.Load(ctx); err != nil {
		return err
	}
	s.feed.Refresh(s.history.Orders(), s.now())
	return nil
}

// ensureLoaded fetches the order list when id is not held locally yet.
func (s *Session) ensureLoaded(ctx context.Context, id string) error {
	if _, ok := s.history.Find(id); ok {
		return nil
	}
	return s.refresh(ctx)
}

func (s *Session) Orders(ctx context.Context) ([]OrderView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.refresh(ctx); err != nil {
		return nil, err
	}
	orders := s.history.Orders()
	out := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderView(o))
	}
	return out, nil
}

func (s *Session) Summary(ctx context.Context) (order.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.refresh(ctx); err != nil {
		return order.Summary{}, err
	}
	return order.Summarize(s.history.Orders()), nil
}

func (s *Session) Cancel(ctx context.Context, id string) (OrderView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx, id); err != nil {
		return OrderView{}, err
	}
	o, err := s.history.Cancel(ctx, id)
	if err != nil {
		logFailure("cancel order", id, err)
		return OrderView{}, err
	}
	s.feed.Refresh(s.history.Orders(), s.now())
	return NewOrderView(o), nil
}

func (s *Session) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx, id); err != nil {
		return err
	}
	if err := s.history.Delete(ctx, id); err != nil {
		logFailure("delete order", id, err)
		return err
	}
	s.feed.Refresh(s.history.Orders(), s.now())
	return nil
}

// logFailure keeps Error for remote failures; rejected preconditions are
// ordinary customer-facing outcomes.
func logFailure(action, id string, err error) {
	switch {
	case errors.Is(err, remote.ErrRemote):
		logger.Error(action+" failed", zap.String("order", id), zap.Error(err))
	case errors.Is(err, order.ErrNotCancelled), errors.Is(err, order.ErrTerminal),
		errors.Is(err, order.ErrInvalidStatus), errors.Is(err, order.ErrNotFound):
		logger.Warn(action+" rejected", zap.String("order", id), zap.Error(err))
	default:
		logger.Error(action+" failed", zap.String("order", id), zap.Error(err))
	}
}

// Warranties evaluates the server's warranty records against the freshly loaded
// order list. Records of orders that are not Delivered are dropped; when the
// server returns nothing, the records are projected from the delivered orders.
func (s *Session) Warranties(ctx context.Context) ([]warranty.View, error) {
	records, err := s.remote.FetchWarrantyRecords(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	err = s.refresh(ctx)
	orders := s.history.Orders()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		records = warranty.FromOrders(orders)
	} else {
		records = warranty.Eligible(records, orders)
	}
	return warranty.EvaluateAll(records, s.now()), nil
}

// Notifications rederives the feed from the full order list on every call.
// Read flags survive the reload.
func (s *Session) Notifications(ctx context.Context) ([]notify.Notification, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.refresh(ctx); err != nil {
		return nil, 0, err
	}
	return s.feed.Items(), s.feed.Unread(), nil
}

func (s *Session) MarkAsRead(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feed.MarkAsRead(id)
	return s.feed.Unread()
}

func (s *Session) MarkAllAsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feed.MarkAllAsRead()
}

func NewOrderView(o order.Order) OrderView {
	v := OrderView{
		Order:       o,
		StatusLabel: o.Status.Label(),
		Amount:      order.ResolveTotal(o).StringFixed(0),
		Lines:       make([]LineView, 0, len(o.Items)),
	}
	for _, it := range o.Items {
		v.Lines = append(v.Lines, LineView{
			Name:       it.Name(),
			Quantity:   it.Qty(),
			Headphone:  product.IsHeadphoneLike(it.Product),
			Attributes: it.Attributes(),
		})
	}
	return v
}
