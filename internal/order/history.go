package order

import "context"

// History is the transient copy of the customer's orders held for one view.
// Every Load overwrites it; there is no merge with previous contents.
type History struct {
	orders  []Order
	machine *Machine
	remote  Remote
}

func NewHistory(remote Remote) *History {
	return &History{remote: remote, machine: NewMachine(remote)}
}

func (h *History) Load(ctx context.Context) error {
	orders, err := h.remote.FetchOrders(ctx)
	if err != nil {
		return err
	}
	h.Replace(orders)
	return nil
}

func (h *History) Replace(orders []Order) {
	h.orders = append([]Order(nil), orders...)
}

// Orders returns a copy of the held orders.
func (h *History) Orders() []Order {
	return append([]Order(nil), h.orders...)
}

func (h *History) Find(id string) (Order, bool) {
	for _, o := range h.orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

func (h *History) Cancel(ctx context.Context, id string) (Order, error) {
	i := h.index(id)
	if i < 0 {
		return Order{}, ErrNotFound
	}
	out, err := h.machine.Cancel(ctx, h.orders[i])
	if err != nil {
		return h.orders[i], err
	}
	h.orders[i] = out
	return out, nil
}

func (h *History) Delete(ctx context.Context, id string) error {
	i := h.index(id)
	if i < 0 {
		return ErrNotFound
	}
	if err := h.machine.Delete(ctx, h.orders[i]); err != nil {
		return err
	}
	h.orders = append(h.orders[:i], h.orders[i+1:]...)
	return nil
}

func (h *History) index(id string) int {
	for i, o := range h.orders {
		if o.ID == id {
			return i
		}
	}
	return -1
}
