package order

import (
	"context"
	"fmt"
)

// Remote is the order API the storefront talks to. The server owns order state.
type Remote interface {
	FetchOrders(ctx context.Context) ([]Order, error)
	RequestStatusChange(ctx context.Context, id string, status Status) (*Order, error)
	RequestDeletion(ctx context.Context, id string) error
}

// Machine applies the two customer-triggered transitions. Local state changes
// only after the remote call succeeds.
type Machine struct {
	remote Remote
}

func NewMachine(remote Remote) *Machine {
	return &Machine{remote: remote}
}

// Cancel moves o to Cancelled. Cancelling an already cancelled order is a no-op
// and does not reach the server.
func (m *Machine) Cancel(ctx context.Context, o Order) (Order, error) {
	if !o.Status.Valid() {
		return o, fmt.Errorf("%w: %d", ErrInvalidStatus, int(o.Status))
	}
	if o.Status == StatusCancelled {
		return o, nil
	}
	if o.Status == StatusDelivered {
		return o, ErrTerminal
	}

	updated, err := m.remote.RequestStatusChange(ctx, o.ID, StatusCancelled)
	if err != nil {
		return o, fmt.Errorf("cancel order %s: %w", o.ID, err)
	}
	out := o
	out.Status = StatusCancelled
	if updated != nil && !updated.UpdatedAt.IsZero() {
		out.UpdatedAt = updated.UpdatedAt
	}
	return out, nil
}

// Delete removes a cancelled order on the server. Any other status is rejected
// locally with ErrNotCancelled.
func (m *Machine) Delete(ctx context.Context, o Order) error {
	if o.Status != StatusCancelled {
		return ErrNotCancelled
	}
	if err := m.remote.RequestDeletion(ctx, o.ID); err != nil {
		return fmt.Errorf("delete order %s: %w", o.ID, err)
	}
	return nil
}
