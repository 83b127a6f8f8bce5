package order

import (
	"context"
	"errors"
	"time"
)

var errBoom = errors.New("boom")

// fakeRemote records calls and can be told to fail.
type fakeRemote struct {
	orders        []Order
	statusCalls   []string
	deleteCalls   []string
	failStatus    bool
	failDelete    bool
	updatedAtStub time.Time
}

func (f *fakeRemote) FetchOrders(ctx context.Context) ([]Order, error) {
	return append([]Order(nil), f.orders...), nil
}

func (f *fakeRemote) RequestStatusChange(ctx context.Context, id string, status Status) (*Order, error) {
	f.statusCalls = append(f.statusCalls, id)
	if f.failStatus {
		return nil, errBoom
	}
	return &Order{ID: id, Status: status, UpdatedAt: f.updatedAtStub}, nil
}

func (f *fakeRemote) RequestDeletion(ctx context.Context, id string) error {
	f.deleteCalls = append(f.deleteCalls, id)
	if f.failDelete {
		return errBoom
	}
	return nil
}

func intp(v int) *int { return &v }
