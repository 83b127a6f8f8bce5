package order

import "errors"

var (
	ErrNotFound      = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid order status")
	ErrNotCancelled  = errors.New("cannot delete non-cancelled order")
	ErrTerminal      = errors.New("order can no longer be cancelled")
)
