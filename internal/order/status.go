package order

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Status is the integer order status code used by the order API.
type Status int

const (
	StatusPending   Status = 0
	StatusConfirmed Status = 1
	StatusShipping  Status = 2
	StatusDelivered Status = 3
	StatusCancelled Status = 4
)

func (s Status) Valid() bool {
	return s >= StatusPending && s <= StatusCancelled
}

// IsTerminal reports whether no user action may move the order out of s.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusConfirmed:
		return "confirmed"
	case StatusShipping:
		return "shipping"
	case StatusDelivered:
		return "delivered"
	case StatusCancelled:
		return "cancelled"
	}
	return "Status(" + strconv.Itoa(int(s)) + ")"
}

// Label is the customer-facing status text.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Chờ xác nhận"
	case StatusConfirmed:
		return "Đã xác nhận"
	case StatusShipping:
		return "Đang giao"
	case StatusDelivered:
		return "Đã giao"
	case StatusCancelled:
		return "Đã hủy"
	}
	return "Không xác định"
}

func ParseStatus(v int) (Status, error) {
	s := Status(v)
	if !s.Valid() {
		return s, fmt.Errorf("%w: %d", ErrInvalidStatus, v)
	}
	return s, nil
}

// UnmarshalJSON rejects codes outside the known set so an unknown status never
// reaches the state machine from the wire.
func (s *Status) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, data)
	}
	parsed, err := ParseStatus(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
