package common

import (
	"errors"
)

// Business errors raised by the order and inventory procedures. Handlers
// translate these to 4xx responses; anything else is a server fault.
var (
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrInsufficientStock      = errors.New("insufficient stock")
	ErrMissingInventoryRecord = errors.New("no inventory record")
	ErrEmptyOrder             = errors.New("an order must contain at least one line item")
	ErrInvalidStatus          = errors.New("invalid order status")
	ErrReservationConflict    = errors.New("table already reserved for the selected time range")
)

func IsBusinessError(err error) bool {
	for _, target := range []error{
		ErrInvalidAmount,
		ErrInsufficientStock,
		ErrMissingInventoryRecord,
		ErrEmptyOrder,
		ErrInvalidStatus,
		ErrReservationConflict,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
