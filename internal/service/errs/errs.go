package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyOrder is returned when a build request contains no line requests.
	ErrEmptyOrder = errors.New("order must contain at least one item")

	// ErrOrderNotFound is returned when the referenced order does not exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrMenuItemNotFound is returned when the referenced menu item does not exist.
	ErrMenuItemNotFound = errors.New("menu item not found")

	// ErrUserNotFound is returned when the order owner cannot be resolved.
	ErrUserNotFound = errors.New("user not found")

	// ErrForbidden is returned when the caller's role does not permit the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidStatus is returned when a requested status is not one of the
	// enumerated order statuses.
	ErrInvalidStatus = errors.New("invalid status")
)

// LineItemNotFoundError identifies the offending menu item id of a build
// request. The whole build fails; no partial order is created.
type LineItemNotFoundError struct {
	MenuItemID int64
}

func (e *LineItemNotFoundError) Error() string {
	return fmt.Sprintf("menu item with id %d not found", e.MenuItemID)
}

// InvalidQuantityError reports a non-positive quantity in a line request.
type InvalidQuantityError struct {
	Index    int
	Quantity int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("items[%d]: quantity %d must be a positive integer", e.Index, e.Quantity)
}

// InvalidTransitionError reports a status transition the machine does not
// permit, including any mutation of a terminal order.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

// InvalidMenuItemError reports a menu item payload that failed validation.
type InvalidMenuItemError struct {
	Field   string
	Message string
}

func (e *InvalidMenuItemError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
