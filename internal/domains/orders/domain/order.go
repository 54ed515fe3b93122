package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Status enumerates the closed set of order states.
type Status string

const (
	StatusOrdered    Status = "ORDERED"
	StatusProcessing Status = "PROCESSING"
	StatusShipped    Status = "SHIPPED"
	StatusDelivered  Status = "DELIVERED"
	StatusCanceled   Status = "CANCELED"
)

var (
	ErrInvalidUserID  = errors.New("user id must be greater than zero")
	ErrNoProducts     = errors.New("order must reference at least one product")
	ErrUnknownStatus  = errors.New("unknown order status")
	ErrTerminalStatus = errors.New("order is in a terminal status")
)

// ParseStatus resolves a free-form status code against the closed set.
// Matching is case-insensitive; unknown codes fail with ErrUnknownStatus.
func ParseStatus(raw string) (Status, error) {
	switch Status(strings.ToUpper(strings.TrimSpace(raw))) {
	case StatusOrdered:
		return StatusOrdered, nil
	case StatusProcessing:
		return StatusProcessing, nil
	case StatusShipped:
		return StatusShipped, nil
	case StatusDelivered:
		return StatusDelivered, nil
	case StatusCanceled:
		return StatusCanceled, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
}

// Terminal reports whether no further transitions are permitted out of s.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCanceled
}

// Order models a customer purchase aggregate. Line items are product
// references only; quantities are not tracked.
type Order struct {
	ID         int64
	UserID     int64
	ProductIDs []int64
	Reference  string
	Status     Status
	CreatedAt  time.Time
}

// NewOrder validates creation input and constructs an Order in the initial
// ORDERED status. The identifier is assigned by the persistence adapter.
func NewOrder(userID int64, productIDs []int64) (*Order, error) {
	o := &Order{
		UserID:     userID,
		ProductIDs: append([]int64{}, productIDs...),
		Status:     StatusOrdered,
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate enforces the creation invariants.
func (o *Order) Validate() error {
	if o.UserID <= 0 {
		return ErrInvalidUserID
	}
	if len(o.ProductIDs) == 0 {
		return ErrNoProducts
	}
	if _, err := ParseStatus(string(o.Status)); err != nil {
		return err
	}
	return nil
}

// TransitionTo moves the order to the given status. Transitions out of a
// terminal status are rejected; any non-terminal order accepts any member of
// the closed set.
func (o *Order) TransitionTo(status Status) error {
	if _, err := ParseStatus(string(status)); err != nil {
		return err
	}
	if o.Status.Terminal() && status != o.Status {
		return fmt.Errorf("%w: cannot move from %s to %s", ErrTerminalStatus, o.Status, status)
	}
	o.Status = status
	return nil
}
