package application

import (
	"errors"
	"fmt"

	"github.com/m4rkovic/succulent-shop/internal/domains/orders/domain"
)

var (
	// ErrInvalidOrderData signals the creation payload violated an invariant.
	ErrInvalidOrderData = errors.New("invalid order data")
	// ErrInvalidStatus signals a status code outside the closed set.
	ErrInvalidStatus = errors.New("invalid order status")
	// ErrInvalidTransition signals an attempt to leave a terminal status.
	ErrInvalidTransition = errors.New("invalid order status transition")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, domain.ErrInvalidUserID), errors.Is(err, domain.ErrNoProducts):
		return fmt.Errorf("%w: %w", ErrInvalidOrderData, err)
	case errors.Is(err, domain.ErrTerminalStatus):
		return fmt.Errorf("%w: %w", ErrInvalidTransition, err)
	case errors.Is(err, domain.ErrUnknownStatus):
		return fmt.Errorf("%w: %w", ErrInvalidStatus, err)
	}
	return err
}
