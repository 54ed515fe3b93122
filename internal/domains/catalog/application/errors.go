package application

import (
	"errors"
	"fmt"

	"github.com/m4rkovic/succulent-shop/internal/domains/catalog/domain"
)

// ErrInvalidInput signals the request violated a catalog invariant.
var ErrInvalidInput = errors.New("invalid product input")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyName) ||
		errors.Is(err, domain.ErrInvalidPrice) ||
		errors.Is(err, domain.ErrUnknownEnumValue) ||
		errors.Is(err, domain.ErrVariantConflict) ||
		errors.Is(err, domain.ErrIncompletePot) ||
		errors.Is(err, domain.ErrNotAPot) ||
		errors.Is(err, domain.ErrNotATool) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
