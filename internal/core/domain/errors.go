package domain

import (
	"errors"
	"fmt"
)

// Error kinds returned by the core. Every error produced by this package
// matches exactly one of them with errors.Is.
var (
	ErrValidation = errors.New("validation error")
	ErrInventory  = errors.New("inventory error")
	ErrPromotion  = errors.New("promotion error")
)

// StockError reports a purchase that asked for more units than are available.
type StockError struct {
	Product   string
	Requested int
	Available int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("%d items requested, but %d units of %s are available for purchase",
		e.Requested, e.Available, e.Product)
}

func (e *StockError) Unwrap() error {
	return ErrInventory
}

func validationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

func inventoryErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInventory}, args...)...)
}

func promotionErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrPromotion}, args...)...)
}

// InventoryErrorf builds an inventory error for callers outside the package,
// such as the store, that report availability problems.
func InventoryErrorf(format string, args ...any) error {
	return inventoryErrorf(format, args...)
}

// ValidationErrorf builds a validation error for callers outside the package.
func ValidationErrorf(format string, args ...any) error {
	return validationErrorf(format, args...)
}
