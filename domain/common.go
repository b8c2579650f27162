package domain

import (
	"errors"
	"fmt"
)

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"

	// Error kinds. Every domain failure wraps exactly one of these so the API
	// layer can map it to a status code with errors.Is.
	ErrValidation   = errors.New("validation error")
	ErrBusinessRule = errors.New("business rule violation")
	ErrNotFound     = errors.New("not found")
)

// InsufficientStockError is raised by InventoryItem.Use when the requested
// amount exceeds what is on hand.
type InsufficientStockError struct {
	Name      string
	Available float64
	Requested float64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock of %q: available %g, requested %g", e.Name, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrBusinessRule
}
