// Package domain defines error types for the inventory system.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// InvalidRequestError is returned when request parameters are malformed or
// out of range. Violations holds every independent validation failure, not
// just the first.
type InvalidRequestError struct {
	Violations []string
}

// Error implements the error interface for InvalidRequestError
func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid request: %s", strings.Join(e.Violations, ", "))
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidRequestError) Is(target error) bool {
	_, ok := target.(*InvalidRequestError)
	return ok
}

// InventoryEmptyError is returned when a search runs against an empty
// inventory snapshot, before any filtering.
type InventoryEmptyError struct{}

// Error implements the error interface for InventoryEmptyError
func (e *InventoryEmptyError) Error() string {
	return "No items found in the inventory"
}

// Is allows proper error type checking with errors.Is()
func (e *InventoryEmptyError) Is(target error) bool {
	_, ok := target.(*InventoryEmptyError)
	return ok
}

// ItemNotFoundError is returned when the filtered search result is empty.
type ItemNotFoundError struct{}

// Error implements the error interface for ItemNotFoundError
func (e *ItemNotFoundError) Error() string {
	return "No items found matching the search criteria"
}

// Is allows proper error type checking with errors.Is()
func (e *ItemNotFoundError) Is(target error) bool {
	_, ok := target.(*ItemNotFoundError)
	return ok
}

// InsufficientInventoryError is returned when a removal delta exceeds the
// current stock quantity.
type InsufficientInventoryError struct {
	Current   int
	Requested int
}

// Error implements the error interface for InsufficientInventoryError
func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("Not enough inventory. Current: %d, Requested: %d", e.Current, e.Requested)
}

// Is allows proper error type checking with errors.Is()
func (e *InsufficientInventoryError) Is(target error) bool {
	_, ok := target.(*InsufficientInventoryError)
	return ok
}

// Helper functions for creating errors with context

// NewInvalidRequestError creates a new InvalidRequestError from one or
// more violation messages
func NewInvalidRequestError(violations ...string) error {
	return &InvalidRequestError{Violations: violations}
}

// NewInventoryEmptyError creates a new InventoryEmptyError
func NewInventoryEmptyError() error {
	return &InventoryEmptyError{}
}

// NewItemNotFoundError creates a new ItemNotFoundError
func NewItemNotFoundError() error {
	return &ItemNotFoundError{}
}

// NewInsufficientInventoryError creates a new InsufficientInventoryError
func NewInsufficientInventoryError(current, requested int) error {
	return &InsufficientInventoryError{Current: current, Requested: requested}
}

// Type assertion helpers for use with errors.As()

// IsInvalidRequestError checks if an error is an InvalidRequestError
func IsInvalidRequestError(err error) bool {
	var ire *InvalidRequestError
	return errors.As(err, &ire)
}

// IsInventoryEmptyError checks if an error is an InventoryEmptyError
func IsInventoryEmptyError(err error) bool {
	var iee *InventoryEmptyError
	return errors.As(err, &iee)
}

// IsItemNotFoundError checks if an error is an ItemNotFoundError
func IsItemNotFoundError(err error) bool {
	var inf *ItemNotFoundError
	return errors.As(err, &inf)
}

// IsInsufficientInventoryError checks if an error is an InsufficientInventoryError
func IsInsufficientInventoryError(err error) bool {
	var iie *InsufficientInventoryError
	return errors.As(err, &iie)
}
