package domain

import (
	"errors"
	"testing"
)

func TestInvalidRequestError(t *testing.T) {
	t.Run("Error message joins all violations", func(t *testing.T) {
		err := NewInvalidRequestError("Page number cannot be negative", "Page size must be at least 1")
		expected := "invalid request: Page number cannot be negative, Page size must be at least 1"
		if err.Error() != expected {
			t.Errorf("expected %q, got %q", expected, err.Error())
		}
	})

	t.Run("errors.Is detection", func(t *testing.T) {
		err := NewInvalidRequestError("Quantity must be at least 1")
		target := &InvalidRequestError{}
		if !errors.Is(err, target) {
			t.Error("errors.Is should detect InvalidRequestError")
		}
	})

	t.Run("errors.As conversion preserves violations", func(t *testing.T) {
		err := NewInvalidRequestError("a", "b")
		var ire *InvalidRequestError
		if !errors.As(err, &ire) {
			t.Fatal("errors.As should convert to InvalidRequestError")
		}
		if len(ire.Violations) != 2 {
			t.Errorf("expected 2 violations, got %d", len(ire.Violations))
		}
	})

	t.Run("IsInvalidRequestError helper", func(t *testing.T) {
		err := NewInvalidRequestError("x")
		if !IsInvalidRequestError(err) {
			t.Error("IsInvalidRequestError should return true")
		}
	})
}

func TestInventoryEmptyError(t *testing.T) {
	t.Run("Error message formatting", func(t *testing.T) {
		err := NewInventoryEmptyError()
		expected := "No items found in the inventory"
		if err.Error() != expected {
			t.Errorf("expected %q, got %q", expected, err.Error())
		}
	})

	t.Run("errors.Is detection", func(t *testing.T) {
		if !errors.Is(NewInventoryEmptyError(), &InventoryEmptyError{}) {
			t.Error("errors.Is should detect InventoryEmptyError")
		}
	})

	t.Run("IsInventoryEmptyError helper", func(t *testing.T) {
		if !IsInventoryEmptyError(NewInventoryEmptyError()) {
			t.Error("IsInventoryEmptyError should return true")
		}
	})
}

func TestItemNotFoundError(t *testing.T) {
	t.Run("Error message formatting", func(t *testing.T) {
		err := NewItemNotFoundError()
		expected := "No items found matching the search criteria"
		if err.Error() != expected {
			t.Errorf("expected %q, got %q", expected, err.Error())
		}
	})

	t.Run("errors.Is detection", func(t *testing.T) {
		if !errors.Is(NewItemNotFoundError(), &ItemNotFoundError{}) {
			t.Error("errors.Is should detect ItemNotFoundError")
		}
	})

	t.Run("IsItemNotFoundError helper", func(t *testing.T) {
		if !IsItemNotFoundError(NewItemNotFoundError()) {
			t.Error("IsItemNotFoundError should return true")
		}
	})
}

func TestInsufficientInventoryError(t *testing.T) {
	t.Run("Error message states current and requested", func(t *testing.T) {
		err := NewInsufficientInventoryError(3, 10)
		expected := "Not enough inventory. Current: 3, Requested: 10"
		if err.Error() != expected {
			t.Errorf("expected %q, got %q", expected, err.Error())
		}
	})

	t.Run("errors.As conversion", func(t *testing.T) {
		err := NewInsufficientInventoryError(1, 2)
		var iie *InsufficientInventoryError
		if !errors.As(err, &iie) {
			t.Fatal("errors.As should convert to InsufficientInventoryError")
		}
		if iie.Current != 1 || iie.Requested != 2 {
			t.Errorf("error fields not correctly preserved")
		}
	})

	t.Run("IsInsufficientInventoryError helper", func(t *testing.T) {
		if !IsInsufficientInventoryError(NewInsufficientInventoryError(0, 5)) {
			t.Error("IsInsufficientInventoryError should return true")
		}
	})
}

func TestErrorTypeDiscrimination(t *testing.T) {
	t.Run("Different error types are not confused", func(t *testing.T) {
		ireErr := NewInvalidRequestError("bad")
		ieeErr := NewInventoryEmptyError()
		infErr := NewItemNotFoundError()
		iieErr := NewInsufficientInventoryError(1, 2)

		if IsInventoryEmptyError(ireErr) || IsItemNotFoundError(ireErr) || IsInsufficientInventoryError(ireErr) {
			t.Error("InvalidRequestError misidentified as another kind")
		}
		if IsInvalidRequestError(ieeErr) || IsItemNotFoundError(ieeErr) || IsInsufficientInventoryError(ieeErr) {
			t.Error("InventoryEmptyError misidentified as another kind")
		}
		if IsInvalidRequestError(infErr) || IsInventoryEmptyError(infErr) || IsInsufficientInventoryError(infErr) {
			t.Error("ItemNotFoundError misidentified as another kind")
		}
		if IsInvalidRequestError(iieErr) || IsInventoryEmptyError(iieErr) || IsItemNotFoundError(iieErr) {
			t.Error("InsufficientInventoryError misidentified as another kind")
		}
	})
}
