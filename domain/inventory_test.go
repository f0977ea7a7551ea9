package domain

import (
	"context"
	"testing"
)

func TestStatusForQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		want     InventoryStatus
	}{
		{"zero quantity", 0, StatusOutOfStock},
		{"positive quantity", 1, StatusAvailable},
		{"large quantity", 10000, StatusAvailable},
		{"negative quantity", -1, StatusOutOfStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusForQuantity(tt.quantity); got != tt.want {
				t.Fatalf("StatusForQuantity(%d) = %s, want %s", tt.quantity, got, tt.want)
			}
		})
	}
}

func TestSearchQueryZeroValue(t *testing.T) {
	var q SearchQuery

	if q.Brands != nil || q.Categories != nil {
		t.Fatalf("expected nil filter lists")
	}
	if q.MinPrice != nil || q.MaxPrice != nil {
		t.Fatalf("expected nil price bounds")
	}
	if q.SortBy != "" || q.SortDirection != "" {
		t.Fatalf("expected empty sort fields")
	}
}

// ---- Interface compile-time test ----

// mockInventoryStore ensures the InventoryStore interface stays stable
type mockInventoryStore struct{}

func (m *mockInventoryStore) UpsertBrand(ctx context.Context, name string) (Brand, error) {
	return Brand{}, nil
}

func (m *mockInventoryStore) UpsertCategory(ctx context.Context, name string) (Category, error) {
	return Category{}, nil
}

func (m *mockInventoryStore) FindItem(ctx context.Context, categoryID, brandID string) (Item, bool, error) {
	return Item{}, false, nil
}

func (m *mockInventoryStore) SaveItem(ctx context.Context, item Item) (Item, error) {
	return Item{}, nil
}

func (m *mockInventoryStore) FindStockRecord(ctx context.Context, itemID string) (StockRecord, bool, error) {
	return StockRecord{}, false, nil
}

func (m *mockInventoryStore) SaveStockRecord(ctx context.Context, record StockRecord) (StockRecord, error) {
	return StockRecord{}, nil
}

func (m *mockInventoryStore) StockSnapshot(ctx context.Context) ([]StockEntry, error) {
	return nil, nil
}

// compile-time assertion
var _ InventoryStore = (*mockInventoryStore)(nil)
