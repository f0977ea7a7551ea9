// Package domain defines core business types and interfaces.
package domain

import "context"

// InventoryStatus is the availability state derived from a stock quantity.
type InventoryStatus string

const (
	StatusAvailable  InventoryStatus = "AVAILABLE"
	StatusOutOfStock InventoryStatus = "OUT_OF_STOCK"
)

// StatusForQuantity derives the availability status from a quantity.
// It is the only place status is computed; StockRecord.Status must never
// be set by any other path.
func StatusForQuantity(quantity int) InventoryStatus {
	if quantity > 0 {
		return StatusAvailable
	}
	return StatusOutOfStock
}

// Brand is a named brand, upserted by exact name.
type Brand struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Category is a named category, upserted by exact name.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Item is a sellable good identified by its (brand, category) pair.
// Price is nullable; it is overwritten in place when a mutation supplies
// a different value.
type Item struct {
	ID         string   `json:"id"`
	BrandID    string   `json:"brandId"`
	CategoryID string   `json:"categoryId"`
	Price      *float64 `json:"price"`
}

// StockRecord holds the quantity and derived status for one Item.
type StockRecord struct {
	ItemID   string          `json:"itemId"`
	Quantity int             `json:"quantity"`
	Status   InventoryStatus `json:"status"`
}

// StockEntry is a denormalized snapshot row joining a StockRecord with
// its Item, brand and category names. Snapshot order is item creation
// order.
type StockEntry struct {
	Brand    string          `json:"brand"`
	Category string          `json:"category"`
	Price    *float64        `json:"price"`
	Quantity int             `json:"quantity"`
	Status   InventoryStatus `json:"status"`
}

// InventoryView is the row shape returned by mutation and list operations.
type InventoryView struct {
	Brand    string          `json:"brand"`
	Category string          `json:"category"`
	Quantity int             `json:"quantity"`
	Status   InventoryStatus `json:"status"`
}

// InventoryStore defines the storage interface for the inventory engine.
// Upserts are idempotent and keyed by exact name; concurrent upserts for
// the same name must resolve to a single surviving record.
type InventoryStore interface {
	UpsertBrand(ctx context.Context, name string) (Brand, error)
	UpsertCategory(ctx context.Context, name string) (Category, error)
	FindItem(ctx context.Context, categoryID, brandID string) (Item, bool, error)
	SaveItem(ctx context.Context, item Item) (Item, error)
	FindStockRecord(ctx context.Context, itemID string) (StockRecord, bool, error)
	SaveStockRecord(ctx context.Context, record StockRecord) (StockRecord, error)
	StockSnapshot(ctx context.Context) ([]StockEntry, error)
}
