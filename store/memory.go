// Package store provides storage implementations for the inventory system.
package store

import (
	"context"
	"sync"

	"groceryapp/domain"
	"groceryapp/util"
)

type itemKey struct {
	categoryID string
	brandID    string
}

// InMemoryStore is a thread-safe in-memory implementation of
// domain.InventoryStore. Upserts are idempotent under concurrency: the
// name is re-checked under the write lock, so a racing second upsert
// reuses the first record.
type InMemoryStore struct {
	mu             sync.RWMutex
	brandsByName   map[string]domain.Brand
	brandNames     map[string]string // brand ID -> name
	categsByName   map[string]domain.Category
	categNames     map[string]string // category ID -> name
	items          map[string]domain.Item
	itemIDByKey    map[itemKey]string
	stock          map[string]domain.StockRecord
	itemOrder      []string // item IDs in creation order, drives snapshot order
}

// NewInMemoryStore constructs a new InMemoryStore
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		brandsByName: make(map[string]domain.Brand),
		brandNames:   make(map[string]string),
		categsByName: make(map[string]domain.Category),
		categNames:   make(map[string]string),
		items:        make(map[string]domain.Item),
		itemIDByKey:  make(map[itemKey]string),
		stock:        make(map[string]domain.StockRecord),
	}
}

// compile-time assertion that InMemoryStore implements domain.InventoryStore
var _ domain.InventoryStore = (*InMemoryStore)(nil)

func (s *InMemoryStore) UpsertBrand(ctx context.Context, name string) (domain.Brand, error) {
	if err := ctx.Err(); err != nil {
		return domain.Brand{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if b, ok := s.brandsByName[name]; ok {
		return b, nil
	}
	b := domain.Brand{ID: util.NewID(), Name: name}
	s.brandsByName[name] = b
	s.brandNames[b.ID] = name
	return b, nil
}

func (s *InMemoryStore) UpsertCategory(ctx context.Context, name string) (domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return domain.Category{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.categsByName[name]; ok {
		return c, nil
	}
	c := domain.Category{ID: util.NewID(), Name: name}
	s.categsByName[name] = c
	s.categNames[c.ID] = name
	return c, nil
}

func (s *InMemoryStore) FindItem(ctx context.Context, categoryID, brandID string) (domain.Item, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Item{}, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.itemIDByKey[itemKey{categoryID: categoryID, brandID: brandID}]
	if !ok {
		return domain.Item{}, false, nil
	}
	return s.items[id], true, nil
}

func (s *InMemoryStore) SaveItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return domain.Item{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := itemKey{categoryID: item.CategoryID, brandID: item.BrandID}
	if item.ID == "" {
		// another writer may have created the item between the caller's
		// lookup and this save; reuse the existing record
		if existing, ok := s.itemIDByKey[key]; ok {
			saved := s.items[existing]
			if item.Price != nil {
				saved.Price = item.Price
			}
			s.items[existing] = saved
			return saved, nil
		}
		item.ID = util.NewID()
		s.itemOrder = append(s.itemOrder, item.ID)
	} else if _, ok := s.items[item.ID]; !ok {
		s.itemOrder = append(s.itemOrder, item.ID)
	}
	s.items[item.ID] = item
	s.itemIDByKey[key] = item.ID
	return item, nil
}

func (s *InMemoryStore) FindStockRecord(ctx context.Context, itemID string) (domain.StockRecord, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.StockRecord{}, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.stock[itemID]
	return rec, ok, nil
}

func (s *InMemoryStore) SaveStockRecord(ctx context.Context, record domain.StockRecord) (domain.StockRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.StockRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stock[record.ItemID] = record
	return record, nil
}

func (s *InMemoryStore) StockSnapshot(ctx context.Context) ([]domain.StockEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.StockEntry, 0, len(s.stock))
	for _, itemID := range s.itemOrder {
		rec, ok := s.stock[itemID]
		if !ok {
			// item exists but has never been stocked
			continue
		}
		item := s.items[itemID]
		out = append(out, domain.StockEntry{
			Brand:    s.brandNames[item.BrandID],
			Category: s.categNames[item.CategoryID],
			Price:    item.Price,
			Quantity: rec.Quantity,
			Status:   rec.Status,
		})
	}
	return out, nil
}
