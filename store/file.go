package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"groceryapp/domain"
	"groceryapp/util"
)

// fileState is the on-disk JSON shape. Items are kept in creation order
// so the snapshot order survives a reload.
type fileState struct {
	Brands     []domain.Brand       `json:"brands"`
	Categories []domain.Category    `json:"categories"`
	Items      []domain.Item        `json:"items"`
	Stock      []domain.StockRecord `json:"stock"`
}

// FileStore is a JSON file-backed implementation of domain.InventoryStore
type FileStore struct {
	mu           sync.RWMutex
	brandsByName map[string]domain.Brand
	brandNames   map[string]string
	categsByName map[string]domain.Category
	categNames   map[string]string
	items        map[string]domain.Item
	itemIDByKey  map[itemKey]string
	stock        map[string]domain.StockRecord
	itemOrder    []string
	path         string
}

// compile-time assertion
var _ domain.InventoryStore = (*FileStore)(nil)

// NewFileStore constructs a FileStore at the given path. If the file exists it will be loaded.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		brandsByName: make(map[string]domain.Brand),
		brandNames:   make(map[string]string),
		categsByName: make(map[string]domain.Category),
		categNames:   make(map[string]string),
		items:        make(map[string]domain.Item),
		itemIDByKey:  make(map[itemKey]string),
		stock:        make(map[string]domain.StockRecord),
		path:         path,
	}
	if err := s.loadFromFile(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) loadFromFile() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			// no file yet; that's fine
			return nil
		}
		return err
	}
	if len(b) == 0 {
		return nil
	}
	var state fileState
	if err := json.Unmarshal(b, &state); err != nil {
		return err
	}
	for _, br := range state.Brands {
		s.brandsByName[br.Name] = br
		s.brandNames[br.ID] = br.Name
	}
	for _, c := range state.Categories {
		s.categsByName[c.Name] = c
		s.categNames[c.ID] = c.Name
	}
	for _, it := range state.Items {
		s.items[it.ID] = it
		s.itemIDByKey[itemKey{categoryID: it.CategoryID, brandID: it.BrandID}] = it.ID
		s.itemOrder = append(s.itemOrder, it.ID)
	}
	for _, rec := range state.Stock {
		s.stock[rec.ItemID] = rec
	}
	return nil
}

// saveToFile writes the full state atomically. Callers must hold the
// write lock.
func (s *FileStore) saveToFile() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	state := fileState{
		Brands:     make([]domain.Brand, 0, len(s.brandsByName)),
		Categories: make([]domain.Category, 0, len(s.categsByName)),
		Items:      make([]domain.Item, 0, len(s.itemOrder)),
		Stock:      make([]domain.StockRecord, 0, len(s.stock)),
	}
	for _, br := range s.brandsByName {
		state.Brands = append(state.Brands, br)
	}
	for _, c := range s.categsByName {
		state.Categories = append(state.Categories, c)
	}
	for _, id := range s.itemOrder {
		state.Items = append(state.Items, s.items[id])
		if rec, ok := s.stock[id]; ok {
			state.Stock = append(state.Stock, rec)
		}
	}
	b, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStore) UpsertBrand(ctx context.Context, name string) (domain.Brand, error) {
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
	if err := s.saveToFile(); err != nil {
		return domain.Brand{}, err
	}
	return b, nil
}

func (s *FileStore) UpsertCategory(ctx context.Context, name string) (domain.Category, error) {
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
	if err := s.saveToFile(); err != nil {
		return domain.Category{}, err
	}
	return c, nil
}

func (s *FileStore) FindItem(ctx context.Context, categoryID, brandID string) (domain.Item, bool, error) {
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

func (s *FileStore) SaveItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return domain.Item{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := itemKey{categoryID: item.CategoryID, brandID: item.BrandID}
	if item.ID == "" {
		if existing, ok := s.itemIDByKey[key]; ok {
			saved := s.items[existing]
			if item.Price != nil {
				saved.Price = item.Price
			}
			s.items[existing] = saved
			if err := s.saveToFile(); err != nil {
				return domain.Item{}, err
			}
			return saved, nil
		}
		item.ID = util.NewID()
		s.itemOrder = append(s.itemOrder, item.ID)
	} else if _, ok := s.items[item.ID]; !ok {
		s.itemOrder = append(s.itemOrder, item.ID)
	}
	s.items[item.ID] = item
	s.itemIDByKey[key] = item.ID
	if err := s.saveToFile(); err != nil {
		return domain.Item{}, err
	}
	return item, nil
}

func (s *FileStore) FindStockRecord(ctx context.Context, itemID string) (domain.StockRecord, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.StockRecord{}, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.stock[itemID]
	return rec, ok, nil
}

func (s *FileStore) SaveStockRecord(ctx context.Context, record domain.StockRecord) (domain.StockRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.StockRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stock[record.ItemID] = record
	if err := s.saveToFile(); err != nil {
		return domain.StockRecord{}, err
	}
	return record, nil
}

func (s *FileStore) StockSnapshot(ctx context.Context) ([]domain.StockEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.StockEntry, 0, len(s.stock))
	for _, itemID := range s.itemOrder {
		rec, ok := s.stock[itemID]
		if !ok {
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
