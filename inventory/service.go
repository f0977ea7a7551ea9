// Package inventory implements the mutation path: catalog resolution and
// quantity-delta application with per-item serialization.
package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"groceryapp/domain"
)

// AddRequest carries one additive inventory mutation. Price is optional;
// when present it overwrites the item's stored price.
type AddRequest struct {
	Brand    string   `json:"brand"`
	Category string   `json:"category"`
	Price    *float64 `json:"price"`
	Quantity int      `json:"quantity"`
}

// RemoveRequest carries one subtractive inventory mutation.
type RemoveRequest struct {
	Brand    string `json:"brand"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

// Service reconciles mutation requests into persisted stock records. The
// read-modify-write on a single stock record is serialized through a
// keyed lock table so concurrent mutations on the same item cannot lose
// updates; mutations on different items proceed in parallel.
type Service struct {
	store domain.InventoryStore

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// NewService constructs a Service backed by the given store
func NewService(store domain.InventoryStore) *Service {
	return &Service{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

// AddInventory validates the request, resolves the item (creating brand,
// category and item records as needed) and applies the quantity as an
// additive delta.
func (s *Service) AddInventory(ctx context.Context, req AddRequest) (domain.InventoryView, error) {
	if violations := validateAddRequest(req); len(violations) > 0 {
		return domain.InventoryView{}, domain.NewInvalidRequestError(violations...)
	}

	item, err := s.resolveItem(ctx, req.Brand, req.Category, req.Price)
	if err != nil {
		return domain.InventoryView{}, err
	}

	start := time.Now()
	rec, err := s.applyDelta(ctx, item, req.Quantity, true)
	if err != nil {
		slog.Error("add inventory failed", "brand", req.Brand, "category", req.Category, "error", err)
		return domain.InventoryView{}, err
	}
	slog.Info("inventory added",
		"brand", req.Brand,
		"category", req.Category,
		"quantity", rec.Quantity,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return domain.InventoryView{
		Brand:    req.Brand,
		Category: req.Category,
		Quantity: rec.Quantity,
		Status:   rec.Status,
	}, nil
}

// RemoveInventory applies the quantity as a subtractive delta. The item
// must already exist; removing from an unknown item fails with
// InsufficientInventoryError since its synthesized record holds zero.
func (s *Service) RemoveInventory(ctx context.Context, req RemoveRequest) (domain.InventoryView, error) {
	if violations := validateRemoveRequest(req); len(violations) > 0 {
		return domain.InventoryView{}, domain.NewInvalidRequestError(violations...)
	}

	item, err := s.resolveItem(ctx, req.Brand, req.Category, nil)
	if err != nil {
		return domain.InventoryView{}, err
	}

	rec, err := s.applyDelta(ctx, item, req.Quantity, false)
	if err != nil {
		return domain.InventoryView{}, err
	}

	return domain.InventoryView{
		Brand:    req.Brand,
		Category: req.Category,
		Quantity: rec.Quantity,
		Status:   rec.Status,
	}, nil
}

// ListInventory returns one view per stocked item, in snapshot order.
func (s *Service) ListInventory(ctx context.Context) ([]domain.InventoryView, error) {
	snapshot, err := s.store.StockSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]domain.InventoryView, 0, len(snapshot))
	for _, entry := range snapshot {
		views = append(views, domain.InventoryView{
			Brand:    entry.Brand,
			Category: entry.Category,
			Quantity: entry.Quantity,
			Status:   entry.Status,
		})
	}
	return views, nil
}

// resolveItem upserts the brand and category by name, then looks up the
// item keyed by (category, brand). A missing item is created with the
// given price; an existing item has its price overwritten when the given
// price is non-nil and differs.
func (s *Service) resolveItem(ctx context.Context, brandName, categoryName string, price *float64) (domain.Item, error) {
	brand, err := s.store.UpsertBrand(ctx, brandName)
	if err != nil {
		return domain.Item{}, err
	}
	category, err := s.store.UpsertCategory(ctx, categoryName)
	if err != nil {
		return domain.Item{}, err
	}

	item, found, err := s.store.FindItem(ctx, category.ID, brand.ID)
	if err != nil {
		return domain.Item{}, err
	}
	if found {
		if price != nil && !samePrice(item.Price, price) {
			item.Price = price
			return s.store.SaveItem(ctx, item)
		}
		return item, nil
	}

	return s.store.SaveItem(ctx, domain.Item{
		BrandID:    brand.ID,
		CategoryID: category.ID,
		Price:      price,
	})
}

// applyDelta performs the read-modify-write on the item's stock record
// under the item's lock. The delta must be positive; a removal larger
// than the current quantity fails without changing state. Status is
// recomputed from the new quantity on every write.
func (s *Service) applyDelta(ctx context.Context, item domain.Item, delta int, isAddition bool) (domain.StockRecord, error) {
	if delta <= 0 {
		if isAddition {
			return domain.StockRecord{}, domain.NewInvalidRequestError("Quantity to add must be greater than zero")
		}
		return domain.StockRecord{}, domain.NewInvalidRequestError("Quantity to remove must be greater than zero")
	}

	mu := s.lockFor(item.ID)
	mu.Lock()
	defer mu.Unlock()

	rec, found, err := s.store.FindStockRecord(ctx, item.ID)
	if err != nil {
		return domain.StockRecord{}, err
	}
	if !found {
		rec = domain.StockRecord{
			ItemID:   item.ID,
			Quantity: 0,
			Status:   domain.StatusOutOfStock,
		}
	}

	if isAddition {
		rec.Quantity += delta
	} else {
		if rec.Quantity < delta {
			return domain.StockRecord{}, domain.NewInsufficientInventoryError(rec.Quantity, delta)
		}
		rec.Quantity -= delta
	}
	rec.Status = domain.StatusForQuantity(rec.Quantity)

	return s.store.SaveStockRecord(ctx, rec)
}

// lockFor returns the mutex serializing mutations for one item, creating
// it on first use. Lock entries are never removed; the table grows with
// the item count, which is bounded by the catalog size.
func (s *Service) lockFor(itemID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	mu, ok := s.locks[itemID]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[itemID] = mu
	}
	return mu
}

func samePrice(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// BulkAdd applies a batch of add requests through the normal mutation
// path with a bounded worker pool. Per-request failures are collected
// and joined; a canceled context stops feeding and returns its error.
func (s *Service) BulkAdd(ctx context.Context, reqs []AddRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	const maxWorkers = 10
	if len(reqs) == 0 {
		return nil
	}

	type result struct {
		err error
	}

	jobs := make(chan AddRequest)
	results := make(chan result, len(reqs))

	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case req, ok := <-jobs:
				if !ok {
					return
				}
				if _, err := s.AddInventory(ctx, req); err != nil {
					results <- result{err: fmt.Errorf("brand=%s category=%s: %w", req.Brand, req.Category, err)}
				} else {
					results <- result{}
				}
			}
		}
	}

	nWorkers := maxWorkers
	if len(reqs) < nWorkers {
		nWorkers = len(reqs)
	}

	wg.Add(nWorkers)
	for i := 0; i < nWorkers; i++ {
		go worker()
	}

	// feed jobs
	go func() {
		defer close(jobs)
		for _, req := range reqs {
			select {
			case <-ctx.Done():
				return
			case jobs <- req:
			}
		}
	}()

	// collect results
	var collected error
	received := 0
	for received < len(reqs) {
		select {
		case <-ctx.Done():
			wg.Wait()
			// workers have stopped; drain the results they already
			// produced so per-request failures are not lost
			for {
				select {
				case res := <-results:
					if res.err != nil {
						collected = joinErr(collected, res.err)
					}
				default:
					if collected != nil {
						return fmt.Errorf("%v; %w", collected, ctx.Err())
					}
					return ctx.Err()
				}
			}
		case res := <-results:
			received++
			if res.err != nil {
				collected = joinErr(collected, res.err)
			}
		}
	}

	wg.Wait()
	return collected
}

func joinErr(collected, err error) error {
	if collected == nil {
		return err
	}
	return fmt.Errorf("%v; %w", collected, err)
}
