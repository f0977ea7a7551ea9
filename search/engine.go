package search

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"groceryapp/domain"
)

// Engine runs validated searches against the full stock snapshot read
// from the storage collaborator.
type Engine struct {
	store domain.InventoryStore
}

// NewEngine constructs an Engine backed by the given store
func NewEngine(store domain.InventoryStore) *Engine {
	return &Engine{store: store}
}

// SearchItems validates the query, reads a full snapshot and delegates to
// Search. Validation violations surface as a single InvalidRequestError
// carrying all of them.
func (e *Engine) SearchItems(ctx context.Context, q domain.SearchQuery) (domain.SearchPage, error) {
	if violations := ValidateQuery(q); len(violations) > 0 {
		return domain.SearchPage{}, domain.NewInvalidRequestError(violations...)
	}

	snapshot, err := e.store.StockSnapshot(ctx)
	if err != nil {
		return domain.SearchPage{}, err
	}

	start := time.Now()
	page, err := Search(snapshot, q)
	if err != nil {
		return domain.SearchPage{}, err
	}
	slog.Debug("search completed",
		"total_results", page.TotalResults,
		"page", page.CurrentPage,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return page, nil
}

// Search filters, sorts and paginates a snapshot. The query must have
// passed ValidateQuery (in particular PageSize >= 1). The snapshot must
// be in its canonical order; matches keep that order until sorting.
// Sorting is not stable across equal keys.
func Search(snapshot []domain.StockEntry, q domain.SearchQuery) (domain.SearchPage, error) {
	if len(snapshot) == 0 {
		return domain.SearchPage{}, domain.NewInventoryEmptyError()
	}

	filtered := applyFilters(snapshot, q)
	if len(filtered) == 0 {
		return domain.SearchPage{}, domain.NewItemNotFoundError()
	}

	sortEntries(filtered, NormalizeSortField(q.SortBy), strings.EqualFold(q.SortDirection, "desc"))

	totalResults := len(filtered)
	totalPages := (totalResults + q.PageSize - 1) / q.PageSize

	// q.Page * q.PageSize overflows for very large page indexes; any
	// page at or past the end maps to an empty tail slice.
	startIdx := totalResults
	if q.Page <= totalResults/q.PageSize {
		startIdx = q.Page * q.PageSize
	}
	endIdx := startIdx + q.PageSize
	if endIdx > totalResults {
		endIdx = totalResults
	}

	results := make([]domain.SearchResult, 0, endIdx-startIdx)
	for _, entry := range filtered[startIdx:endIdx] {
		results = append(results, domain.SearchResult{
			Brand:    entry.Brand,
			Category: entry.Category,
			Price:    entry.Price,
			Quantity: entry.Quantity,
		})
	}

	return domain.SearchPage{
		Results:      results,
		TotalResults: totalResults,
		TotalPages:   totalPages,
		CurrentPage:  q.Page,
		PageSize:     q.PageSize,
	}, nil
}

// applyFilters evaluates the conjunction of every predicate whose query
// field is present. A nil price fails any price-bound predicate.
func applyFilters(snapshot []domain.StockEntry, q domain.SearchQuery) []domain.StockEntry {
	var predicates []func(domain.StockEntry) bool

	if len(q.Brands) > 0 {
		brands := toSet(q.Brands)
		predicates = append(predicates, func(e domain.StockEntry) bool {
			return brands[e.Brand]
		})
	}
	if len(q.Categories) > 0 {
		categories := toSet(q.Categories)
		predicates = append(predicates, func(e domain.StockEntry) bool {
			return categories[e.Category]
		})
	}
	if q.MinPrice != nil {
		min := *q.MinPrice
		predicates = append(predicates, func(e domain.StockEntry) bool {
			return e.Price != nil && *e.Price >= min
		})
	}
	if q.MaxPrice != nil {
		max := *q.MaxPrice
		predicates = append(predicates, func(e domain.StockEntry) bool {
			return e.Price != nil && *e.Price <= max
		})
	}

	filtered := make([]domain.StockEntry, 0, len(snapshot))
	for _, entry := range snapshot {
		if matchesAll(entry, predicates) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

func matchesAll(entry domain.StockEntry, predicates []func(domain.StockEntry) bool) bool {
	for _, p := range predicates {
		if !p(entry) {
			return false
		}
	}
	return true
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// sortEntries orders entries in place by the normalized field. Entries
// with a nil price sort last in both directions; quantity is never nil.
func sortEntries(entries []domain.StockEntry, field string, desc bool) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if field == sortByQuantity {
			if desc {
				return a.Quantity > b.Quantity
			}
			return a.Quantity < b.Quantity
		}
		if a.Price == nil {
			return false
		}
		if b.Price == nil {
			return true
		}
		if desc {
			return *a.Price > *b.Price
		}
		return *a.Price < *b.Price
	})
}
