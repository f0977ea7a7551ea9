// Package search implements query validation and the filter/sort/page
// engine over inventory snapshots.
package search

import (
	"fmt"
	"strings"

	"groceryapp/domain"
)

const (
	minAllowedPrice = 0.0
	minPage         = 0
	minPageSize     = 1
	maxPageSize     = 100
	maxListSize     = 20

	// DefaultSortField is applied when the requested sort field is absent
	// or unrecognized.
	DefaultSortField = "price"
	sortByQuantity   = "quantity"
	// quantityAlias is accepted on the wire and normalized to "quantity"
	quantityAlias = "itemqty"
)

var (
	validSortFields     = map[string]bool{"price": true, "quantity": true, "itemqty": true}
	validSortDirections = map[string]bool{"asc": true, "desc": true}
)

// ValidateQuery checks the shape of a search query and returns every
// violation found. The checks are independent and never short-circuit;
// an empty result means the query is valid.
func ValidateQuery(q domain.SearchQuery) []string {
	var violations []string

	if q.MinPrice != nil && *q.MinPrice < minAllowedPrice {
		violations = append(violations, "Minimum price cannot be negative")
	}
	if q.MaxPrice != nil && *q.MaxPrice < minAllowedPrice {
		violations = append(violations, "Maximum price cannot be negative")
	}
	if q.MinPrice != nil && q.MaxPrice != nil && *q.MinPrice > *q.MaxPrice {
		violations = append(violations, "Minimum price cannot be greater than maximum price")
	}

	if q.SortBy != "" && !validSortFields[strings.ToLower(q.SortBy)] {
		violations = append(violations, "Invalid sort field. Valid fields are: price, quantity, itemqty")
	}
	if q.SortDirection != "" && !validSortDirections[strings.ToLower(q.SortDirection)] {
		violations = append(violations, "Invalid sort direction. Valid directions are: asc, desc")
	}

	if q.Page < minPage {
		violations = append(violations, "Page number cannot be negative")
	}
	if q.PageSize < minPageSize {
		violations = append(violations, fmt.Sprintf("Page size must be at least %d", minPageSize))
	}
	if q.PageSize > maxPageSize {
		violations = append(violations, fmt.Sprintf("Page size cannot exceed %d", maxPageSize))
	}

	if len(q.Brands) > maxListSize {
		violations = append(violations, fmt.Sprintf("brands list cannot contain more than %d items", maxListSize))
	}
	if len(q.Categories) > maxListSize {
		violations = append(violations, fmt.Sprintf("categories list cannot contain more than %d items", maxListSize))
	}

	return violations
}

// NormalizeSortField case-folds the raw sort field and resolves the
// quantity alias. Absent or unrecognized input falls back to the default
// price field; normalization never fails, regardless of validation
// outcome.
func NormalizeSortField(raw string) string {
	if raw == "" {
		return DefaultSortField
	}
	folded := strings.ToLower(raw)
	if folded == quantityAlias {
		return sortByQuantity
	}
	if validSortFields[folded] {
		return folded
	}
	return DefaultSortField
}
