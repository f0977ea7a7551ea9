package domain

// SearchQuery carries the filter, sort and pagination parameters of one
// search request. Nil/empty fields mean "not specified".
type SearchQuery struct {
	Brands        []string
	Categories    []string
	MinPrice      *float64
	MaxPrice      *float64
	SortBy        string
	SortDirection string
	Page          int
	PageSize      int
}

// SearchResult is one row of a search page.
type SearchResult struct {
	Brand    string   `json:"brand"`
	Category string   `json:"category"`
	Price    *float64 `json:"price"`
	Quantity int      `json:"quantity"`
}

// SearchPage is a filtered, sorted, paginated result set plus pagination
// metadata. TotalResults is counted before slicing and
// TotalPages = ceil(TotalResults / PageSize).
type SearchPage struct {
	Results      []SearchResult `json:"results"`
	TotalResults int            `json:"totalResults"`
	TotalPages   int            `json:"totalPages"`
	CurrentPage  int            `json:"currentPage"`
	PageSize     int            `json:"pageSize"`
}
