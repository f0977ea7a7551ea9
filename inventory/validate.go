package inventory

// Request-shape checks mirror the search validator: each check is
// independent and every violation is collected rather than failing on
// the first.

func validateAddRequest(req AddRequest) []string {
	var violations []string
	if req.Brand == "" {
		violations = append(violations, "Brand cannot be empty")
	}
	if req.Category == "" {
		violations = append(violations, "Category cannot be empty")
	}
	if req.Price != nil && *req.Price <= 0 {
		violations = append(violations, "Price must be greater than zero")
	}
	if req.Quantity < 1 {
		violations = append(violations, "Quantity must be at least 1")
	}
	return violations
}

func validateRemoveRequest(req RemoveRequest) []string {
	var violations []string
	if req.Brand == "" {
		violations = append(violations, "Brand cannot be empty")
	}
	if req.Category == "" {
		violations = append(violations, "Category cannot be empty")
	}
	if req.Quantity < 1 {
		violations = append(violations, "Quantity must be at least 1")
	}
	return violations
}
