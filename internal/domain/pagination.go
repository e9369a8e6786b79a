package domain

// PageMeta holds pagination metadata for a paginated response.
type PageMeta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// Paginate slices a fully filtered and sorted sequence into the requested
// page and computes the metadata block. A start index past the end of the
// sequence yields an empty page, not an error. Pagination parameters must
// already be validated.
func Paginate[T any](items []T, p Pagination) ([]T, PageMeta) {
	total := len(items)

	totalPages := 0
	if total > 0 {
		totalPages = (total + p.Limit - 1) / p.Limit
	}

	meta := PageMeta{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
		HasPrev:    p.Page > 1,
	}

	start := p.Offset()
	if start >= total {
		return []T{}, meta
	}

	end := start + p.Limit
	if end > total {
		end = total
	}

	return items[start:end], meta
}
