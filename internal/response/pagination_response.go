package response

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// NewPagination derives the page count for offset pagination.
func NewPagination(page, limit int, total int64) *Pagination {
	var totalPages int64
	if limit > 0 {
		totalPages = (total + int64(limit) - 1) / int64(limit)
	}
	return &Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
