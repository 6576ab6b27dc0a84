package response

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int64 `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
	HasMore    bool  `json:"has_more"`
	From       int   `json:"from"`
	To         int   `json:"to"`
}

// Paginate computes the page window over total items. Page and pageSize
// below 1 are treated as 1 and 10. From and To are zero-based slice bounds.
func Paginate(page, pageSize, total int) Pagination {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	from := total
	if page-1 < total/pageSize+1 {
		from = min((page-1)*pageSize, total)
	}
	to := min(from+pageSize, total)
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int64((total + pageSize - 1) / pageSize),
		TotalItems: int64(total),
		HasMore:    to < total,
		From:       from,
		To:         to,
	}
}
