package models

// Pagination describes the window of a list response. HasMore tells the
// client whether another page exists past skip+limit.
type Pagination struct {
	Skip    int   `json:"skip"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
	HasMore bool  `json:"hasMore"`
}

func NewPagination(skip, limit int, total int64) Pagination {
	return Pagination{
		Skip:    skip,
		Limit:   limit,
		Total:   total,
		HasMore: int64(skip+limit) < total,
	}
}
