package request

import "math"

const MaxPerPage = 100

// PaginatedRequest is optional: a zero PerPage means "return everything".
type PaginatedRequest struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

// Offset saturates at math.MaxInt for pages past any possible row.
func (p PaginatedRequest) Offset() int {
	limit := p.Limit()
	if p.Page < 1 || limit == 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (p.Page - 1) * limit
}

func (p PaginatedRequest) Limit() int {
	if p.PerPage < 1 {
		return 0
	}
	if p.PerPage > MaxPerPage {
		return MaxPerPage
	}
	return p.PerPage
}
