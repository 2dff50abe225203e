package models

import "math"

// Page is one page of a collection plus paging metadata.
type Page[T any] struct {
	Docs          []T   `json:"docs"`
	TotalDocs     int64 `json:"totalDocs"`
	Limit         int   `json:"limit"`
	Page          int   `json:"page"`
	TotalPages    int   `json:"totalPages"`
	PagingCounter int   `json:"pagingCounter"`
	HasPrevPage   bool  `json:"hasPrevPage"`
	HasNextPage   bool  `json:"hasNextPage"`
	PrevPage      *int  `json:"prevPage"`
	NextPage      *int  `json:"nextPage"`
}

// NewPage builds the envelope for docs at page of size limit out of totalDocs.
// An empty collection still reports one page.
func NewPage[T any](docs []T, totalDocs int64, page, limit int) *Page[T] {
	if docs == nil {
		docs = []T{}
	}
	totalPages := 1
	if limit > 0 && totalDocs > 0 {
		n := totalDocs / int64(limit)
		if totalDocs%int64(limit) != 0 {
			n++
		}
		totalPages = int(n)
	}
	p := &Page[T]{
		Docs:          docs,
		TotalDocs:     totalDocs,
		Limit:         limit,
		Page:          page,
		TotalPages:    totalPages,
		PagingCounter: pagingCounter(page, limit),
		HasPrevPage:   page > 1,
		HasNextPage:   page < totalPages,
	}
	if p.HasPrevPage {
		prev := page - 1
		p.PrevPage = &prev
	}
	if p.HasNextPage {
		next := page + 1
		p.NextPage = &next
	}
	return p
}

// Offset returns the number of documents to skip for page of size limit.
// It saturates at math.MaxInt64 instead of overflowing.
func Offset(page, limit int) int64 {
	if page <= 1 || limit <= 0 {
		return 0
	}
	p, l := int64(page-1), int64(limit)
	if p > math.MaxInt64/l {
		return math.MaxInt64
	}
	return p * l
}

func pagingCounter(page, limit int) int {
	off := Offset(page, limit)
	if off >= math.MaxInt-1 {
		return math.MaxInt
	}
	return int(off) + 1
}
