package models

import "fmt"

// Pagination is the envelope the API attaches to every list response.
// Read-only on this side; it only drives the page controls.
type Pagination struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalItems  int `json:"totalItems"`
}

func (p Pagination) HasPrev() bool { return p.CurrentPage > 1 }
func (p Pagination) HasNext() bool { return p.CurrentPage < p.TotalPages }
func (p Pagination) PrevPage() int { return p.CurrentPage - 1 }
func (p Pagination) NextPage() int { return p.CurrentPage + 1 }

// Window returns the page numbers around the current page (±2), clamped
// to [1, totalPages], for the numbered pagination buttons
func (p Pagination) Window() []int {
	const delta = 2
	start := p.CurrentPage - delta
	if start < 1 {
		start = 1
	}
	end := p.CurrentPage + delta
	if end > p.TotalPages {
		end = p.TotalPages
	}
	var pages []int
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}

// RangeText renders the "11 - 20 dari 25" footer for the current page
func (p Pagination) RangeText(limit int) string {
	if p.TotalItems == 0 {
		return "0 dari 0"
	}
	first := (p.CurrentPage-1)*limit + 1
	last := p.CurrentPage * limit
	if last > p.TotalItems {
		last = p.TotalItems
	}
	return fmt.Sprintf("%d - %d dari %d", first, last, p.TotalItems)
}
