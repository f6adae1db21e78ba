package models

import (
	"net/url"
	"strconv"
)

// Sort directions accepted by the list endpoints
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// DefaultLimit is the page size every list view starts with
const DefaultLimit = 10

// ListFilters holds the complete filter state of one list view: page,
// page size, free-text search, sort field/direction, and the optional
// domain dimensions (status, level, role, date range). One instance per
// view; the state round-trips through the page URL so it survives full
// page loads.
type ListFilters struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
	Status    string
	Level     string
	Role      string
	DateFrom  string
	DateTo    string

	// defaults restored by Reset
	defaultSortBy string
}

func newFilters(sortBy string) ListFilters {
	return ListFilters{
		Page:          1,
		Limit:         DefaultLimit,
		SortBy:        sortBy,
		SortOrder:     SortDesc,
		Status:        "all",
		Level:         "all",
		Role:          "all",
		defaultSortBy: sortBy,
	}
}

// NewBookFilters returns the default filter state for the books view
func NewBookFilters() ListFilters { return newFilters("nomor") }

// NewUserFilters returns the default filter state for the users view
func NewUserFilters() ListFilters { return newFilters("createdAt") }

// NewBorrowFilters returns the default filter state for the borrow views
func NewBorrowFilters() ListFilters { return newFilters("borrowedAt") }

// SetSearch updates the search text and goes back to page 1. Call sites
// debounce keystrokes (500ms) before this runs.
func (f *ListFilters) SetSearch(text string) {
	f.Search = text
	f.Page = 1
}

// SetFilter updates exactly one named dimension and goes back to page 1.
// Dimension names follow the query parameters of the list endpoints.
func (f *ListFilters) SetFilter(dimension, value string) {
	switch dimension {
	case "status":
		f.Status = value
	case "level":
		f.Level = value
	case "role":
		f.Role = value
	case "dateFrom":
		f.DateFrom = value
	case "dateTo":
		f.DateTo = value
	default:
		return
	}
	f.Page = 1
}

// SetPage moves to the given page and touches nothing else. Bounds are
// enforced by the view (disabled prev/next buttons), not here.
func (f *ListFilters) SetPage(n int) {
	f.Page = n
}

// SetSort sorts by the given field. Sorting on the field that is already
// active flips the direction; a new field starts at desc. Goes back to
// page 1 either way.
func (f *ListFilters) SetSort(field string) {
	if f.SortBy == field && f.SortOrder == SortDesc {
		f.SortOrder = SortAsc
	} else {
		f.SortBy = field
		f.SortOrder = SortDesc
	}
	f.Page = 1
}

// Reset restores every dimension to the view's defaults
func (f *ListFilters) Reset() {
	*f = newFilters(f.defaultSortBy)
}

// Params builds the canonical query parameters sent to the list endpoints
func (f ListFilters) Params() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(f.Page))
	v.Set("limit", strconv.Itoa(f.Limit))
	v.Set("search", f.Search)
	v.Set("sortBy", f.SortBy)
	v.Set("sortOrder", f.SortOrder)
	v.Set("status", f.Status)
	v.Set("level", f.Level)
	v.Set("role", f.Role)
	v.Set("dateFrom", f.DateFrom)
	v.Set("dateTo", f.DateTo)
	return v
}

// FromQuery hydrates the filter state from a page URL, keeping defaults
// for anything absent or malformed
func (f *ListFilters) FromQuery(q url.Values) {
	if p, err := strconv.Atoi(q.Get("page")); err == nil && p >= 1 {
		f.Page = p
	}
	if l, err := strconv.Atoi(q.Get("limit")); err == nil && l >= 1 {
		f.Limit = l
	}
	if s := q.Get("search"); s != "" {
		f.Search = s
	}
	if s := q.Get("sortBy"); s != "" {
		f.SortBy = s
	}
	if s := q.Get("sortOrder"); s == SortAsc || s == SortDesc {
		f.SortOrder = s
	}
	for _, dim := range []string{"status", "level", "role", "dateFrom", "dateTo"} {
		if v := q.Get(dim); v != "" {
			switch dim {
			case "status":
				f.Status = v
			case "level":
				f.Level = v
			case "role":
				f.Role = v
			case "dateFrom":
				f.DateFrom = v
			case "dateTo":
				f.DateTo = v
			}
		}
	}
}

// PageURL renders the state as a link to the same view with one page
// changed, used by the pagination buttons
func (f ListFilters) PageURL(path string, page int) string {
	next := f
	next.Page = page
	return path + "?" + next.Params().Encode()
}

// SortURL renders the state as a link with SetSort(field) applied, used
// by the sortable column headers
func (f ListFilters) SortURL(path, field string) string {
	next := f
	next.SetSort(field)
	return path + "?" + next.Params().Encode()
}
