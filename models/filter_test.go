package models

import (
	"net/url"
	"strings"
	"testing"
)

func TestNewFiltersDefaults(t *testing.T) {
	cases := []struct {
		name   string
		f      ListFilters
		sortBy string
	}{
		{"books", NewBookFilters(), "nomor"},
		{"users", NewUserFilters(), "createdAt"},
		{"borrow", NewBorrowFilters(), "borrowedAt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.f.Page != 1 {
				t.Fatalf("Page = %d, ingin 1", tc.f.Page)
			}
			if tc.f.Limit != DefaultLimit {
				t.Fatalf("Limit = %d, ingin %d", tc.f.Limit, DefaultLimit)
			}
			if tc.f.SortBy != tc.sortBy {
				t.Fatalf("SortBy = %q, ingin %q", tc.f.SortBy, tc.sortBy)
			}
			if tc.f.SortOrder != SortDesc {
				t.Fatalf("SortOrder = %q, ingin %q", tc.f.SortOrder, SortDesc)
			}
			if tc.f.Status != "all" || tc.f.Level != "all" || tc.f.Role != "all" {
				t.Fatalf("dimensi tidak semua 'all': %+v", tc.f)
			}
		})
	}
}

func TestMutatorsResetPage(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ListFilters)
	}{
		{"search", func(f *ListFilters) { f.SetSearch("hobbit") }},
		{"status", func(f *ListFilters) { f.SetFilter("status", "borrowed") }},
		{"level", func(f *ListFilters) { f.SetFilter("level", "B1") }},
		{"role", func(f *ListFilters) { f.SetFilter("role", "admin") }},
		{"dateFrom", func(f *ListFilters) { f.SetFilter("dateFrom", "2024-01-01") }},
		{"dateTo", func(f *ListFilters) { f.SetFilter("dateTo", "2024-12-31") }},
		{"sort", func(f *ListFilters) { f.SetSort("judul") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := NewBookFilters()
			f.SetPage(7)
			tc.mutate(&f)
			if f.Page != 1 {
				t.Fatalf("Page = %d setelah %s, ingin kembali ke 1", f.Page, tc.name)
			}
		})
	}
}

func TestSetPageOnlyChangesPage(t *testing.T) {
	f := NewBookFilters()
	f.SetSearch("laskar")
	f.SetFilter("level", "C1")
	before := f
	f.SetPage(4)
	if f.Page != 4 {
		t.Fatalf("Page = %d, ingin 4", f.Page)
	}
	f.Page = before.Page
	if f != before {
		t.Fatalf("SetPage mengubah selain Page: %+v vs %+v", f, before)
	}
}

func TestSetFilterUnknownDimension(t *testing.T) {
	f := NewBookFilters()
	f.SetPage(3)
	f.SetFilter("warna", "merah")
	if f.Page != 3 {
		t.Fatalf("dimensi tak dikenal tetap mereset halaman: Page = %d", f.Page)
	}
}

func TestSetSortToggle(t *testing.T) {
	f := NewBookFilters()

	// Kolom aktif, desc -> asc.
	f.SetSort("nomor")
	if f.SortBy != "nomor" || f.SortOrder != SortAsc {
		t.Fatalf("setelah toggle: %s %s, ingin nomor asc", f.SortBy, f.SortOrder)
	}

	// Kolom baru selalu mulai dari desc, termasuk dari keadaan asc.
	f.SetSort("judul")
	if f.SortBy != "judul" || f.SortOrder != SortDesc {
		t.Fatalf("kolom baru: %s %s, ingin judul desc", f.SortBy, f.SortOrder)
	}

	// Toggle dua kali kembali ke desc.
	f.SetSort("judul")
	f.SetSort("judul")
	if f.SortOrder != SortDesc {
		t.Fatalf("toggle dua kali: %s, ingin desc", f.SortOrder)
	}
}

func TestReset(t *testing.T) {
	f := NewUserFilters()
	f.SetSearch("budi")
	f.SetFilter("role", "admin")
	f.SetSort("username")
	f.SetPage(5)

	f.Reset()

	want := NewUserFilters()
	if f != want {
		t.Fatalf("Reset = %+v, ingin %+v", f, want)
	}
}

func TestParamsCarryEveryDimension(t *testing.T) {
	f := NewBookFilters()
	f.SetSearch("pulang")
	f.SetFilter("status", "available")
	f.SetFilter("level", "A2")
	f.SetPage(2)

	v := f.Params()
	want := map[string]string{
		"page":      "2",
		"limit":     "10",
		"search":    "pulang",
		"sortBy":    "nomor",
		"sortOrder": "desc",
		"status":    "available",
		"level":     "A2",
		"role":      "all",
	}
	for k, w := range want {
		if got := v.Get(k); got != w {
			t.Fatalf("Params[%s] = %q, ingin %q", k, got, w)
		}
	}
}

func TestFromQueryRoundTrip(t *testing.T) {
	f := NewBookFilters()
	f.SetSearch("bumi manusia")
	f.SetFilter("level", "B2")
	f.SetSort("judul")
	f.SetSort("judul") // asc
	f.SetPage(3)

	var got ListFilters = NewBookFilters()
	got.FromQuery(f.Params())

	// defaultSortBy tidak ikut lewat URL, samakan sebelum dibandingkan.
	if got.Page != 3 || got.Search != "bumi manusia" || got.Level != "B2" ||
		got.SortBy != "judul" || got.SortOrder != SortAsc {
		t.Fatalf("round-trip menghasilkan %+v", got)
	}
}

func TestFromQueryIgnoresMalformed(t *testing.T) {
	f := NewBookFilters()
	f.FromQuery(url.Values{
		"page":      {"abc"},
		"limit":     {"-5"},
		"sortOrder": {"sideways"},
	})
	want := NewBookFilters()
	if f != want {
		t.Fatalf("nilai rusak mengubah state: %+v", f)
	}
}

func TestPageURLAndSortURL(t *testing.T) {
	f := NewBookFilters()
	f.SetSearch("laut")

	page := f.PageURL("/data", 2)
	if !strings.HasPrefix(page, "/data?") || !strings.Contains(page, "page=2") {
		t.Fatalf("PageURL = %q", page)
	}
	if f.Page != 1 {
		t.Fatalf("PageURL mengubah receiver: Page = %d", f.Page)
	}

	sort := f.SortURL("/data", "nomor")
	if !strings.Contains(sort, "sortOrder=asc") || !strings.Contains(sort, "page=1") {
		t.Fatalf("SortURL = %q", sort)
	}
	if f.SortOrder != SortDesc {
		t.Fatalf("SortURL mengubah receiver: %s", f.SortOrder)
	}
}
