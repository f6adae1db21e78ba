package models

import "strings"

// Book status values as returned by the API
const (
	BookAvailable = "available"
	BookBorrowed  = "borrowed"
)

// Book represents one library book as the API returns it. The API owns
// the record; this side only reads and submits edits.
type Book struct {
	ID          string   `json:"_id"`
	Nomor       string   `json:"nomor"`
	Judul       string   `json:"judul"`
	Penulis     string   `json:"penulis"`
	Level       string   `json:"level"`
	KodeJudul   string   `json:"kodeJudul"`
	KodePenulis string   `json:"kodePenulis"`
	CoverImage  string   `json:"coverImage,omitempty"`
	Status      string   `json:"status"`
	BorrowedBy  *UserRef `json:"borrowedBy,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
}

// UserRef is the embedded user reference on a borrowed book
type UserRef struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// BookDetail is the GET /book/:id payload: the book plus its history
type BookDetail struct {
	Book
	BorrowingHistory []BorrowTransaction `json:"borrowingHistory"`
}

// BookStats backs the status filter pills above the books table
type BookStats struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Borrowed  int `json:"borrowed"`
}

// BookListResponse is the GET /book envelope
type BookListResponse struct {
	Data       []Book     `json:"data"`
	Stats      BookStats  `json:"stats"`
	Levels     []string   `json:"levels"`
	Pagination Pagination `json:"pagination"`
}

// BookForm carries the add/edit modal fields before submission
type BookForm struct {
	Nomor       string
	Judul       string
	Level       string
	Penulis     string
	KodeJudul   string
	KodePenulis string
}

// Validate runs the required-field checks done before any network call.
// Returns one message per offending field, keyed by field name.
func (f BookForm) Validate() map[string]string {
	errors := map[string]string{}

	if strings.TrimSpace(f.Nomor) == "" {
		errors["nomor"] = "Nomor buku wajib diisi"
	}
	if strings.TrimSpace(f.Judul) == "" {
		errors["judul"] = "Judul buku wajib diisi"
	}
	if strings.TrimSpace(f.Level) == "" {
		errors["level"] = "Level buku wajib diisi"
	}
	if strings.TrimSpace(f.Penulis) == "" {
		errors["penulis"] = "Penulis buku wajib diisi"
	}
	if strings.TrimSpace(f.KodeJudul) == "" {
		errors["kodeJudul"] = "Kode judul wajib diisi"
	}
	if strings.TrimSpace(f.KodePenulis) == "" {
		errors["kodePenulis"] = "Kode penulis wajib diisi"
	}

	return errors
}

// Fields returns the multipart fields submitted to POST/PUT /book
func (f BookForm) Fields() map[string]string {
	return map[string]string{
		"nomor":       f.Nomor,
		"judul":       f.Judul,
		"level":       f.Level,
		"penulis":     f.Penulis,
		"kodeJudul":   f.KodeJudul,
		"kodePenulis": f.KodePenulis,
	}
}
