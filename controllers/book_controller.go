package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"frontend-go/config"
	"frontend-go/middleware"
	"frontend-go/models"
	"frontend-go/services"
)

// redirectToData returns to the books view, keeping the filter state the
// form carried along in the hidden query field
func redirectToData(c *gin.Context) {
	target := "/data"
	if q := c.PostForm("query"); q != "" {
		target += "?" + q
	}
	c.Redirect(http.StatusSeeOther, target)
}

func fetchBooksPage(c *gin.Context, filters models.ListFilters) (models.BookListResponse, []models.User, error) {
	session := middleware.SessionFromContext(c)

	resp, err := services.GetAllBooks(c.Request.Context(), session.Token, filters)
	if err != nil {
		return models.BookListResponse{}, nil, err
	}

	// the borrow modal needs the borrower picker, admin only
	var users []models.User
	if session.IsAdmin() {
		users, err = services.GetAvailableUsers(c.Request.Context(), session.Token)
		if err != nil {
			if errors.Is(err, services.ErrUnauthorized) {
				return models.BookListResponse{}, nil, err
			}
			config.Log.WithError(err).Warn("Gagal memuat daftar peminjam")
			users = nil
		}
	}

	return resp, users, nil
}

func renderBooks(c *gin.Context, status int, filters models.ListFilters, resp models.BookListResponse, users []models.User, extra gin.H) {
	data := gin.H{
		"Path":           "/data",
		"Noun":           "buku",
		"Filters":        filters,
		"Books":          resp.Data,
		"Stats":          resp.Stats,
		"Levels":         resp.Levels,
		"Pagination":     resp.Pagination,
		"AvailableUsers": users,
		"Query":          filters.Params().Encode(),
	}
	// keys the template dereferences unconditionally
	data["Form"] = models.BookForm{}
	data["FieldErrors"] = map[string]string{}
	data["FormError"] = ""
	data["OpenModal"] = ""
	for k, v := range extra {
		data[k] = v
	}
	render(c, status, "books.html", data)
}

// DataList renders the books view: filter bar, stats pills, table with
// sortable columns, pagination footer
func DataList(c *gin.Context) {
	filters := models.NewBookFilters()
	filters.FromQuery(c.Request.URL.Query())

	resp, users, err := fetchBooksPage(c, filters)
	if err != nil {
		if middleware.LogoutOn401(c, err) {
			return
		}
		config.Log.WithError(err).Error("Gagal memuat daftar buku")
		renderBooks(c, http.StatusOK, filters, models.BookListResponse{}, nil, gin.H{
			"Flash": "Gagal memuat data buku: " + err.Error(),
		})
		return
	}

	renderBooks(c, http.StatusOK, filters, resp, users, nil)
}

// BookDetailJSON feeds the detail modal (book plus borrowing history)
func BookDetailJSON(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	detail, err := services.GetBookByID(c.Request.Context(), session.Token, c.Param("id"))
	if err != nil {
		if middleware.LogoutOn401(c, err) {
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": detail})
}

func bookFormFrom(c *gin.Context) models.BookForm {
	return models.BookForm{
		Nomor:       strings.TrimSpace(c.PostForm("nomor")),
		Judul:       strings.TrimSpace(c.PostForm("judul")),
		Level:       strings.TrimSpace(c.PostForm("level")),
		Penulis:     strings.TrimSpace(c.PostForm("penulis")),
		KodeJudul:   strings.TrimSpace(c.PostForm("kodeJudul")),
		KodePenulis: strings.TrimSpace(c.PostForm("kodePenulis")),
	}
}

func coverUpload(c *gin.Context) *services.FileUpload {
	if file, err := c.FormFile("coverImage"); err == nil {
		return &services.FileUpload{Field: "coverImage", File: file}
	}
	return nil
}

// rerenderBookModal shows the list again with the given modal open and
// the submitted form preserved, so the user can correct and retry
func rerenderBookModal(c *gin.Context, modal string, form models.BookForm, fieldErrors map[string]string, generalError string) {
	filters := models.NewBookFilters()
	filters.FromQuery(c.Request.URL.Query())

	resp, users, err := fetchBooksPage(c, filters)
	if err != nil && middleware.LogoutOn401(c, err) {
		return
	}

	renderBooks(c, http.StatusBadRequest, filters, resp, users, gin.H{
		"OpenModal":   modal,
		"Form":        form,
		"FieldErrors": fieldErrors,
		"FormError":   generalError,
	})
}

// CreateBook handles the add-book modal. Required fields are checked
// here first; no API call goes out for an incomplete form.
func CreateBook(c *gin.Context) {
	form := bookFormFrom(c)

	if fieldErrors := form.Validate(); len(fieldErrors) > 0 {
		rerenderBookModal(c, "add", form, fieldErrors, "")
		return
	}

	session := middleware.SessionFromContext(c)
	if err := services.CreateBook(c.Request.Context(), session.Token, form, coverUpload(c)); err != nil {
		if middleware.LogoutOn401(c, err) {
			return
		}
		if isConflict(err.Error()) {
			rerenderBookModal(c, "add", form, nil, "Nomor buku sudah digunakan")
		} else {
			rerenderBookModal(c, "add", form, nil, "Error membuat buku: "+err.Error())
		}
		return
	}

	setFlash(c, "Buku berhasil ditambahkan")
	redirectToData(c)
}

// UpdateBook handles the edit-book modal
func UpdateBook(c *gin.Context) {
	form := bookFormFrom(c)

	if fieldErrors := form.Validate(); len(fieldErrors) > 0 {
		rerenderBookModal(c, "edit-"+c.Param("id"), form, fieldErrors, "")
		return
	}

	session := middleware.SessionFromContext(c)
	if err := services.UpdateBook(c.Request.Context(), session.Token, c.Param("id"), form, coverUpload(c)); err != nil {
		if middleware.LogoutOn401(c, err) {
			return
		}
		rerenderBookModal(c, "edit-"+c.Param("id"), form, nil, "Error memperbarui buku: "+err.Error())
		return
	}

	setFlash(c, "Buku berhasil diperbarui")
	redirectToData(c)
}

// DeleteBook handles the delete confirmation modal
func DeleteBook(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	if err := services.DeleteBook(c.Request.Context(), session.Token, c.Param("id")); err != nil {
		if middleware.LogoutOn401(c, err) {
			return
		}
		setFlash(c, "Error menghapus buku: "+err.Error())
		redirectToData(c)
		return
	}

	setFlash(c, "Buku berhasil dihapus")
	redirectToData(c)
}

// BorrowBook lends an available book to the chosen user. The UI only
// offers the action on available books; the API enforces the rest.
func BorrowBook(c *gin.Context) {
	userID := c.PostForm("userId")
	dueDate := c.PostForm("dueDate")

	if userID == "" {
		rerenderBookModal(c, "borrow-"+c.Param("id"), models.BookForm{}, map[string]string{
			"userId": "Pilih peminjam terlebih dahulu",
		}, "")
		return
	}

	session := middleware.SessionFromContext(c)
	if err := services.BorrowBook(c.Request.Context(), session.Token, c.Param("id"), userID, dueDate); err != nil {
		if middleware.LogoutOn401(c, err) {
			return
		}
		setFlash(c, "Error meminjam buku: "+err.Error())
		redirectToData(c)
		return
	}

	setFlash(c, "Buku berhasil dipinjamkan")
	redirectToData(c)
}

// ReturnBook marks a borrowed book as returned
func ReturnBook(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	if err := services.ReturnBook(c.Request.Context(), session.Token, c.Param("id")); err != nil {
		if middleware.LogoutOn401(c, err) {
			return
		}
		setFlash(c, "Error mengembalikan buku: "+err.Error())
		redirectToData(c)
		return
	}

	setFlash(c, "Buku berhasil dikembalikan")
	redirectToData(c)
}
