package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"frontend-go/config"
	"frontend-go/middleware"
	"frontend-go/models"
	"frontend-go/services"
)

// BorrowList renders the borrow transactions view. Admins see every
// transaction with the full filter bar; other users see their own
// borrowings only.
func BorrowList(c *gin.Context) {
	borrowPage(c, "borrowed")
}

// ReturnedList renders the returned transactions view
func ReturnedList(c *gin.Context) {
	borrowPage(c, "returned")
}

func borrowPage(c *gin.Context, pageType string) {
	session := middleware.SessionFromContext(c)

	filters := models.NewBorrowFilters()
	filters.FromQuery(c.Request.URL.Query())

	var (
		resp models.BorrowListResponse
		err  error
	)
	switch {
	case !session.IsAdmin():
		resp, err = services.GetBorrowedUser(c.Request.Context(), session.Token, session.ID)
	case pageType == "returned":
		resp, err = services.GetReturnedBooks(c.Request.Context(), session.Token, filters)
	default:
		resp, err = services.GetTransactions(c.Request.Context(), session.Token, filters)
	}

	if err != nil {
		if middleware.LogoutOn401(c, err) {
			return
		}
		config.Log.WithError(err).WithField("type", pageType).Error("Gagal memuat transaksi peminjaman")
		renderBorrow(c, pageType, filters, models.BorrowListResponse{}, gin.H{
			"Flash": "Failed to fetch data: " + err.Error(),
		})
		return
	}

	renderBorrow(c, pageType, filters, resp, nil)
}

func renderBorrow(c *gin.Context, pageType string, filters models.ListFilters, resp models.BorrowListResponse, extra gin.H) {
	path := "/borrow"
	if pageType == "returned" {
		path = "/returned"
	}

	data := gin.H{
		"Type":         pageType,
		"Path":         path,
		"Noun":         "transaksi",
		"Filters":      filters,
		"Transactions": resp.Data,
		"Stats":        resp.Stats,
		"Pagination":   resp.Pagination,
		"Query":        filters.Params().Encode(),
	}
	for k, v := range extra {
		data[k] = v
	}
	render(c, http.StatusOK, "borrow.html", data)
}
