package services

import (
	"context"
	"net/url"

	"frontend-go/models"
)

// GetTransactions fetches one page of borrow transactions (admin view)
func GetTransactions(ctx context.Context, token string, filters models.ListFilters) (models.BorrowListResponse, error) {
	var resp models.BorrowListResponse
	err := apiGet(ctx, "/borrow/transactions", filters.Params(), token, &resp)
	return resp, err
}

// GetReturnedBooks fetches one page of returned transactions
func GetReturnedBooks(ctx context.Context, token string, filters models.ListFilters) (models.BorrowListResponse, error) {
	var resp models.BorrowListResponse
	err := apiGet(ctx, "/borrow/returned", filters.Params(), token, &resp)
	return resp, err
}

// GetBorrowedUser fetches the borrowings of one user (non-admin view)
func GetBorrowedUser(ctx context.Context, token, userID string) (models.BorrowListResponse, error) {
	var resp models.BorrowListResponse
	err := apiGet(ctx, "/borrow/"+userID, nil, token, &resp)
	return resp, err
}

// BorrowBook lends a book to the chosen user, optionally with a due date
func BorrowBook(ctx context.Context, token, bookID, userID, dueDate string) error {
	body := map[string]string{"userId": userID}
	if dueDate != "" {
		body["dueDate"] = dueDate
	}
	return apiPostJSON(ctx, "/borrow/"+bookID+"/borrow", body, token, nil)
}

// ReturnBook marks a borrowed book as returned
func ReturnBook(ctx context.Context, token, bookID string) error {
	return apiPostJSON(ctx, "/borrow/"+bookID+"/return", map[string]string{}, token, nil)
}

// GetStats fetches the dashboard aggregation for one range, computed
// entirely by the API
func GetStats(ctx context.Context, token, statsRange string) (models.DashboardStats, error) {
	params := url.Values{}
	params.Set("range", statsRange)

	var resp struct {
		Data models.DashboardStats `json:"data"`
	}
	err := apiGet(ctx, "/borrow/stats", params, token, &resp)
	return resp.Data, err
}

// GetRange fetches the options for the dashboard range picker
func GetRange(ctx context.Context, token string) ([]models.RangeOption, error) {
	var resp struct {
		Data []models.RangeOption `json:"data"`
	}
	err := apiGet(ctx, "/borrow/getRange", nil, token, &resp)
	return resp.Data, err
}
