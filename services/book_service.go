package services

import (
	"context"
	"net/url"
	"strconv"

	"frontend-go/models"
)

// GetAllBooks fetches one page of books with the current filter state
func GetAllBooks(ctx context.Context, token string, filters models.ListFilters) (models.BookListResponse, error) {
	var resp models.BookListResponse
	err := apiGet(ctx, "/book", filters.Params(), token, &resp)
	return resp, err
}

// GetBookByID fetches one book with its borrowing history
func GetBookByID(ctx context.Context, token, id string) (models.BookDetail, error) {
	var resp struct {
		Data models.BookDetail `json:"data"`
	}
	err := apiGet(ctx, "/book/"+id, nil, token, &resp)
	return resp.Data, err
}

// SearchBooks queries the dedicated search endpoint
func SearchBooks(ctx context.Context, token, query string, page, limit int) (models.BookListResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))

	var resp models.BookListResponse
	err := apiGet(ctx, "/book/search", params, token, &resp)
	return resp, err
}

// CreateBook submits the add-book form as multipart, cover included when
// one was chosen
func CreateBook(ctx context.Context, token string, form models.BookForm, cover *FileUpload) error {
	return apiSendMultipart(ctx, "POST", "/book", form.Fields(), cover, token, nil)
}

// UpdateBook submits the edit-book form as multipart
func UpdateBook(ctx context.Context, token, id string, form models.BookForm, cover *FileUpload) error {
	return apiSendMultipart(ctx, "PUT", "/book/"+id, form.Fields(), cover, token, nil)
}

// DeleteBook removes a book
func DeleteBook(ctx context.Context, token, id string) error {
	return apiDelete(ctx, "/book/"+id, token)
}
