package services

import (
	"context"

	"frontend-go/models"
)

// GetAllUsers fetches one page of users with the current filter state
func GetAllUsers(ctx context.Context, token string, filters models.ListFilters) (models.UserListResponse, error) {
	var resp models.UserListResponse
	err := apiGet(ctx, "/user", filters.Params(), token, &resp)
	return resp, err
}

// GetAvailableUsers fetches the unfiltered user list for the borrower
// picker in the borrow modal
func GetAvailableUsers(ctx context.Context, token string) ([]models.User, error) {
	var resp models.UserListResponse
	if err := apiGet(ctx, "/user", nil, token, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetUserByID fetches one account
func GetUserByID(ctx context.Context, token, id string) (models.User, error) {
	var resp struct {
		Data models.User `json:"data"`
	}
	err := apiGet(ctx, "/user/"+id, nil, token, &resp)
	return resp.Data, err
}

// GetProfile fetches the logged-in account
func GetProfile(ctx context.Context, token string) (models.User, error) {
	var resp struct {
		Data models.User `json:"data"`
	}
	err := apiGet(ctx, "/user/profile", nil, token, &resp)
	return resp.Data, err
}

// CreateUser adds an account through the register endpoint, the way the
// admin users view does it
func CreateUser(ctx context.Context, token string, form models.UserForm, avatar *FileUpload) error {
	return apiSendMultipart(ctx, "POST", "/auth/register", form.Fields(), avatar, token, nil)
}

// UpdateUser submits the edit form as multipart, avatar included when a
// new one was chosen
func UpdateUser(ctx context.Context, token, id string, form models.UserForm, avatar *FileUpload) error {
	return apiSendMultipart(ctx, "PUT", "/user/"+id, form.Fields(), avatar, token, nil)
}

// DeleteUser removes an account
func DeleteUser(ctx context.Context, token, id string) error {
	return apiDelete(ctx, "/user/"+id, token)
}
