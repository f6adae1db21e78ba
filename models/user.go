package models

import "strings"

// User represents one account as the API returns it
type User struct {
	ID        string `json:"_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"` // admin or user
	Avatar    string `json:"avatar,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// UserStats backs the cards above the users table
type UserStats struct {
	Total             int `json:"total"`
	Admin             int `json:"admin"`
	User              int `json:"user"`
	TotalBorrowed     int `json:"totalBorrowed"`
	TotalReturned     int `json:"totalReturned"`
	CurrentlyBorrowed int `json:"currentlyBorrowed"`
}

// UserListResponse is the GET /user envelope
type UserListResponse struct {
	Data       []User     `json:"data"`
	Stats      UserStats  `json:"stats"`
	Pagination Pagination `json:"pagination"`
}

// UserForm carries the register / user add/edit fields
type UserForm struct {
	Username string
	Email    string
	Password string
	Role     string
}

// Validate runs the required-field checks before submission. Password is
// only required when requirePassword is set (register/add, not edit).
func (f UserForm) Validate(requirePassword bool) map[string]string {
	errors := map[string]string{}

	if strings.TrimSpace(f.Username) == "" {
		errors["username"] = "Username wajib diisi"
	}
	if strings.TrimSpace(f.Email) == "" {
		errors["email"] = "Email wajib diisi"
	}
	if requirePassword && f.Password == "" {
		errors["password"] = "Password wajib diisi"
	}

	return errors
}

// Fields returns the multipart fields submitted to the user endpoints.
// Empty optional fields are left out so the API keeps current values.
func (f UserForm) Fields() map[string]string {
	fields := map[string]string{
		"username": f.Username,
		"email":    f.Email,
	}
	if f.Password != "" {
		fields["password"] = f.Password
	}
	if f.Role != "" {
		fields["role"] = f.Role
	}
	return fields
}
