package services

import (
	"context"
	"errors"

	"frontend-go/config"
	"frontend-go/models"
)

// AuthResult is what the login/register forms get back. Failures never
// propagate as errors past this boundary, except a transport-level 401
// which the middleware handles globally.
type AuthResult struct {
	Success bool
	Message string
	Session models.Session
}

// Login authenticates against POST /auth/login and returns the session
// entity on success
func Login(ctx context.Context, username, password string) AuthResult {
	body := map[string]string{
		"username": username,
		"password": password,
	}

	var session models.Session
	if err := apiPostJSON(ctx, "/auth/login", body, "", &session); err != nil {
		config.Log.WithError(err).WithField("username", username).Warn("Login gagal")
		return AuthResult{Success: false, Message: failureMessage(err)}
	}

	return AuthResult{Success: true, Session: session}
}

// Register creates an account via POST /auth/register (multipart, with
// optional avatar) and returns the session entity on success
func Register(ctx context.Context, form models.UserForm, avatar *FileUpload) AuthResult {
	var session models.Session
	if err := apiSendMultipart(ctx, "POST", "/auth/register", form.Fields(), avatar, "", &session); err != nil {
		config.Log.WithError(err).WithField("username", form.Username).Warn("Registrasi gagal")
		return AuthResult{Success: false, Message: failureMessage(err)}
	}

	return AuthResult{Success: true, Session: session}
}

func failureMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Something went wrong"
}
