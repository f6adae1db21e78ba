package controllers

import (
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"frontend-go/middleware"
	"frontend-go/models"
)

const flashKey = "flash"

// setFlash stores a one-shot notification shown on the next render
func setFlash(c *gin.Context, message string) {
	store := sessions.Default(c)
	store.Set(flashKey, message)
	store.Save()
}

// popFlash reads and clears the pending notification
func popFlash(c *gin.Context) string {
	store := sessions.Default(c)
	raw := store.Get(flashKey)
	if raw == nil {
		return ""
	}
	store.Delete(flashKey)
	store.Save()
	message, _ := raw.(string)
	return message
}

// render draws a page template with the session and flash merged in
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	session := middleware.SessionFromContext(c)
	if session.Token == "" {
		// public pages still show login/register links correctly
		session, _ = middleware.CurrentSession(c)
	}
	data["Session"] = session
	data["IsAdmin"] = session.IsAdmin()
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = popFlash(c)
	}
	c.HTML(status, name, data)
}

// isConflict reports whether an API message is an "already exists" style
// duplicate-identifier answer
func isConflict(message string) bool {
	lower := strings.ToLower(message)
	return strings.Contains(lower, "already exists") || strings.Contains(lower, "sudah digunakan")
}

// defaultFiltersFor maps a view path to its filter defaults
func defaultFiltersFor(view string) models.ListFilters {
	switch view {
	case "users":
		return models.NewUserFilters()
	case "borrow", "returned":
		return models.NewBorrowFilters()
	default:
		return models.NewBookFilters()
	}
}
