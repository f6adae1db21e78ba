package middleware

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"frontend-go/config"
	"frontend-go/models"
	"frontend-go/services"
)

// CurrentSession hydrates the session entity from the cookie store.
// Absent, malformed or expired data settles to Anonymous without error;
// malformed data is also cleared so the next request starts clean.
func CurrentSession(c *gin.Context) (models.Session, models.AuthState) {
	store := sessions.Default(c)
	raw := store.Get(models.SessionKey)
	if raw == nil {
		return models.Session{}, models.StateAnonymous
	}

	encoded, ok := raw.(string)
	if !ok {
		ClearSession(c)
		return models.Session{}, models.StateAnonymous
	}

	var session models.Session
	if err := json.Unmarshal([]byte(encoded), &session); err != nil || session.Token == "" {
		config.Log.Warn("Data sesi rusak, sesi dibersihkan")
		ClearSession(c)
		return models.Session{}, models.StateAnonymous
	}

	if session.TokenExpired() {
		config.Log.WithField("username", session.Username).Info("Token kadaluarsa, sesi dibersihkan")
		ClearSession(c)
		return models.Session{}, models.StateAnonymous
	}

	return session, models.StateAuthenticated
}

// SaveSession persists the session entity under the fixed key
func SaveSession(c *gin.Context, session models.Session) error {
	encoded, err := json.Marshal(session)
	if err != nil {
		return err
	}
	store := sessions.Default(c)
	store.Set(models.SessionKey, string(encoded))
	return store.Save()
}

// ClearSession drops the session entity from the cookie store
func ClearSession(c *gin.Context) {
	store := sessions.Default(c)
	store.Delete(models.SessionKey)
	store.Save()
}

// LoginRequired gates a route on an authenticated session and puts the
// session on the context for the handler
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, state := CurrentSession(c)
		if state != models.StateAuthenticated {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Set("session", session)
		c.Set("username", session.Username)
		c.Set("role", session.Role)
		c.Next()
	}
}

// AdminOnly gates administrative views. Non-admins are sent back to the
// default view, not denied outright.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != "admin" {
			c.Redirect(http.StatusSeeOther, "/data")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionFromContext returns the session LoginRequired stored
func SessionFromContext(c *gin.Context) models.Session {
	if v, exists := c.Get("session"); exists {
		if session, ok := v.(models.Session); ok {
			return session
		}
	}
	return models.Session{}
}

// LogoutOn401 handles the global 401 side effect: clear the session and
// redirect to login, exactly once per request no matter how many calls
// failed. Returns whether err was a 401 and got handled.
func LogoutOn401(c *gin.Context, err error) bool {
	if !errors.Is(err, services.ErrUnauthorized) {
		return false
	}
	if !c.GetBool("loggedOut") {
		c.Set("loggedOut", true)
		ClearSession(c)
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
	}
	return true
}
