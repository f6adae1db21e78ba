package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionKey is the fixed key the session entity is stored under in the
// cookie store
const SessionKey = "user"

// AuthState is the auth store's state for the current request
type AuthState int

const (
	StateLoading AuthState = iota // before hydration ran
	StateAnonymous
	StateAuthenticated
)

// Session is the authenticated identity returned by the auth endpoints,
// held for the duration of a browser visit
type Session struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar,omitempty"`
	Token    string `json:"token"`
}

func (s Session) IsAdmin() bool { return s.Role == "admin" }

// TokenExpired peeks at the bearer token's exp claim so an expired
// session can be dropped before the API answers 401. The token is not
// verified here (the API does that); opaque tokens pass through.
func (s Session) TokenExpired() bool {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(s.Token, claims)
	if err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
