package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"frontend-go/models"
	"frontend-go/services"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("mysession", store))
	return r
}

// loginCookie logs a fake session in through a helper route and returns
// the resulting cookie header.
func loginCookie(t *testing.T, r *gin.Engine, session models.Session) string {
	t.Helper()
	r.GET("/__login", func(c *gin.Context) {
		if err := SaveSession(c, session); err != nil {
			t.Fatalf("SaveSession: %v", err)
		}
		c.Status(http.StatusOK)
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/__login", nil)
	r.ServeHTTP(w, req)
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("tidak ada cookie sesi")
	}
	return cookies[0].String()
}

func TestCurrentSessionAnonymousWhenEmpty(t *testing.T) {
	r := newTestRouter()
	r.GET("/whoami", func(c *gin.Context) {
		_, state := CurrentSession(c)
		if state != models.StateAnonymous {
			t.Fatalf("state = %v, ingin anonymous", state)
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestCurrentSessionMalformedCleared(t *testing.T) {
	r := newTestRouter()
	r.GET("/__corrupt", func(c *gin.Context) {
		store := sessions.Default(c)
		store.Set(models.SessionKey, "{bukan json")
		store.Save()
		c.Status(http.StatusOK)
	})
	r.GET("/whoami", func(c *gin.Context) {
		_, state := CurrentSession(c)
		if state != models.StateAnonymous {
			t.Fatalf("state = %v, ingin anonymous", state)
		}
		// Data rusak harus sudah dibuang dari store.
		if sessions.Default(c).Get(models.SessionKey) != nil {
			t.Fatal("data sesi rusak tidak dibersihkan")
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/__corrupt", nil))
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("tidak ada cookie")
	}

	w2 := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Cookie", cookies[0].String())
	r.ServeHTTP(w2, req)
	if w2.Code != http.StatusOK {
		t.Fatalf("status = %d", w2.Code)
	}
}

func TestLoginRequired(t *testing.T) {
	r := newTestRouter()
	protected := r.Group("/data", LoginRequired())
	protected.GET("", func(c *gin.Context) {
		c.String(http.StatusOK, SessionFromContext(c).Username)
	})

	t.Run("tanpa sesi", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/data", nil))
		if w.Code != http.StatusSeeOther {
			t.Fatalf("status = %d, ingin 303", w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/login" {
			t.Fatalf("Location = %q", loc)
		}
	})

	t.Run("dengan sesi", func(t *testing.T) {
		cookieHeader := loginCookie(t, r, models.Session{
			ID: "u1", Username: "budi", Role: "user", Token: "opaque-token",
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/data", nil)
		req.Header.Set("Cookie", cookieHeader)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if w.Body.String() != "budi" {
			t.Fatalf("body = %q", w.Body.String())
		}
	})
}

func TestAdminOnlyRedirectsNonAdmin(t *testing.T) {
	r := newTestRouter()
	admin := r.Group("/users", LoginRequired(), AdminOnly())
	admin.GET("", func(c *gin.Context) { c.Status(http.StatusOK) })

	cookieHeader := loginCookie(t, r, models.Session{
		ID: "u2", Username: "siti", Role: "user", Token: "opaque-token",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Cookie", cookieHeader)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, ingin 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/data" {
		t.Fatalf("Location = %q", loc)
	}
}

func TestAdminOnlyAllowsAdmin(t *testing.T) {
	r := newTestRouter()
	admin := r.Group("/users", LoginRequired(), AdminOnly())
	admin.GET("", func(c *gin.Context) { c.Status(http.StatusOK) })

	cookieHeader := loginCookie(t, r, models.Session{
		ID: "a1", Username: "admin", Role: "admin", Token: "opaque-token",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Cookie", cookieHeader)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestLogoutOn401ExactlyOnce(t *testing.T) {
	r := newTestRouter()
	r.GET("/page", func(c *gin.Context) {
		// Dua panggilan API gagal 401 pada request yang sama.
		if !LogoutOn401(c, services.ErrUnauthorized) {
			t.Fatal("401 pertama tidak ditangani")
		}
		if !LogoutOn401(c, services.ErrUnauthorized) {
			t.Fatal("401 kedua tidak dilaporkan tertangani")
		}
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/page", nil))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, ingin 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Fatalf("Location = %q", loc)
	}
}

func TestLogoutOn401IgnoresOtherErrors(t *testing.T) {
	r := newTestRouter()
	r.GET("/page", func(c *gin.Context) {
		if LogoutOn401(c, errors.New("network down")) {
			t.Fatal("error biasa dianggap 401")
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/page", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}
