package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bus-seat-reservation/internal/auth"
)

func TestSessionAuthRedirectsWithoutCookie(t *testing.T) {
	t.Parallel()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	h := SessionAuth("secret")(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if called {
		t.Error("next handler ran without a session")
	}
	if rec.Code != http.StatusFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusFound)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/login" {
		t.Errorf("redirect: got %q, want /admin/login", loc)
	}
}

func TestSessionAuthRejectsTamperedToken(t *testing.T) {
	t.Parallel()
	token, _, err := auth.NewSessionToken("other-secret", 1, "root", time.Hour)
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := SessionAuth("secret")(func(c echo.Context) error {
		t.Fatal("next handler ran with a tampered token")
		return nil
	})
	if err := h(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusFound)
	}
}

func TestSessionAuthInjectsIdentity(t *testing.T) {
	t.Parallel()
	token, _, err := auth.NewSessionToken("secret", 9, "root", time.Hour)
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := SessionAuth("secret")(func(c echo.Context) error {
		if got, _ := c.Get("admin_id").(uint64); got != 9 {
			t.Errorf("admin_id: got %d, want 9", got)
		}
		if got, _ := c.Get("admin_username").(string); got != "root" {
			t.Errorf("admin_username: got %q, want %q", got, "root")
		}
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
}
