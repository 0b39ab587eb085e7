package handler_test

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"testing"
)

func TestAdminDashboardRequiresSession(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	rec := app.get("/admin")
	if rec.Code != http.StatusFound {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusFound)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/login" {
		t.Errorf("redirect: got %q, want /admin/login", loc)
	}
}

func TestDeleteRequiresSession(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	if _, err := app.store.Insert(context.Background(), "Ada Lovelace", 5, 2, "BUS-5-2-AAAAAA"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	rec := app.postForm("/admin/delete/1", url.Values{})
	if rec.Code != http.StatusFound {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusFound)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/login" {
		t.Errorf("redirect: got %q, want /admin/login", loc)
	}
	if app.store.count() != 1 {
		t.Errorf("store size: got %d, want 1 (unauthenticated delete must not touch the store)", app.store.count())
	}
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	cases := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "root", "wrong"},
		{"unknown user", "nobody", "hunter2"},
	}
	for _, tc := range cases {
		rec := app.postForm("/admin/login", url.Values{
			"username": {tc.username},
			"password": {tc.password},
		})
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: status got %d, want %d", tc.name, rec.Code, http.StatusUnauthorized)
		}
		if !strings.Contains(rec.Body.String(), "invalid credentials") {
			t.Errorf("%s: body misses the error message", tc.name)
		}
	}
}

func TestAdminLoginAndDashboard(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	if _, err := app.store.Insert(context.Background(), "Ada Lovelace", 5, 2, "BUS-5-2-AAAAAA"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	cookie := app.login(t)

	rec := app.get("/admin", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard status: got %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Total sales: 75") {
		t.Error("dashboard misses the total sales figure")
	}
	if !strings.Contains(body, "Ada Lovelace") {
		t.Error("dashboard misses the reservation list entry")
	}
	if !strings.Contains(body, "Signed in as root") {
		t.Error("dashboard misses the signed-in banner")
	}
}

func TestAdminDeleteMissingReservation(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	cookie := app.login(t)

	rec := app.postForm("/admin/delete/9999", url.Values{}, cookie)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
	if app.store.count() != 0 {
		t.Errorf("store size: got %d, want 0", app.store.count())
	}
}

func TestAdminDeleteSuccess(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	res, err := app.store.Insert(context.Background(), "Ada Lovelace", 5, 2, "BUS-5-2-AAAAAA")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	cookie := app.login(t)

	rec := app.postForm("/admin/delete/"+strconv.FormatUint(res.ID, 10), url.Values{}, cookie)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); !strings.HasPrefix(loc, "/admin?notice=") {
		t.Errorf("redirect: got %q, want /admin?notice=...", loc)
	}
	if app.store.count() != 0 {
		t.Errorf("store size: got %d, want 0", app.store.count())
	}

	// The freed seat is bookable again.
	if rec := app.postForm("/reserve", bookingForm("Grace", "Hopper", "5", "2")); rec.Code != http.StatusOK {
		t.Errorf("rebooking freed seat: got %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestAdminLogoutClearsCookie(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	cookie := app.login(t)

	rec := app.get("/admin/logout", cookie)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("logout status: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookie.Name && c.Value == "" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("logout did not expire the session cookie")
	}
}
