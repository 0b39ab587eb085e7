package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bus-seat-reservation/internal/auth"
	"github.com/iliyamo/bus-seat-reservation/internal/config"
	"github.com/iliyamo/bus-seat-reservation/internal/model"
	"github.com/iliyamo/bus-seat-reservation/internal/queue"
	"github.com/iliyamo/bus-seat-reservation/internal/report"
	"github.com/iliyamo/bus-seat-reservation/internal/repository"
)

// ReservationStore is the slice of the reservation repository the admin
// surface needs.
type ReservationStore interface {
	ListAll(ctx context.Context) ([]model.Reservation, error)
	DeleteByID(ctx context.Context, id uint64) error
}

// AdminStore resolves admin accounts for the login form.
type AdminStore interface {
	GetByUsername(ctx context.Context, username string) (*model.Admin, error)
}

// AdminHandler serves the admin login, dashboard and delete endpoints.
// Routes other than login/logout are protected by the session
// middleware, which populates "admin_username" in the context.
type AdminHandler struct {
	Cfg          config.Config
	Admins       AdminStore
	Store        ReservationStore
	Reporter     *report.Reporter
	Verifier     auth.CredentialVerifier
	PublishEvent func(ctx context.Context, ev queue.ReservationEvent) error
}

// NewAdminHandler constructs an AdminHandler with the default bcrypt
// credential verifier.
func NewAdminHandler(cfg config.Config, admins AdminStore, store ReservationStore, reporter *report.Reporter) *AdminHandler {
	if admins == nil || store == nil || reporter == nil {
		panic("nil dependency passed to NewAdminHandler")
	}
	return &AdminHandler{
		Cfg:      cfg,
		Admins:   admins,
		Store:    store,
		Reporter: reporter,
		Verifier: auth.BcryptVerifier{},
	}
}

// LoginPage handles GET /admin/login.
func (h *AdminHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "admin_login.html", echo.Map{})
}

// Login handles POST /admin/login. A missing admin and a wrong password
// produce the same message so usernames cannot be probed.
func (h *AdminHandler) Login(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	admin, err := h.Admins.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return c.Render(http.StatusUnauthorized, "admin_login.html", echo.Map{"Error": "invalid credentials"})
		}
		return c.String(http.StatusInternalServerError, "login failed, please try again later")
	}
	if !h.Verifier.Verify(admin.PasswordHash, password) {
		return c.Render(http.StatusUnauthorized, "admin_login.html", echo.Map{"Error": "invalid credentials"})
	}

	ttl := time.Duration(h.Cfg.SessionTTLMin) * time.Minute
	token, exp, err := auth.NewSessionToken(h.Cfg.SessionSecret, admin.ID, admin.Username, ttl)
	if err != nil {
		return c.String(http.StatusInternalServerError, "login failed, please try again later")
	}
	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusSeeOther, "/admin")
}

// Logout handles GET /admin/logout by expiring the session cookie.
func (h *AdminHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.Redirect(http.StatusSeeOther, "/")
}

// Dashboard handles GET /admin: chart, total sales and the reservation
// list, newest first.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	chart, err := h.Reporter.BuildSeatingChart(ctx)
	if err != nil {
		return c.String(http.StatusInternalServerError, "could not load the seating chart")
	}
	total, err := h.Reporter.TotalSales(ctx)
	if err != nil {
		return c.String(http.StatusInternalServerError, "could not compute total sales")
	}
	reservations, err := h.Store.ListAll(ctx)
	if err != nil {
		return c.String(http.StatusInternalServerError, "could not load reservations")
	}

	username, _ := c.Get("admin_username").(string)
	return c.Render(http.StatusOK, "admin.html", echo.Map{
		"Username":     username,
		"Chart":        chart,
		"TotalSales":   total,
		"Reservations": reservations,
		"Notice":       c.QueryParam("notice"),
	})
}

// Delete handles POST /admin/delete/:id. A missing reservation yields
// 404; success redirects back to the dashboard with a confirmation.
func (h *AdminHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.String(http.StatusBadRequest, "invalid reservation id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Store.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return c.String(http.StatusNotFound, "reservation not found")
		}
		return c.String(http.StatusInternalServerError, "delete failed, please try again later")
	}

	if h.PublishEvent != nil {
		_ = h.PublishEvent(ctx, queue.ReservationEvent{
			Type:          queue.TypeCancelled,
			ReservationID: id,
			OccurredAt:    time.Now().UTC().Format(time.RFC3339),
		})
	}

	msg := "reservation " + strconv.FormatUint(id, 10) + " deleted"
	return c.Redirect(http.StatusSeeOther, "/admin?notice="+url.QueryEscape(msg))
}
