// Package middleware provides reusable HTTP middleware: the admin
// session gate, Redis rate limiting and Redis page caching.
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bus-seat-reservation/internal/auth"
)

// SessionAuth returns middleware that validates the admin session
// cookie and injects the admin identity into the request context under
// "admin_id" and "admin_username". Requests without a valid session are
// redirected to the login page before any store access happens.
func SessionAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(auth.SessionCookie)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusFound, "/admin/login")
			}
			claims, err := auth.ParseSessionToken(secret, cookie.Value)
			if err != nil {
				return c.Redirect(http.StatusFound, "/admin/login")
			}
			c.Set("admin_id", claims.AdminID)
			c.Set("admin_username", claims.Username)
			return next(c)
		}
	}
}
