// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/bus-seat-reservation/internal/config"
	"github.com/iliyamo/bus-seat-reservation/internal/handler"
	"github.com/iliyamo/bus-seat-reservation/internal/middleware"
)

// Options carries the cross-cutting dependencies route registration
// needs: the session secret for the admin gate and the optional Redis
// client powering rate limiting and page caching. Redis may be nil, in
// which case both middlewares are pass-throughs.
type Options struct {
	SessionSecret string
	Redis         *redis.Client
	RateLimit     config.RateLimitConfig
	Cache         config.CacheConfig
}

// Register mounts all application routes on the Echo instance. The
// login and logout endpoints intentionally sit outside the gated group:
// they must be reachable without a session.
func Register(e *echo.Echo, pub *handler.PublicHandler, adm *handler.AdminHandler, opts Options) {
	e.GET("/healthz", handler.Health)

	e.GET("/", pub.Landing)
	e.GET("/reserve", pub.ReservePage, middleware.PageCache(opts.Cache, opts.Redis))
	e.POST("/reserve", pub.CreateReservation, middleware.RateLimit(opts.RateLimit, opts.Redis))

	e.GET("/admin/login", adm.LoginPage)
	e.POST("/admin/login", adm.Login)
	e.GET("/admin/logout", adm.Logout)

	gated := e.Group("/admin", middleware.SessionAuth(opts.SessionSecret))
	gated.GET("", adm.Dashboard)
	gated.POST("/delete/:id", adm.Delete)
}
