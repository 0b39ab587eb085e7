package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bus-seat-reservation/internal/booking"
	"github.com/iliyamo/bus-seat-reservation/internal/config"
	"github.com/iliyamo/bus-seat-reservation/internal/database"
	"github.com/iliyamo/bus-seat-reservation/internal/handler"
	"github.com/iliyamo/bus-seat-reservation/internal/pricing"
	"github.com/iliyamo/bus-seat-reservation/internal/queue"
	"github.com/iliyamo/bus-seat-reservation/internal/report"
	"github.com/iliyamo/bus-seat-reservation/internal/repository"
	"github.com/iliyamo/bus-seat-reservation/internal/router"
	queue_publisher "github.com/iliyamo/bus-seat-reservation/internal/service"
	"github.com/iliyamo/bus-seat-reservation/internal/view"
)

func main() {
	_ = godotenv.Load() // optional .env for local development
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	fares, err := pricing.New(fareGrid(cfg))
	if err != nil {
		log.Fatalf("pricing: %v", err)
	}

	reservations := repository.NewReservationRepo(db)
	admins := repository.NewAdminRepo(db)
	engine := booking.NewEngine(reservations, fares)
	reporter := report.NewReporter(reservations, fares)

	pub := handler.NewPublicHandler(engine, reporter)
	pub.PublishEvent = queue_publisher.Publish
	adm := handler.NewAdminHandler(cfg, admins, reservations, reporter)
	adm.PublishEvent = queue_publisher.Publish

	renderer, err := view.New()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}

	e := echo.New()
	e.Renderer = renderer
	router.Register(e, pub, adm, router.Options{
		SessionSecret: cfg.SessionSecret,
		Redis:         config.NewRedisClient(),
		RateLimit:     config.LoadRateLimitConfig(),
		Cache:         config.LoadCacheConfig(),
	})

	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			log.Printf("reservation consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// fareGrid builds the 12x4 price grid from config. FARE_COLUMNS, when
// set, replaces the per-row template; the reference grid prices every
// row [100, 75, 50, 100].
func fareGrid(cfg config.Config) [][]int64 {
	if len(cfg.FareColumns) == 0 {
		return pricing.DefaultGrid()
	}
	grid := make([][]int64, pricing.Rows)
	for i := range grid {
		grid[i] = cfg.FareColumns
	}
	return grid
}
