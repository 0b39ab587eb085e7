// Command adminctl seeds or updates an admin account. It hashes the
// password with bcrypt and upserts the row, so it can both create the
// first admin and rotate an existing password.
//
//	adminctl -username root -password 's3cret'
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/iliyamo/bus-seat-reservation/internal/auth"
	"github.com/iliyamo/bus-seat-reservation/internal/config"
	"github.com/iliyamo/bus-seat-reservation/internal/database"
	"github.com/iliyamo/bus-seat-reservation/internal/repository"
)

func main() {
	username := flag.String("username", "", "admin username")
	password := flag.String("password", "", "admin password (will be bcrypt-hashed)")
	flag.Parse()
	if *username == "" || *password == "" {
		log.Fatal("both -username and -password are required")
	}

	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	hash, err := auth.HashPassword(*password, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := repository.NewAdminRepo(db).Upsert(ctx, *username, hash); err != nil {
		log.Fatalf("upsert admin: %v", err)
	}
	log.Printf("admin %q ready", *username)
}
