package model

import "time"

// Admin mirrors the 'admins' table. Admins authenticate against the
// login form; only the bcrypt hash of the password is stored.
type Admin struct {
	ID           uint64    // admins.id
	Username     string    // admins.username
	PasswordHash string    // admins.password_hash
	CreatedAt    time.Time // admins.created_at
}
