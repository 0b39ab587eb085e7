// Package repository defines data access for reservations and admins
// along with the sentinel errors shared by its repositories. The
// sentinels let handlers distinguish user-correctable failures (a seat
// that is already taken, a reservation that no longer exists) from
// storage problems, which are returned as plain errors.
package repository

import "errors"

// ErrSeatTaken is returned when an insert collides with an existing
// reservation for the same (row, col) seat. The unique index on
// (seat_row, seat_col) makes the insert the authoritative conflict
// check; any pre-check in the booking flow is a fast path only.
var ErrSeatTaken = errors.New("seat already taken")

// ErrReservationNotFound is returned when a lookup or delete targets a
// reservation that does not exist. Handlers should translate this into
// an HTTP 404 response.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrAdminNotFound is returned when no admin row matches the given
// username. Login handlers should treat it the same as a bad password
// to avoid leaking which usernames exist.
var ErrAdminNotFound = errors.New("admin not found")
