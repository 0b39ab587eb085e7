package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/bus-seat-reservation/internal/model"
)

// ReservationRepo provides CRUD operations for reservations. The
// reservations table carries a unique index on (seat_row, seat_col), so
// two concurrent bookings for the same seat cannot both succeed: the
// loser's INSERT fails with a duplicate-key error which is mapped to
// ErrSeatTaken. All timestamps are stored in UTC.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// ListAll returns every reservation ordered by creation time, newest
// first. The id tiebreak keeps the order stable for rows created within
// the same second.
func (r *ReservationRepo) ListAll(ctx context.Context) ([]model.Reservation, error) {
	const q = `SELECT id, passenger_name, seat_row, seat_col, e_ticket_number, created_at
	           FROM reservations
	           ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Reservation, 0)
	for rows.Next() {
		var res model.Reservation
		if err := rows.Scan(
			&res.ID, &res.PassengerName, &res.SeatRow, &res.SeatCol,
			&res.ETicketNumber, &res.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// FindBySeat returns the reservation occupying the given seat, or
// ErrReservationNotFound when the seat is free.
func (r *ReservationRepo) FindBySeat(ctx context.Context, row, col int) (*model.Reservation, error) {
	const q = `SELECT id, passenger_name, seat_row, seat_col, e_ticket_number, created_at
	           FROM reservations WHERE seat_row = ? AND seat_col = ? LIMIT 1`
	var res model.Reservation
	err := r.db.QueryRowContext(ctx, q, row, col).Scan(
		&res.ID, &res.PassengerName, &res.SeatRow, &res.SeatCol,
		&res.ETicketNumber, &res.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return &res, nil
}

// Insert creates a reservation and returns the stored row with its
// database-assigned id and timestamp. A duplicate-key failure on the
// seat index is returned as ErrSeatTaken.
func (r *ReservationRepo) Insert(ctx context.Context, passengerName string, row, col int, ticket string) (*model.Reservation, error) {
	const q = `INSERT INTO reservations (passenger_name, seat_row, seat_col, e_ticket_number)
	           VALUES (?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, q, passengerName, row, col, ticket)
	if err != nil {
		// MySQL 1062 = duplicate entry for a unique key.
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return nil, ErrSeatTaken
		}
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	// Query back the full row to pick up the database-side timestamp.
	const sel = `SELECT id, passenger_name, seat_row, seat_col, e_ticket_number, created_at
	             FROM reservations WHERE id = ?`
	var res model.Reservation
	if err := r.db.QueryRowContext(ctx, sel, id).Scan(
		&res.ID, &res.PassengerName, &res.SeatRow, &res.SeatCol,
		&res.ETicketNumber, &res.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &res, nil
}

// DeleteByID removes a reservation. It returns ErrReservationNotFound
// when no row with the given id exists.
func (r *ReservationRepo) DeleteByID(ctx context.Context, id uint64) error {
	const q = `DELETE FROM reservations WHERE id = ?`
	result, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrReservationNotFound
	}
	return nil
}

// CountAll returns the number of live reservations.
func (r *ReservationRepo) CountAll(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reservations`).Scan(&n)
	return n, err
}
