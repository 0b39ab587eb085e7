// Package booking implements the seat-booking engine: input validation,
// ticket-code generation and reservation creation against the store.
package booking

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/iliyamo/bus-seat-reservation/internal/model"
	"github.com/iliyamo/bus-seat-reservation/internal/pricing"
	"github.com/iliyamo/bus-seat-reservation/internal/repository"
)

// ValidationError reports a user-correctable problem with a booking
// request. Reason is one of "missing field", "not a number" or
// "out of range" and is safe to display on the form.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return "invalid booking request: " + e.Reason }

// SeatStore is the subset of the reservation store the engine needs.
// Insert must be atomic with respect to other inserts for the same
// seat; the engine's FindBySeat pre-check is a fast path only.
type SeatStore interface {
	FindBySeat(ctx context.Context, row, col int) (*model.Reservation, error)
	Insert(ctx context.Context, passengerName string, row, col int, ticket string) (*model.Reservation, error)
}

// Result is returned on a successful booking.
type Result struct {
	Reservation model.Reservation
	Price       int64
}

// Engine validates booking requests and orchestrates reservation
// creation. It performs exactly one insert per successful booking and
// no writes otherwise.
type Engine struct {
	store SeatStore
	fares *pricing.Table
}

// NewEngine returns an Engine using the given store and fare table.
func NewEngine(store SeatStore, fares *pricing.Table) *Engine {
	return &Engine{store: store, fares: fares}
}

// Book validates the raw form input and, when valid and the seat is
// free, persists a reservation. Validation fails fast: the first
// violated rule determines the returned error. Conflicts are reported
// as repository.ErrSeatTaken whether caught by the pre-check or by the
// store's atomic insert.
func (e *Engine) Book(ctx context.Context, firstName, lastName, rowText, colText string) (*Result, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	rowText = strings.TrimSpace(rowText)
	colText = strings.TrimSpace(colText)
	if firstName == "" || lastName == "" || rowText == "" || colText == "" {
		return nil, &ValidationError{Reason: "missing field"}
	}

	row, err := strconv.Atoi(rowText)
	if err != nil {
		return nil, &ValidationError{Reason: "not a number"}
	}
	col, err := strconv.Atoi(colText)
	if err != nil {
		return nil, &ValidationError{Reason: "not a number"}
	}

	if row < 1 || row > pricing.Rows || col < 1 || col > pricing.Cols {
		return nil, &ValidationError{Reason: "out of range"}
	}

	// Fast-path conflict check; the unique seat index behind Insert is
	// the authority under concurrent bookings.
	if _, err := e.store.FindBySeat(ctx, row, col); err == nil {
		return nil, repository.ErrSeatTaken
	} else if !errors.Is(err, repository.ErrReservationNotFound) {
		return nil, err
	}

	price, err := e.fares.Price(row, col)
	if err != nil {
		return nil, err
	}

	passengerName := firstName + " " + lastName
	res, err := e.store.Insert(ctx, passengerName, row, col, TicketCode(row, col))
	if err != nil {
		return nil, err
	}
	return &Result{Reservation: *res, Price: price}, nil
}
