package model

import "time"

// Reservation mirrors the 'reservations' table. A reservation binds one
// passenger to one seat on the fixed 12x4 layout. Rows are never
// updated after insertion; they are only created and deleted.
//
// Fields:
//  ID            – primary key identifier, assigned by the database.
//  PassengerName – full passenger name as entered on the booking form.
//  SeatRow       – 1-based row on the bus (1..12).
//  SeatCol       – 1-based column on the bus (1..4).
//  ETicketNumber – human-readable confirmation code (BUS-row-col-XXXXXX).
//  CreatedAt     – insertion timestamp, database clock, UTC.
type Reservation struct {
	ID            uint64    // reservations.id
	PassengerName string    // reservations.passenger_name
	SeatRow       int       // reservations.seat_row
	SeatCol       int       // reservations.seat_col
	ETicketNumber string    // reservations.e_ticket_number
	CreatedAt     time.Time // reservations.created_at
}
