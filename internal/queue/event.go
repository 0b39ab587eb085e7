// Package queue defines the reservation event payload exchanged over
// the message broker and the background consumer that records it.
package queue

// Event types published on the reservation.events queue.
const (
	TypeBooked    = "reservation.booked"
	TypeCancelled = "reservation.cancelled"
)

// ReservationEvent is published when a reservation is created or
// deleted. It carries enough information for downstream consumers to
// log or notify without querying the primary database. For cancelled
// events only ReservationID and OccurredAt are guaranteed to be set.
type ReservationEvent struct {
	Type          string `json:"type"`
	ReservationID uint64 `json:"reservation_id"`
	PassengerName string `json:"passenger_name,omitempty"`
	SeatRow       int    `json:"seat_row,omitempty"`
	SeatCol       int    `json:"seat_col,omitempty"`
	ETicketNumber string `json:"e_ticket_number,omitempty"`
	Price         int64  `json:"price,omitempty"`
	OccurredAt    string `json:"occurred_at"`
}
