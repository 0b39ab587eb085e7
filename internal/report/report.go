// Package report derives the seating chart and revenue figures from the
// live reservation set. Nothing here is cached: every call takes a
// fresh snapshot so deletions are reflected immediately.
package report

import (
	"context"

	"github.com/iliyamo/bus-seat-reservation/internal/model"
	"github.com/iliyamo/bus-seat-reservation/internal/pricing"
)

// ReservationLister is the read-only view of the store the reporter
// needs.
type ReservationLister interface {
	ListAll(ctx context.Context) ([]model.Reservation, error)
}

// SeatCell describes one seat in the chart. OccupantName is empty for a
// free seat.
type SeatCell struct {
	Row          int
	Col          int
	Reserved     bool
	OccupantName string
	Price        int64
}

// Reporter builds chart and sales views over the reservation store.
type Reporter struct {
	store ReservationLister
	fares *pricing.Table
}

// NewReporter returns a Reporter using the given store and fare table.
func NewReporter(store ReservationLister, fares *pricing.Table) *Reporter {
	return &Reporter{store: store, fares: fares}
}

// BuildSeatingChart returns all 48 seats in row-major order (row 1
// col 1..4, then row 2, and so on). The chart is built from a single
// store snapshot, so its ordering is deterministic regardless of how
// the store returns rows.
func (r *Reporter) BuildSeatingChart(ctx context.Context) ([]SeatCell, error) {
	reservations, err := r.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	type seat struct{ row, col int }
	occupied := make(map[seat]string, len(reservations))
	for _, res := range reservations {
		occupied[seat{res.SeatRow, res.SeatCol}] = res.PassengerName
	}

	cells := make([]SeatCell, 0, pricing.Rows*pricing.Cols)
	for row := 1; row <= pricing.Rows; row++ {
		for col := 1; col <= pricing.Cols; col++ {
			price, err := r.fares.Price(row, col)
			if err != nil {
				return nil, err
			}
			name, taken := occupied[seat{row, col}]
			cells = append(cells, SeatCell{
				Row:          row,
				Col:          col,
				Reserved:     taken,
				OccupantName: name,
				Price:        price,
			})
		}
	}
	return cells, nil
}

// TotalSales sums the configured fare over every current reservation.
func (r *Reporter) TotalSales(ctx context.Context) (int64, error) {
	reservations, err := r.store.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, res := range reservations {
		price, err := r.fares.Price(res.SeatRow, res.SeatCol)
		if err != nil {
			return 0, err
		}
		total += price
	}
	return total, nil
}
