// Package pricing provides the fixed fare lookup for the 12x4 bus layout.
package pricing

import "errors"

// Rows and Cols describe the bus layout. Every bus served by this
// application has the same shape; only the fares are configurable.
const (
	Rows = 12
	Cols = 4
)

// ErrOutOfRange is returned when a seat coordinate falls outside the
// 12x4 layout. Handlers should never see this error for validated
// input; it indicates a programming mistake upstream.
var ErrOutOfRange = errors.New("seat out of range")

// ErrInvalidConfig is returned by New when the supplied fare grid does
// not match the layout or contains non-positive prices.
var ErrInvalidConfig = errors.New("invalid fare grid")

// Table is an immutable row/column -> price lookup. It is built once at
// startup and safe for concurrent reads.
type Table struct {
	grid [Rows][Cols]int64
}

// New validates the supplied grid and returns a Table. The grid must be
// exactly Rows x Cols and every price must be positive.
func New(grid [][]int64) (*Table, error) {
	if len(grid) != Rows {
		return nil, ErrInvalidConfig
	}
	var t Table
	for i, row := range grid {
		if len(row) != Cols {
			return nil, ErrInvalidConfig
		}
		for j, price := range row {
			if price <= 0 {
				return nil, ErrInvalidConfig
			}
			t.grid[i][j] = price
		}
	}
	return &t, nil
}

// DefaultGrid returns the reference fare configuration: every row is
// priced [100, 75, 50, 100] from window to window.
func DefaultGrid() [][]int64 {
	grid := make([][]int64, Rows)
	for i := range grid {
		grid[i] = []int64{100, 75, 50, 100}
	}
	return grid
}

// Price returns the fare for the given 1-based seat coordinate. It is
// pure: the same coordinate always yields the same price for the
// lifetime of the table.
func (t *Table) Price(row, col int) (int64, error) {
	if row < 1 || row > Rows || col < 1 || col > Cols {
		return 0, ErrOutOfRange
	}
	return t.grid[row-1][col-1], nil
}
