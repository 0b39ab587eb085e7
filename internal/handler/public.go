package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bus-seat-reservation/internal/booking"
	"github.com/iliyamo/bus-seat-reservation/internal/queue"
	"github.com/iliyamo/bus-seat-reservation/internal/report"
	"github.com/iliyamo/bus-seat-reservation/internal/repository"
)

// PublicHandler serves the landing page and the booking flow. It holds
// the booking engine and reporter rather than raw repositories so the
// seat-uniqueness and pricing rules live in one place. PublishEvent is
// optional; when set, successful bookings emit a broker event on a
// best-effort basis.
type PublicHandler struct {
	Engine       *booking.Engine
	Reporter     *report.Reporter
	PublishEvent func(ctx context.Context, ev queue.ReservationEvent) error
}

// NewPublicHandler constructs a PublicHandler. Engine and Reporter must
// be non-nil.
func NewPublicHandler(engine *booking.Engine, reporter *report.Reporter) *PublicHandler {
	if engine == nil || reporter == nil {
		panic("nil dependency passed to NewPublicHandler")
	}
	return &PublicHandler{Engine: engine, Reporter: reporter}
}

// Landing handles GET /.
func (h *PublicHandler) Landing(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", nil)
}

// ReservePage handles GET /reserve. It renders the live seating chart
// together with any flash message from a preceding redirect.
func (h *PublicHandler) ReservePage(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	chart, err := h.Reporter.BuildSeatingChart(ctx)
	if err != nil {
		return c.String(http.StatusInternalServerError, "could not load the seating chart")
	}
	return c.Render(http.StatusOK, "reserve.html", echo.Map{
		"Chart":  chart,
		"Error":  c.QueryParam("error"),
		"Notice": c.QueryParam("notice"),
	})
}

// CreateReservation handles POST /reserve. Validation and seat
// conflicts redirect back to the form with a message; success renders
// the confirmation page.
func (h *PublicHandler) CreateReservation(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	result, err := h.Engine.Book(ctx,
		c.FormValue("first_name"),
		c.FormValue("last_name"),
		c.FormValue("seat_row"),
		c.FormValue("seat_col"),
	)
	if err != nil {
		var verr *booking.ValidationError
		switch {
		case errors.As(err, &verr):
			return redirectWithError(c, "/reserve", verr.Reason)
		case errors.Is(err, repository.ErrSeatTaken):
			return redirectWithError(c, "/reserve", "that seat is already taken, please pick another")
		default:
			return c.String(http.StatusInternalServerError, "booking failed, please try again later")
		}
	}

	if h.PublishEvent != nil {
		res := result.Reservation
		_ = h.PublishEvent(ctx, queue.ReservationEvent{
			Type:          queue.TypeBooked,
			ReservationID: res.ID,
			PassengerName: res.PassengerName,
			SeatRow:       res.SeatRow,
			SeatCol:       res.SeatCol,
			ETicketNumber: res.ETicketNumber,
			Price:         result.Price,
			OccurredAt:    time.Now().UTC().Format(time.RFC3339),
		})
	}

	return c.Render(http.StatusOK, "confirmation.html", echo.Map{
		"PassengerName": result.Reservation.PassengerName,
		"SeatRow":       result.Reservation.SeatRow,
		"SeatCol":       result.Reservation.SeatCol,
		"ETicketNumber": result.Reservation.ETicketNumber,
		"Price":         result.Price,
	})
}

// redirectWithError sends the browser back to path with the message in
// the query string; the target page renders it as a flash banner.
func redirectWithError(c echo.Context, path, msg string) error {
	return c.Redirect(http.StatusSeeOther, path+"?error="+url.QueryEscape(msg))
}
