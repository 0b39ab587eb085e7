package handler_test

// Test fixture: a full Echo app wired through the real router with an
// in-memory reservation store and a seeded admin, exercising the same
// paths a browser would hit.

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bus-seat-reservation/internal/auth"
	"github.com/iliyamo/bus-seat-reservation/internal/booking"
	"github.com/iliyamo/bus-seat-reservation/internal/config"
	"github.com/iliyamo/bus-seat-reservation/internal/handler"
	"github.com/iliyamo/bus-seat-reservation/internal/model"
	"github.com/iliyamo/bus-seat-reservation/internal/pricing"
	"github.com/iliyamo/bus-seat-reservation/internal/report"
	"github.com/iliyamo/bus-seat-reservation/internal/repository"
	"github.com/iliyamo/bus-seat-reservation/internal/router"
	"github.com/iliyamo/bus-seat-reservation/internal/view"
)

const testSecret = "test-secret"

// memStore is an in-memory reservation store covering the engine,
// reporter and admin interfaces.
type memStore struct {
	mu     sync.Mutex
	byID   map[uint64]model.Reservation
	nextID uint64
}

func newMemStore() *memStore { return &memStore{byID: make(map[uint64]model.Reservation)} }

func (s *memStore) FindBySeat(ctx context.Context, row, col int) (*model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, res := range s.byID {
		if res.SeatRow == row && res.SeatCol == col {
			r := res
			return &r, nil
		}
	}
	return nil, repository.ErrReservationNotFound
}

func (s *memStore) Insert(ctx context.Context, passengerName string, row, col int, ticket string) (*model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, res := range s.byID {
		if res.SeatRow == row && res.SeatCol == col {
			return nil, repository.ErrSeatTaken
		}
	}
	s.nextID++
	res := model.Reservation{
		ID:            s.nextID,
		PassengerName: passengerName,
		SeatRow:       row,
		SeatCol:       col,
		ETicketNumber: ticket,
		CreatedAt:     time.Now().UTC(),
	}
	s.byID[res.ID] = res
	return &res, nil
}

func (s *memStore) ListAll(ctx context.Context) ([]model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Reservation, 0, len(s.byID))
	for _, res := range s.byID {
		out = append(out, res)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *memStore) DeleteByID(ctx context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return repository.ErrReservationNotFound
	}
	delete(s.byID, id)
	return nil
}

func (s *memStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

// fakeAdmins serves a single seeded admin account.
type fakeAdmins struct {
	admin model.Admin
}

func (f *fakeAdmins) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	if strings.ToLower(strings.TrimSpace(username)) == f.admin.Username {
		a := f.admin
		return &a, nil
	}
	return nil, repository.ErrAdminNotFound
}

type testApp struct {
	e     *echo.Echo
	store *memStore
	pub   *handler.PublicHandler
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	fares, err := pricing.New(pricing.DefaultGrid())
	if err != nil {
		t.Fatalf("pricing.New: %v", err)
	}
	store := newMemStore()
	engine := booking.NewEngine(store, fares)
	reporter := report.NewReporter(store, fares)

	hash, err := auth.HashPassword("hunter2", 4)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	admins := &fakeAdmins{admin: model.Admin{ID: 1, Username: "root", PasswordHash: hash}}

	cfg := config.Config{SessionSecret: testSecret, SessionTTLMin: 30, BcryptCost: 4}
	pub := handler.NewPublicHandler(engine, reporter)
	adm := handler.NewAdminHandler(cfg, admins, store, reporter)

	renderer, err := view.New()
	if err != nil {
		t.Fatalf("view.New: %v", err)
	}
	e := echo.New()
	e.Renderer = renderer
	router.Register(e, pub, adm, router.Options{SessionSecret: testSecret})
	return &testApp{e: e, store: store, pub: pub}
}

func (a *testApp) get(target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) postForm(target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

// login authenticates as the seeded admin and returns the session cookie.
func (a *testApp) login(t *testing.T) *http.Cookie {
	t.Helper()
	rec := a.postForm("/admin/login", url.Values{
		"username": {"root"},
		"password": {"hunter2"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("login status: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.SessionCookie && c.Value != "" {
			return c
		}
	}
	t.Fatal("login response carries no session cookie")
	return nil
}

func bookingForm(first, last, row, col string) url.Values {
	return url.Values{
		"first_name": {first},
		"last_name":  {last},
		"seat_row":   {row},
		"seat_col":   {col},
	}
}
