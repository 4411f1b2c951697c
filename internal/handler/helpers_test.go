package handler

import (
	"context"
	"database/sql"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/eventdesk/internal/auth"
	"github.com/olegiv/eventdesk/internal/render"
	"github.com/olegiv/eventdesk/internal/service"
	"github.com/olegiv/eventdesk/internal/session"
	"github.com/olegiv/eventdesk/internal/store"
	"github.com/olegiv/eventdesk/internal/testutil"
	"github.com/olegiv/eventdesk/web"
)

const (
	testAdminUser     = "admin"
	testAdminPassword = "password123"
)

// recordingNotifier captures confirmations instead of sending mail.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []store.Booking
	err  error
}

func (n *recordingNotifier) BookingCreated(_ context.Context, b store.Booking) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, b)
	return n.err
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

// testApp is a running server with every route mounted.
type testApp struct {
	server   *httptest.Server
	client   *http.Client
	db       *sql.DB
	notifier *recordingNotifier
}

type testAppOption func(*Dependencies)

func newTestApp(t *testing.T, opts ...testAppOption) *testApp {
	t.Helper()

	db := testutil.TestDB(t)
	sm := testutil.SessionManager()

	renderer, err := render.New(render.Config{
		TemplatesFS:    web.Templates(),
		SessionManager: sm,
		IsDev:          true,
	})
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	verifier, err := auth.NewStaticVerifier(testAdminUser, testAdminPassword)
	if err != nil {
		t.Fatalf("NewStaticVerifier: %v", err)
	}

	validator, err := service.NewBookingValidator("US")
	if err != nil {
		t.Fatalf("NewBookingValidator: %v", err)
	}

	notifier := &recordingNotifier{}
	events := service.NewEventService(db)

	deps := Dependencies{
		DB:        db,
		Renderer:  renderer,
		Gate:      session.NewAdminGate(sm, verifier),
		Validator: validator,
		Bookings:  service.NewBookingService(db, notifier, events, testutil.TestLogger()),
		Events:    events,
		StaticFS:  web.Static(),
	}
	for _, opt := range opts {
		opt(&deps)
	}

	r := chi.NewRouter()
	r.Use(sm.LoadAndSave)
	RegisterRoutes(r, deps)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &testApp{server: server, client: client, db: db, notifier: notifier}
}

func (a *testApp) get(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := a.client.Get(a.server.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func (a *testApp) post(t *testing.T, path string, form url.Values) *http.Response {
	t.Helper()
	resp, err := a.client.PostForm(a.server.URL+path, form)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func (a *testApp) login(t *testing.T) {
	t.Helper()
	resp := a.post(t, RouteLogin, url.Values{
		"username": {testAdminUser},
		"password": {testAdminPassword},
	})
	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != RouteAdmin {
		t.Fatalf("login: status %d location %q", resp.StatusCode, resp.Header.Get("Location"))
	}
}

func (a *testApp) bookingCount(t *testing.T) int64 {
	t.Helper()
	n, err := store.New(a.db).CountBookings(t.Context())
	if err != nil {
		t.Fatalf("CountBookings: %v", err)
	}
	return n
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return string(b)
}

func validBookingForm() url.Values {
	return url.Values{
		"name":       {"Ana"},
		"email":      {"ana@x.com"},
		"phone":      {"555"},
		"event_type": {"wedding"},
		"date":       {"2024-06-01"},
		"time":       {"14:00"},
	}
}
