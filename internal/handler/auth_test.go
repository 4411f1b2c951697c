package handler

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/eventdesk/internal/service"
)

func TestLogin_Success(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	resp := app.get(t, RouteAdmin)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Admin Dashboard")
	assert.Contains(t, body, msgLoggedIn)
}

func TestLogin_EstablishesSession(t *testing.T) {
	app := newTestApp(t)

	resp := app.post(t, RouteLogin, url.Values{
		"username": {testAdminUser},
		"password": {testAdminPassword},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, RouteAdmin, resp.Header.Get("Location"))
	assert.NotEmpty(t, resp.Cookies(), "login must set a session cookie")

	for _, path := range []string{RouteAdmin, RouteAPIBookings, RouteAdminExport} {
		got := app.get(t, path)
		assert.Equal(t, http.StatusOK, got.StatusCode, "GET %s after login", path)
	}
}

type failingAuthEvents struct{}

func (failingAuthEvents) LogAuthEvent(context.Context, string, string, string, map[string]any) error {
	return errors.New("database is locked")
}

func TestLogAuthEvent_LogsFailure(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	h := &AuthHandler{events: failingAuthEvents{}}
	h.logAuthEvent(context.Background(), "info", "Admin logged in", "127.0.0.1", nil)

	out := buf.String()
	assert.Contains(t, out, "audit event not recorded")
	assert.Contains(t, out, "database is locked")
}

func TestLogin_WrongCredentials(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", testAdminUser, "nope"},
		{"wrong username", "root", testAdminPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := app.post(t, RouteLogin, url.Values{
				"username": {tt.username},
				"password": {tt.password},
			})
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Contains(t, readBody(t, resp), msgBadCredentials)

			// An incorrect pair never establishes a session.
			admin := app.get(t, RouteAdmin)
			assert.Equal(t, http.StatusSeeOther, admin.StatusCode)
			assert.Equal(t, RouteLogin, admin.Header.Get("Location"))
		})
	}
}

func TestLogin_MissingFields(t *testing.T) {
	app := newTestApp(t)

	resp := app.post(t, RouteLogin, url.Values{"username": {"  "}})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Username is required")
	assert.Contains(t, body, "Password is required")
}

func TestLogin_RecordsAuthEvents(t *testing.T) {
	app := newTestApp(t)

	app.post(t, RouteLogin, url.Values{"username": {testAdminUser}, "password": {"bad"}})
	app.login(t)

	events, err := service.NewEventService(app.db).RecentEvents(t.Context(), 10)
	require.NoError(t, err)

	var messages []string
	for _, e := range events {
		if e.Category == "auth" {
			messages = append(messages, e.Message)
		}
	}
	assert.Contains(t, messages, "Admin login failed")
	assert.Contains(t, messages, "Admin logged in")
}

func TestLoginForm_RedirectsWhenLoggedIn(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	resp := app.get(t, RouteLogin)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, RouteAdmin, resp.Header.Get("Location"))
}

func TestLogout(t *testing.T) {
	app := newTestApp(t)
	app.login(t)

	resp := app.get(t, RouteLogout)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, RouteHome, resp.Header.Get("Location"))

	home := app.get(t, RouteHome)
	assert.Contains(t, readBody(t, home), msgLoggedOut)

	admin := app.get(t, RouteAdmin)
	assert.Equal(t, http.StatusSeeOther, admin.StatusCode)
	assert.Equal(t, RouteLogin, admin.Header.Get("Location"))
}
