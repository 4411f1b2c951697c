// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/eventdesk/internal/auth"
	"github.com/olegiv/eventdesk/internal/testutil"
)

func newTestGate(t *testing.T) (*AdminGate, context.Context) {
	t.Helper()

	sm := testutil.SessionManager()
	verifier, err := auth.NewStaticVerifier("admin", "password123")
	require.NoError(t, err)

	ctx, err := sm.Load(context.Background(), "")
	require.NoError(t, err)

	gate := NewAdminGate(sm, verifier)
	gate.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	return gate, ctx
}

func TestAdminGate_AnonymousByDefault(t *testing.T) {
	gate, ctx := newTestGate(t)

	_, ok := gate.Current(ctx)
	assert.False(t, ok)
}

func TestAdminGate_Login(t *testing.T) {
	gate, ctx := newTestGate(t)

	admin, err := gate.Login(ctx, "admin", "password123")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Username)

	current, ok := gate.Current(ctx)
	require.True(t, ok)
	assert.Equal(t, "admin", current.Username)
	assert.True(t, current.LoggedInAt.Equal(admin.LoggedInAt))
}

func TestAdminGate_LoginSurvivesCommit(t *testing.T) {
	sm := testutil.SessionManager()
	verifier, err := auth.NewStaticVerifier("admin", "password123")
	require.NoError(t, err)
	gate := NewAdminGate(sm, verifier)

	ctx, err := sm.Load(context.Background(), "")
	require.NoError(t, err)

	admin, err := gate.Login(ctx, "admin", "password123")
	require.NoError(t, err)

	token, _, err := sm.Commit(ctx)
	require.NoError(t, err, "session values must be encodable")
	require.NotEmpty(t, token)

	next, err := sm.Load(context.Background(), token)
	require.NoError(t, err)

	current, ok := gate.Current(next)
	require.True(t, ok, "admin must stay authenticated on the next request")
	assert.Equal(t, "admin", current.Username)
	assert.True(t, current.LoggedInAt.Equal(admin.LoggedInAt))
}

func TestAdminGate_LoginWrongPair(t *testing.T) {
	gate, ctx := newTestGate(t)

	for _, pair := range [][2]string{
		{"admin", "wrong"},
		{"root", "password123"},
		{"", ""},
	} {
		_, err := gate.Login(ctx, pair[0], pair[1])
		assert.True(t, errors.Is(err, auth.ErrInvalidCredentials), "pair %v", pair)

		_, ok := gate.Current(ctx)
		assert.False(t, ok, "pair %v must not authenticate", pair)
	}
}

func TestAdminGate_Logout(t *testing.T) {
	gate, ctx := newTestGate(t)

	_, err := gate.Login(ctx, "admin", "password123")
	require.NoError(t, err)

	require.NoError(t, gate.Logout(ctx))

	_, ok := gate.Current(ctx)
	assert.False(t, ok)
}

func TestAdminContext(t *testing.T) {
	ctx := context.Background()

	_, ok := AdminFromContext(ctx)
	assert.False(t, ok)

	ctx = WithAdmin(ctx, Admin{Username: "admin"})
	admin, ok := AdminFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "admin", admin.Username)
}
