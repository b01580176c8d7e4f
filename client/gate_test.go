package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate_Guard(t *testing.T) {
	t.Run("no admin token redirects", func(t *testing.T) {
		gate := NewGate(NewMemoryStore(), "")
		assert.Equal(t, Decision{Outcome: Redirect, Location: "/admin/login"}, gate.Guard(true))
	})

	t.Run("custom login route", func(t *testing.T) {
		gate := NewGate(NewMemoryStore(), "/portal/admin-login")
		assert.Equal(t, "/portal/admin-login", gate.Guard(true).Location)
	})

	t.Run("admin token renders", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Set(KeyAdminToken, "admin-tok"))
		assert.Equal(t, Decision{Outcome: Render}, NewGate(store, "").Guard(true))
	})

	t.Run("registrant token is not enough", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Set(KeyToken, "user-tok"))
		assert.Equal(t, Redirect, NewGate(store, "").Guard(true).Outcome)
	})

	t.Run("open routes always render", func(t *testing.T) {
		assert.Equal(t, Render, NewGate(NewMemoryStore(), "").Guard(false).Outcome)
	})
}
