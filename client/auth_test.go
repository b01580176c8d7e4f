package client

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"smartcity-portal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminLoginAndLogout(t *testing.T) {
	api := newFakeAPI(t)
	var loggedOut atomic.Bool
	api.mux.HandleFunc("POST /auth/admin/login", func(w http.ResponseWriter, r *http.Request) {
		var req model.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Password != "AdminPass1" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid email or password"})
			return
		}
		writeJSON(w, http.StatusOK, model.AdminLoginResponse{Token: "admin-tok", Admin: &model.Admin{ID: 1, Name: "Ops", Email: req.Email}})
	})
	api.mux.HandleFunc("POST /auth/admin/logout", func(w http.ResponseWriter, r *http.Request) {
		loggedOut.Store(r.Header.Get("Authorization") == "Bearer admin-tok")
		w.WriteHeader(http.StatusNoContent)
	})

	store := NewMemoryStore()
	c := New(api.URL, store)
	gate := NewGate(store, "")

	t.Run("wrong password is rejected", func(t *testing.T) {
		res := c.AdminLogin(context.Background(), "admin@smartcity-portal.ng", "nope")
		require.False(t, res.OK())
		assert.Equal(t, KindRejected, res.Err.Kind)
		assert.Equal(t, "invalid email or password", res.Err.Message)
		assert.Equal(t, Redirect, gate.Guard(true).Outcome)
	})

	res := c.AdminLogin(context.Background(), "admin@smartcity-portal.ng", "AdminPass1")
	require.True(t, res.OK(), "unexpected error: %v", res.Err)
	assert.Equal(t, "Ops", res.Value.Name)

	token, _ := store.Get(KeyAdminToken)
	assert.Equal(t, "admin-tok", token)
	profile, ok := c.AdminProfile()
	require.True(t, ok)
	assert.Equal(t, "admin@smartcity-portal.ng", profile.Email)
	assert.Equal(t, Render, gate.Guard(true).Outcome)

	require.True(t, c.AdminLogout(context.Background()).OK())
	assert.True(t, loggedOut.Load())
	_, ok = store.Get(KeyAdminToken)
	assert.False(t, ok)
	_, ok = c.AdminProfile()
	assert.False(t, ok)
	assert.Equal(t, Redirect, gate.Guard(true).Outcome)
}

func TestSignInAndLogout(t *testing.T) {
	api := newFakeAPI(t)
	api.mux.HandleFunc("POST /auth/signin", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, model.SignInResponse{Token: "user-tok", User: &model.Registration{ID: "reg-1", Email: "ada@example.com"}})
	})

	store := NewMemoryStore()
	c := New(api.URL, store)

	res := c.SignIn(context.Background(), "ada@example.com", "Abcdef12")
	require.True(t, res.OK(), "unexpected error: %v", res.Err)
	assert.Equal(t, "reg-1", res.Value.ID)

	token, _ := store.Get(KeyToken)
	assert.Equal(t, "user-tok", token)
	_, ok := store.Get(KeyUser)
	assert.True(t, ok)

	require.NoError(t, c.Logout())
	_, ok = store.Get(KeyToken)
	assert.False(t, ok)
}
