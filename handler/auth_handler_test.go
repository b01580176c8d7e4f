// file: handler/auth_handler_test.go

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smartcity-portal/model"
	"smartcity-portal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_SignIn(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"approved", nil, http.StatusOK},
		{"wrong password", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"pending registration", service.ErrAccountNotApproved, http.StatusForbidden},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mockAuthService)
			h := NewAuthHandler(svc)
			if tc.err == nil {
				svc.On("SignIn", mock.Anything, "ada@example.com", "Abcdef12").
					Return(&model.SignInResponse{Token: "tok", User: &model.Registration{ID: "reg-1"}}, nil).Once()
			} else {
				svc.On("SignIn", mock.Anything, "ada@example.com", "Abcdef12").Return(nil, tc.err).Once()
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/signin",
				strings.NewReader(`{"email":"ada@example.com","password":"Abcdef12"}`))
			rr := httptest.NewRecorder()
			ErrorHandlingMiddleware(h.SignIn).ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}

	t.Run("invalid email is rejected before the service", func(t *testing.T) {
		svc := new(mockAuthService)
		req := httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(`{"email":"nope","password":"x"}`))
		rr := httptest.NewRecorder()
		ErrorHandlingMiddleware(NewAuthHandler(svc).SignIn).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		svc.AssertNotCalled(t, "SignIn", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthHandler_AdminLogin(t *testing.T) {
	svc := new(mockAuthService)
	h := NewAuthHandler(svc)
	svc.On("AdminLogin", mock.Anything, "admin@smartcity-portal.ng", "AdminPass1").
		Return(&model.AdminLoginResponse{Token: "admin-tok", Admin: &model.Admin{ID: 1, Name: "Ops"}}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/auth/admin/login",
		strings.NewReader(`{"email":"admin@smartcity-portal.ng","password":"AdminPass1"}`))
	rr := httptest.NewRecorder()
	ErrorHandlingMiddleware(h.AdminLogin).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp model.AdminLoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "admin-tok", resp.Token)
	assert.Equal(t, "Ops", resp.Admin.Name)
}

func TestAuthMiddleware(t *testing.T) {
	adminClaims := &model.AppClaims{Role: model.RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{Subject: "1"}}
	userClaims := &model.AppClaims{Role: model.RoleUser, RegisteredClaims: jwt.RegisteredClaims{Subject: "reg-1"}}

	svc := new(mockAuthService)
	svc.On("Authenticate", mock.Anything, "admin-tok").Return(adminClaims, nil)
	svc.On("Authenticate", mock.Anything, "user-tok").Return(userClaims, nil)
	svc.On("Authenticate", mock.Anything, "revoked-tok").Return(nil, service.ErrSessionRevoked)

	protected := AuthMiddleware(svc)(AdminMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := r.Context().Value(ClaimsKey).(*model.AppClaims)
		assert.Equal(t, "1", claims.Subject)
		w.WriteHeader(http.StatusNoContent)
	})))

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"bad format", "Token admin-tok", http.StatusUnauthorized},
		{"revoked session", "Bearer revoked-tok", http.StatusUnauthorized},
		{"non-admin", "Bearer user-tok", http.StatusForbidden},
		{"admin", "Bearer admin-tok", http.StatusNoContent},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/registrations/pending", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			protected.ServeHTTP(rr, req)
			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestAuthHandler_AdminLogout(t *testing.T) {
	svc := new(mockAuthService)
	h := NewAuthHandler(svc)
	svc.On("AdminLogout", mock.Anything, "admin-tok").Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/auth/admin/logout", nil)
	req = req.WithContext(context.WithValue(req.Context(), TokenKey, "admin-tok"))
	rr := httptest.NewRecorder()
	ErrorHandlingMiddleware(h.AdminLogout).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	svc.AssertExpectations(t)
}
