// file: handler/registration_handler_test.go

package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smartcity-portal/common"
	"smartcity-portal/model"
	"smartcity-portal/service"
	"smartcity-portal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func serveSignup(h *RegistrationHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
	rr := httptest.NewRecorder()
	ErrorHandlingMiddleware(h.Signup).ServeHTTP(rr, req)
	return rr
}

func TestRegistrationHandler_Signup(t *testing.T) {
	t.Run("personal registration returns user", func(t *testing.T) {
		svc := new(mockRegistrationService)
		h := NewRegistrationHandler(svc)
		svc.On("Submit", mock.Anything, mock.MatchedBy(func(req model.SignupRequest) bool {
			return req.AccountType == model.AccountPersonal && req.FirstName == "Ada" && req.NINNumber == "12345678901"
		})).Return(&model.Registration{ID: "reg-1", AccountType: model.AccountPersonal, Email: "ada@example.com", Status: model.StatusPending}, nil).Once()

		rr := serveSignup(h, `{"accountType":"personal","first_name":"Ada","nin_number":"12345678901","email":"ada@example.com"}`)

		require.Equal(t, http.StatusCreated, rr.Code)
		var resp model.SignupResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.NotNil(t, resp.User)
		assert.Nil(t, resp.Business)
		assert.Equal(t, "reg-1", resp.User.ID)
		assert.NotContains(t, rr.Body.String(), "password")
	})

	t.Run("business registration returns business", func(t *testing.T) {
		svc := new(mockRegistrationService)
		h := NewRegistrationHandler(svc)
		svc.On("Submit", mock.Anything, mock.Anything).
			Return(&model.Registration{ID: "reg-2", AccountType: model.AccountBusiness, BusinessName: "Jos Fabrics"}, nil).Once()

		rr := serveSignup(h, `{"accountType":"business","business_name":"Jos Fabrics"}`)

		require.Equal(t, http.StatusCreated, rr.Code)
		var resp model.SignupResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.NotNil(t, resp.Business)
		assert.Nil(t, resp.User)
	})

	t.Run("validation errors are listed", func(t *testing.T) {
		svc := new(mockRegistrationService)
		h := NewRegistrationHandler(svc)
		svc.On("Submit", mock.Anything, mock.Anything).Return(nil, &service.ValidationError{
			Errors: []validation.FieldError{{Field: "nin_number", Message: "NIN must be 11 digits"}},
		}).Once()

		rr := serveSignup(h, `{"accountType":"personal"}`)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		var appErr common.AppError
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &appErr))
		assert.Equal(t, "Validation failed", appErr.Message)
		require.Len(t, appErr.Errors, 1)
		assert.Equal(t, "nin_number", appErr.Errors[0].Field)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := new(mockRegistrationService)
		h := NewRegistrationHandler(svc)
		svc.On("Submit", mock.Anything, mock.Anything).Return(nil, service.ErrEmailTaken).Once()

		rr := serveSignup(h, `{"accountType":"personal"}`)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("internal error is not leaked", func(t *testing.T) {
		svc := new(mockRegistrationService)
		h := NewRegistrationHandler(svc)
		svc.On("Submit", mock.Anything, mock.Anything).Return(nil, errors.New("pq: connection refused")).Once()

		rr := serveSignup(h, `{"accountType":"personal"}`)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "connection refused")
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := new(mockRegistrationService)
		rr := serveSignup(NewRegistrationHandler(svc), `{"accountType":`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		svc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})
}
