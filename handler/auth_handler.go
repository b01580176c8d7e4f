package handler

import (
	"errors"
	"net/http"

	"smartcity-portal/common"
	"smartcity-portal/model"
	"smartcity-portal/service"
)

// AuthHandler serves registrant sign-in and the admin login/logout endpoints.
type AuthHandler struct {
	service AuthService
}

func NewAuthHandler(s AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// SignIn godoc
// @Summary      Sign in an approved registrant
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body model.LoginRequest true "Email and password"
// @Success      200  {object}  model.SignInResponse
// @Failure      400  {object}  common.AppError
// @Failure      401  {object}  common.AppError "Invalid email or password"
// @Failure      403  {object}  common.AppError "Registration not approved"
// @Router       /auth/signin [post]
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	resp, err := h.service.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		return credentialError(err)
	}
	common.WriteJSON(w, http.StatusOK, resp)
	return nil
}

// AdminLogin godoc
// @Summary      Log in to the admin console
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body model.LoginRequest true "Email and password"
// @Success      200  {object}  model.AdminLoginResponse
// @Failure      400  {object}  common.AppError
// @Failure      401  {object}  common.AppError "Invalid email or password"
// @Router       /auth/admin/login [post]
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	resp, err := h.service.AdminLogin(r.Context(), req.Email, req.Password)
	if err != nil {
		return credentialError(err)
	}
	common.WriteJSON(w, http.StatusOK, resp)
	return nil
}

// AdminLogout godoc
// @Summary      Revoke the current admin session
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  common.AppError
// @Router       /auth/admin/logout [post]
func (h *AuthHandler) AdminLogout(w http.ResponseWriter, r *http.Request) *common.AppError {
	token, ok := r.Context().Value(TokenKey).(string)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Missing session token", nil)
	}
	if err := h.service.AdminLogout(r.Context(), token); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not log out", err)
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func credentialError(err error) *common.AppError {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return common.NewAppError(http.StatusUnauthorized, err.Error(), nil)
	case errors.Is(err, service.ErrAccountNotApproved):
		return common.NewAppError(http.StatusForbidden, err.Error(), nil)
	default:
		return common.NewAppError(http.StatusInternalServerError, "Could not complete sign in", err)
	}
}
