package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"smartcity-portal/common"
	"smartcity-portal/model"
	"smartcity-portal/service"
)

const signupAcceptedMessage = "Registration submitted successfully. Your account is pending admin approval."

// RegistrationHandler holds dependencies for the public signup endpoint.
type RegistrationHandler struct {
	service RegistrationService
}

func NewRegistrationHandler(s RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{service: s}
}

// Signup godoc
// @Summary      Submit a personal or business registration
// @Description  Validates the payload for the given accountType and stores it as a pending registration awaiting admin approval.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        registration body model.SignupRequest true "Registration details"
// @Success      201  {object}  model.SignupResponse
// @Failure      400  {object}  common.AppError "Validation failed; errors lists the offending fields"
// @Failure      409  {object}  common.AppError "Email already registered"
// @Failure      500  {object}  common.AppError "Internal server error"
// @Router       /auth/signup [post]
func (h *RegistrationHandler) Signup(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid request body", err)
	}

	reg, err := h.service.Submit(r.Context(), req)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			return common.NewValidationError(vErr.Errors)
		case errors.Is(err, service.ErrEmailTaken):
			return common.NewAppError(http.StatusConflict, err.Error(), nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not submit registration", err)
		}
	}

	resp := model.SignupResponse{Message: signupAcceptedMessage}
	if reg.AccountType == model.AccountBusiness {
		resp.Business = reg
	} else {
		resp.User = reg
	}
	common.WriteJSON(w, http.StatusCreated, resp)
	return nil
}
