package handler

import (
	"errors"
	"net/http"

	"smartcity-portal/common"
	"smartcity-portal/logger"
	"smartcity-portal/model"
	"smartcity-portal/service"

	"github.com/sirupsen/logrus"
)

// AdminHandler serves the registration approval endpoints.
type AdminHandler struct {
	service RegistrationService
}

func NewAdminHandler(s RegistrationService) *AdminHandler {
	return &AdminHandler{service: s}
}

// ListPending godoc
// @Summary      List pending registrations
// @Description  Returns registrations awaiting a decision, optionally filtered by a case-insensitive search over email, names, business name and phone.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        search query string false "Search text"
// @Success      200  {array}   model.Registration
// @Failure      401  {object}  common.AppError
// @Failure      403  {object}  common.AppError
// @Router       /admin/registrations/pending [get]
func (h *AdminHandler) ListPending(w http.ResponseWriter, r *http.Request) *common.AppError {
	regs, err := h.service.ListPending(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve pending registrations", err)
	}
	common.WriteJSON(w, http.StatusOK, regs)
	return nil
}

// Approve godoc
// @Summary      Approve a pending registration
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Registration ID"
// @Success      200  {object}  model.DecisionResponse
// @Failure      404  {object}  common.AppError "Registration not found"
// @Failure      409  {object}  common.AppError "Registration already processed"
// @Router       /admin/registrations/{id}/approve [post]
func (h *AdminHandler) Approve(w http.ResponseWriter, r *http.Request) *common.AppError {
	return h.decide(w, r, model.StatusApproved)
}

// Disapprove godoc
// @Summary      Disapprove a pending registration
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Registration ID"
// @Success      200  {object}  model.DecisionResponse
// @Failure      404  {object}  common.AppError "Registration not found"
// @Failure      409  {object}  common.AppError "Registration already processed"
// @Router       /admin/registrations/{id}/disapprove [post]
func (h *AdminHandler) Disapprove(w http.ResponseWriter, r *http.Request) *common.AppError {
	return h.decide(w, r, model.StatusDisapproved)
}

func (h *AdminHandler) decide(w http.ResponseWriter, r *http.Request, status model.RegistrationStatus) *common.AppError {
	id := r.PathValue("id")
	claims, _ := r.Context().Value(ClaimsKey).(*model.AppClaims)

	log := logger.Log.WithFields(logrus.Fields{
		"registration_id": id,
		"decision":        status,
	})
	if claims != nil {
		log = log.WithField("admin_id", claims.Subject)
	}
	log.Info("Registration decision request received")

	var (
		message string
		err     error
	)
	if status == model.StatusApproved {
		message, err = h.service.Approve(r.Context(), id)
	} else {
		message, err = h.service.Disapprove(r.Context(), id)
	}
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRegistrationNotFound):
			return common.NewAppError(http.StatusNotFound, err.Error(), nil)
		case errors.Is(err, service.ErrNotPending):
			return common.NewAppError(http.StatusConflict, err.Error(), nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not process registration", err)
		}
	}

	common.WriteJSON(w, http.StatusOK, model.DecisionResponse{Message: message})
	return nil
}
