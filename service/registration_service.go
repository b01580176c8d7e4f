// file: service/registration_service.go

package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"smartcity-portal/logger"
	"smartcity-portal/metrics"
	"smartcity-portal/model"
	"smartcity-portal/repository"
	"smartcity-portal/validation"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmailTaken           = errors.New("an account with this email already exists")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrNotPending           = errors.New("registration has already been processed")
)

// ValidationError carries the field errors of a rejected signup payload.
type ValidationError struct {
	Errors []validation.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("registration failed validation on %d field(s)", len(e.Errors))
}

// Wire names of the signup payload, keyed by form field name.
var personalWireFields = map[string]string{
	validation.FieldFirstName: "first_name",
	validation.FieldLastName:  "last_name",
	validation.FieldGender:    "gender",
	validation.FieldPhone:     "phone",
	validation.FieldEmail:     "email",
	validation.FieldNINNumber: "nin_number",
	validation.FieldAddress:   "address",
	validation.FieldPassword:  "password",
}

var businessWireFields = map[string]string{
	validation.FieldBusinessName:     "business_name",
	validation.FieldBusinessType:     "business_type",
	validation.FieldBusinessEmail:    "email",
	validation.FieldCACNumber:        "cac_number",
	validation.FieldBusinessPhone:    "phone",
	validation.FieldBusinessAddress:  "business_location",
	validation.FieldBusinessPassword: "password",
}

func toWireFields(errs []validation.FieldError, names map[string]string) []validation.FieldError {
	out := make([]validation.FieldError, len(errs))
	for i, e := range errs {
		out[i] = validation.FieldError{Field: names[e.Field], Message: e.Message}
	}
	return out
}

// RegistrationService owns the signup and approval workflow.
type RegistrationService struct {
	repo     repository.IRegistrationRepository
	cache    ICacheClient
	notifier Notifier
	cacheTTL time.Duration
}

func NewRegistrationService(repo repository.IRegistrationRepository, cache ICacheClient, notifier Notifier, cacheTTL time.Duration) *RegistrationService {
	return &RegistrationService{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
		cacheTTL: cacheTTL,
	}
}

func normalizeSignup(req model.SignupRequest) model.SignupRequest {
	trim := strings.TrimSpace
	req.AccountType = model.AccountType(strings.ToLower(trim(string(req.AccountType))))
	req.Email = strings.ToLower(trim(req.Email))
	req.Phone = trim(req.Phone)
	req.FirstName, req.LastName = trim(req.FirstName), trim(req.LastName)
	req.Gender = strings.ToLower(trim(req.Gender))
	req.NINNumber, req.Address = trim(req.NINNumber), trim(req.Address)
	req.BusinessName = trim(req.BusinessName)
	req.BusinessType = strings.ToLower(trim(req.BusinessType))
	req.CACNumber, req.BusinessLocation = trim(req.CACNumber), trim(req.BusinessLocation)
	return req
}

// ValidateSignup runs the registration rules on a wire payload and reports
// errors under the wire field names.
func ValidateSignup(req model.SignupRequest) []validation.FieldError {
	switch req.AccountType {
	case model.AccountPersonal:
		errs := validation.ValidatePersonal(validation.PersonalInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Gender:    req.Gender,
			Phone:     req.Phone,
			Email:     req.Email,
			NINNumber: req.NINNumber,
			Address:   req.Address,
			Password:  req.Password,
		})
		return toWireFields(errs, personalWireFields)
	case model.AccountBusiness:
		errs := validation.ValidateBusiness(validation.BusinessInput{
			BusinessName:     req.BusinessName,
			BusinessType:     req.BusinessType,
			BusinessEmail:    req.Email,
			CACNumber:        req.CACNumber,
			BusinessPhone:    req.Phone,
			BusinessAddress:  req.BusinessLocation,
			BusinessPassword: req.Password,
		})
		return toWireFields(errs, businessWireFields)
	default:
		return []validation.FieldError{{Field: "accountType", Message: "Account type must be personal or business"}}
	}
}

// Submit validates a signup payload and stores it as a pending registration.
func (s *RegistrationService) Submit(ctx context.Context, req model.SignupRequest) (*model.Registration, error) {
	req = normalizeSignup(req)
	if errs := ValidateSignup(req); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	log := logger.Log.WithFields(logrus.Fields{
		"account_type": req.AccountType,
		"email":        req.Email,
	})

	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("could not check email: %w", err)
	}
	if exists {
		log.Warn("Signup rejected: email already registered")
		return nil, ErrEmailTaken
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	reg := &model.Registration{
		ID:          uuid.NewString(),
		AccountType: req.AccountType,
		Email:       req.Email,
		Phone:       req.Phone,
		Password:    hashed,
	}
	if req.AccountType == model.AccountPersonal {
		reg.FirstName, reg.LastName, reg.Gender = req.FirstName, req.LastName, req.Gender
		reg.NINNumber, reg.Address = req.NINNumber, req.Address
	} else {
		reg.BusinessName, reg.BusinessType = req.BusinessName, req.BusinessType
		reg.CACNumber, reg.BusinessLocation = req.CACNumber, req.BusinessLocation
	}

	if err := s.repo.Create(ctx, reg); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("could not create registration: %w", err)
	}

	s.invalidatePending(ctx)
	metrics.RegistrationsSubmitted.WithLabelValues(string(reg.AccountType)).Inc()
	log.WithField("registration_id", reg.ID).Info("Registration submitted for approval")
	return reg, nil
}

// ListPending returns pending registrations matching search, utilizing a
// cache-aside strategy for the full pending set.
func (s *RegistrationService) ListPending(ctx context.Context, search string) ([]*model.Registration, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, pendingCacheKey).Result(); err == nil {
			var regs []*model.Registration
			if err := json.Unmarshal([]byte(cached), &regs); err == nil {
				return model.FilterRegistrations(regs, search), nil
			}
		}
	}

	regs, err := s.repo.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(regs); err == nil {
			s.cache.Set(ctx, pendingCacheKey, data, s.cacheTTL)
		}
	}

	return model.FilterRegistrations(regs, search), nil
}

// Approve marks a pending registration approved and emails the applicant.
func (s *RegistrationService) Approve(ctx context.Context, id string) (string, error) {
	return s.decide(ctx, id, model.StatusApproved)
}

// Disapprove marks a pending registration disapproved and emails the applicant.
func (s *RegistrationService) Disapprove(ctx context.Context, id string) (string, error) {
	return s.decide(ctx, id, model.StatusDisapproved)
}

func (s *RegistrationService) decide(ctx context.Context, id string, status model.RegistrationStatus) (string, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"registration_id": id,
		"decision":        status,
	})

	if _, err := uuid.Parse(id); err != nil {
		return "", ErrRegistrationNotFound
	}

	reg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrRegistrationNotFound
		}
		return "", err
	}
	if reg.Status != model.StatusPending {
		return "", ErrNotPending
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return "", fmt.Errorf("could not update registration status: %w", err)
	}
	if !updated {
		log.Warn("Registration was resolved concurrently")
		return "", ErrNotPending
	}
	reg.Status = status

	s.invalidatePending(ctx)
	metrics.RegistrationDecisions.WithLabelValues(string(status)).Inc()
	log.Info("Registration decision applied")

	verb := "approved!"
	if status == model.StatusDisapproved {
		verb = "disapproved."
	}
	if err := s.notifier.NotifyDecision(ctx, reg, status); err != nil {
		metrics.NotificationFailures.Inc()
		log.WithError(err).Warn("Failed to send decision email")
		return fmt.Sprintf("Registration %s The notification email to %s could not be sent.", verb, reg.Email), nil
	}
	return fmt.Sprintf("Registration %s Email sent to %s", verb, reg.Email), nil
}

func (s *RegistrationService) invalidatePending(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, pendingCacheKey).Err(); err != nil {
		logger.Log.WithError(err).Warn("Failed to invalidate pending registrations cache")
	}
}
