package service

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"smartcity-portal/logger"
	"smartcity-portal/model"
	"smartcity-portal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotApproved = errors.New("account is awaiting approval or was not approved")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrSessionRevoked     = errors.New("session has been revoked")
)

// bcryptCost is lowered in tests.
var bcryptCost = bcrypt.DefaultCost

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash password")
		return "", err
	}
	return string(bytes), nil
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// HashToken returns the hex SHA-256 digest under which admin sessions are stored.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// AuthService issues and verifies bearer tokens for registrants and admins.
type AuthService struct {
	registrations repository.IRegistrationRepository
	admins        repository.IAdminRepository
	sessions      repository.ISessionRepository
	secret        []byte
	ttl           time.Duration
	now           func() time.Time
}

func NewAuthService(registrations repository.IRegistrationRepository, admins repository.IAdminRepository,
	sessions repository.ISessionRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		registrations: registrations,
		admins:        admins,
		sessions:      sessions,
		secret:        []byte(secret),
		ttl:           ttl,
		now:           time.Now,
	}
}

// GenerateJWT signs a token for subject with the given role.
func (s *AuthService) GenerateJWT(subject string, role model.Role) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := &model.AppClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		logger.Log.WithError(err).WithField("subject", subject).Error("Failed to sign JWT")
		return "", time.Time{}, fmt.Errorf("failed to sign token string: %w", err)
	}
	return tokenString, expiresAt, nil
}

// ParseJWT verifies the signature and expiry of tokenString.
func (s *AuthService) ParseJWT(tokenString string) (*model.AppClaims, error) {
	claims := &model.AppClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Authenticate validates a bearer token. Admin tokens must also still have a
// live session row, so that logout revokes them.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*model.AppClaims, error) {
	claims, err := s.ParseJWT(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Role != model.RoleAdmin {
		return claims, nil
	}

	session, err := s.sessions.GetByTokenHash(ctx, HashToken(tokenString))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionRevoked
		}
		return nil, err
	}
	if !session.ExpiresAt.After(s.now()) {
		return nil, ErrSessionRevoked
	}
	return claims, nil
}

// SignIn authenticates a registrant. Only approved registrations may sign in.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*model.SignInResponse, error) {
	reg, err := s.registrations.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !CheckPasswordHash(password, reg.Password) {
		return nil, ErrInvalidCredentials
	}
	if reg.Status != model.StatusApproved {
		return nil, ErrAccountNotApproved
	}

	token, _, err := s.GenerateJWT(reg.ID, model.RoleUser)
	if err != nil {
		return nil, err
	}
	logger.Log.WithField("registration_id", reg.ID).Info("User signed in")
	return &model.SignInResponse{Token: token, User: reg}, nil
}

// AdminLogin authenticates an admin and records the issued session.
func (s *AuthService) AdminLogin(ctx context.Context, email, password string) (*model.AdminLoginResponse, error) {
	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !CheckPasswordHash(password, admin.Password) {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.GenerateJWT(strconv.Itoa(admin.ID), model.RoleAdmin)
	if err != nil {
		return nil, err
	}
	session := &model.AdminSession{
		AdminID:   admin.ID,
		TokenHash: HashToken(token),
		ExpiresAt: expiresAt,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("could not create admin session: %w", err)
	}

	logger.Log.WithField("admin_id", admin.ID).Info("Admin logged in")
	return &model.AdminLoginResponse{Token: token, Admin: admin}, nil
}

// AdminLogout revokes the session belonging to tokenString.
func (s *AuthService) AdminLogout(ctx context.Context, tokenString string) error {
	return s.sessions.DeleteByTokenHash(ctx, HashToken(tokenString))
}

// EnsureBootstrapAdmin creates the configured admin when no admin exists yet.
func (s *AuthService) EnsureBootstrapAdmin(ctx context.Context, name, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	n, err := s.admins.Count(ctx)
	if err != nil {
		return fmt.Errorf("could not count admins: %w", err)
	}
	if n > 0 {
		return nil
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return err
	}
	admin := &model.Admin{Name: name, Email: email, Password: hashed}
	if err := s.admins.Create(ctx, admin); err != nil {
		return fmt.Errorf("could not create bootstrap admin: %w", err)
	}
	logger.Log.WithField("email", email).Info("Bootstrap admin created")
	return nil
}
