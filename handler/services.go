package handler

import (
	"context"

	"smartcity-portal/model"
)

// RegistrationService is the workflow behind the signup and approval endpoints.
type RegistrationService interface {
	Submit(ctx context.Context, req model.SignupRequest) (*model.Registration, error)
	ListPending(ctx context.Context, search string) ([]*model.Registration, error)
	Approve(ctx context.Context, id string) (string, error)
	Disapprove(ctx context.Context, id string) (string, error)
}

// AuthService issues and verifies bearer tokens.
type AuthService interface {
	SignIn(ctx context.Context, email, password string) (*model.SignInResponse, error)
	AdminLogin(ctx context.Context, email, password string) (*model.AdminLoginResponse, error)
	AdminLogout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*model.AppClaims, error)
}
