// file: handler/mocks_test.go

package handler

import (
	"context"
	"os"
	"testing"

	"smartcity-portal/logger"
	"smartcity-portal/model"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()
	logger.Log.SetLevel(logrus.PanicLevel)
	os.Exit(m.Run())
}

type mockRegistrationService struct{ mock.Mock }

func (m *mockRegistrationService) Submit(ctx context.Context, req model.SignupRequest) (*model.Registration, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Registration), args.Error(1)
}

func (m *mockRegistrationService) ListPending(ctx context.Context, search string) ([]*model.Registration, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Registration), args.Error(1)
}

func (m *mockRegistrationService) Approve(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *mockRegistrationService) Disapprove(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) SignIn(ctx context.Context, email, password string) (*model.SignInResponse, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SignInResponse), args.Error(1)
}

func (m *mockAuthService) AdminLogin(ctx context.Context, email, password string) (*model.AdminLoginResponse, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminLoginResponse), args.Error(1)
}

func (m *mockAuthService) AdminLogout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *mockAuthService) Authenticate(ctx context.Context, token string) (*model.AppClaims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AppClaims), args.Error(1)
}
