package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"edms/internal/domain"
	"edms/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, input service.LoginInput) (*service.TokenPair, *domain.User, error) {
	args := m.Called(ctx, input)
	var pair *service.TokenPair
	if args.Get(0) != nil {
		pair = args.Get(0).(*service.TokenPair)
	}
	var user *domain.User
	if args.Get(1) != nil {
		user = args.Get(1).(*domain.User)
	}
	return pair, user, args.Error(2)
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (*service.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TokenPair), args.Error(1)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}
