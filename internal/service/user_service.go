package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"edms/internal/domain"
	"edms/internal/port"
)

// CreateUserInput is the DTO for creating an operator account.
type CreateUserInput struct {
	Username string          `json:"username" binding:"required,min=3,max=50"`
	Password string          `json:"password" binding:"required,min=8"`
	Phone    string          `json:"phone" binding:"required"`
	Role     domain.UserRole `json:"role" binding:"required,oneof=admin staff"`
}

// UserService manages operator accounts.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, page, pageSize int) ([]domain.User, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.UserStatus) error
	ResetPassword(ctx context.Context, id uuid.UUID, newPassword string) error
	Delete(ctx context.Context, actorID, id uuid.UUID) error
}

type userService struct {
	userRepo port.UserRepository
}

// NewUserService creates a new UserService implementation.
func NewUserService(userRepo port.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &domain.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		Phone:        input.Phone,
		Role:         input.Role,
		Status:       domain.UserActive,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) List(ctx context.Context, page, pageSize int) ([]domain.User, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.userRepo.List(ctx, (page-1)*pageSize, pageSize)
}

func (s *userService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.UserStatus) error {
	if status != domain.UserActive && status != domain.UserInactive {
		return domain.ErrValidation
	}
	return s.userRepo.UpdateStatus(ctx, id, status)
}

func (s *userService) ResetPassword(ctx context.Context, id uuid.UUID, newPassword string) error {
	if len(newPassword) < 8 {
		return domain.ErrValidation
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	return s.userRepo.UpdatePassword(ctx, id, string(hash))
}

func (s *userService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	// An operator may not remove their own account.
	if actorID == id {
		return domain.ErrForbidden
	}
	return s.userRepo.Delete(ctx, id)
}
