package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"edms/internal/domain"
	"edms/internal/service"
	"edms/mocks"
)

func setupUserService() (service.UserService, *mocks.MockUserRepo) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewUserService(userRepo)
	return svc, userRepo
}

func TestUserService_Create_HashesPassword(t *testing.T) {
	svc, userRepo := setupUserService()

	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := svc.Create(context.Background(), service.CreateUserInput{
		Username: "hrstaff",
		Password: "long-enough-password",
		Phone:    "9876543210",
		Role:     domain.RoleStaff,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.UserActive, user.Status)
	assert.NotEqual(t, "long-enough-password", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("long-enough-password")))
}

func TestUserService_Create_DuplicateUsername(t *testing.T) {
	svc, userRepo := setupUserService()

	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
		Return(domain.ErrDuplicateUsername)

	_, err := svc.Create(context.Background(), service.CreateUserInput{
		Username: "hrstaff",
		Password: "long-enough-password",
		Phone:    "9876543210",
		Role:     domain.RoleStaff,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
}

func TestUserService_List_ClampsPaging(t *testing.T) {
	svc, userRepo := setupUserService()

	userRepo.On("List", mock.Anything, 0, 20).Return([]domain.User{}, 0, nil)

	_, _, err := svc.List(context.Background(), 0, 500)
	require.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestUserService_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	svc, _ := setupUserService()

	err := svc.UpdateStatus(context.Background(), uuid.New(), domain.UserStatus("Suspended"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_ResetPassword_TooShort(t *testing.T) {
	svc, _ := setupUserService()

	err := svc.ResetPassword(context.Background(), uuid.New(), "short")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Delete_BlocksSelfDelete(t *testing.T) {
	svc, _ := setupUserService()

	id := uuid.New()
	err := svc.Delete(context.Background(), id, id)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUserService_Delete_OtherUser(t *testing.T) {
	svc, userRepo := setupUserService()

	target := uuid.New()
	userRepo.On("Delete", mock.Anything, target).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), uuid.New(), target))
	userRepo.AssertExpectations(t)
}
