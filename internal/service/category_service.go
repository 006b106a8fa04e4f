package service

import (
	"context"

	"github.com/google/uuid"

	"edms/internal/domain"
	"edms/internal/port"
)

// AddCategoryInput is the DTO for requiring a document category.
type AddCategoryInput struct {
	EmployeeID   string `json:"employee_id" binding:"required"`
	CategoryCode string `json:"category" binding:"required"`
	OtherType    string `json:"other_type"`
}

// CategoryService manages the required-category registry per employee.
type CategoryService interface {
	Add(ctx context.Context, input AddCategoryInput) (*domain.RequiredCategory, error)
	// Remove soft-deletes the binding; documents already uploaded for the
	// category are untouched. Removing twice is a no-op.
	Remove(ctx context.Context, employeeID, categoryCode string) error
	// RemoveByID resolves the binding and soft-deletes it.
	RemoveByID(ctx context.Context, id uuid.UUID) (*domain.RequiredCategory, error)
	ListRequired(ctx context.Context, employeeID string) ([]domain.RequiredCategoryView, error)
}

type categoryService struct {
	categoryRepo port.RequiredCategoryRepository
	employeeRepo port.EmployeeRepository
}

// NewCategoryService creates a new CategoryService implementation.
func NewCategoryService(
	categoryRepo port.RequiredCategoryRepository,
	employeeRepo port.EmployeeRepository,
) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *categoryService) Add(ctx context.Context, input AddCategoryInput) (*domain.RequiredCategory, error) {
	label, err := domain.ResolveCategoryLabel(input.CategoryCode, input.OtherType)
	if err != nil {
		return nil, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, input.EmployeeID); err != nil {
		return nil, err
	}

	rc := &domain.RequiredCategory{
		EmployeeID:    input.EmployeeID,
		CategoryCode:  input.CategoryCode,
		CategoryLabel: label,
	}
	if err := s.categoryRepo.Add(ctx, rc); err != nil {
		return nil, err
	}
	return rc, nil
}

func (s *categoryService) Remove(ctx context.Context, employeeID, categoryCode string) error {
	return s.categoryRepo.Remove(ctx, employeeID, categoryCode)
}

func (s *categoryService) RemoveByID(ctx context.Context, id uuid.UUID) (*domain.RequiredCategory, error) {
	rc, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Remove(ctx, rc.EmployeeID, rc.CategoryCode); err != nil {
		return nil, err
	}
	return rc, nil
}

func (s *categoryService) ListRequired(ctx context.Context, employeeID string) ([]domain.RequiredCategoryView, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.categoryRepo.ListRequired(ctx, employeeID)
}
