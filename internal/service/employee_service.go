package service

import (
	"context"
	"fmt"
	"time"

	"edms/internal/domain"
	"edms/internal/port"
)

// InitialCategory selects a required category at employee creation time.
type InitialCategory struct {
	CategoryCode string `json:"category" binding:"required"`
	OtherType    string `json:"other_type"`
}

// CreateEmployeeInput is the DTO for registering an employee record.
type CreateEmployeeInput struct {
	ID           string              `json:"id" binding:"required,max=20"`
	Name         string              `json:"name" binding:"required,max=100"`
	Department   string              `json:"department" binding:"required,max=100"`
	Designation  string              `json:"designation" binding:"max=100"`
	Grade        string              `json:"grade" binding:"max=20"`
	JoinDate     time.Time           `json:"join_date" binding:"required"`
	FileLocation domain.FileLocation `json:"file_location" binding:"required"`
	Categories   []InitialCategory   `json:"categories"`
}

// UpdateEmployeeInput is the DTO for editing an employee record.
type UpdateEmployeeInput struct {
	Name        string                `json:"name" binding:"required,max=100"`
	Department  string                `json:"department" binding:"required,max=100"`
	Designation string                `json:"designation" binding:"max=100"`
	Grade       string                `json:"grade" binding:"max=20"`
	JoinDate    time.Time             `json:"join_date" binding:"required"`
	Status      domain.EmployeeStatus `json:"status" binding:"required"`
}

// EmployeeService manages personnel records and their file locations.
type EmployeeService interface {
	Create(ctx context.Context, input CreateEmployeeInput) (*domain.Employee, error)
	// Get returns the employee with the computed status of each required
	// category attached.
	Get(ctx context.Context, id string) (*domain.EmployeeView, error)
	List(ctx context.Context, page, pageSize int) ([]domain.Employee, int, error)
	Update(ctx context.Context, id string, input UpdateEmployeeInput) (*domain.Employee, error)
	UpdateLocation(ctx context.Context, id string, location domain.FileLocation) error
	Search(ctx context.Context, filter port.EmployeeSearchFilter) ([]domain.EmployeeView, error)
}

type employeeService struct {
	employeeRepo port.EmployeeRepository
	categoryRepo port.RequiredCategoryRepository
}

// NewEmployeeService creates a new EmployeeService implementation.
func NewEmployeeService(
	employeeRepo port.EmployeeRepository,
	categoryRepo port.RequiredCategoryRepository,
) EmployeeService {
	return &employeeService{
		employeeRepo: employeeRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *employeeService) Create(ctx context.Context, input CreateEmployeeInput) (*domain.Employee, error) {
	if !domain.ValidFileLocation(input.FileLocation) {
		return nil, domain.ErrValidation
	}

	// Validate every initial category before touching the database.
	labels := make(map[string]string, len(input.Categories))
	for _, c := range input.Categories {
		label, err := domain.ResolveCategoryLabel(c.CategoryCode, c.OtherType)
		if err != nil {
			return nil, err
		}
		labels[c.CategoryCode] = label
	}

	emp := &domain.Employee{
		ID:           input.ID,
		Name:         input.Name,
		Department:   input.Department,
		Designation:  input.Designation,
		Grade:        input.Grade,
		JoinDate:     input.JoinDate,
		FileLocation: input.FileLocation,
		Status:       domain.EmployeeActive,
	}
	if err := s.employeeRepo.Create(ctx, emp); err != nil {
		return nil, err
	}

	for code, label := range labels {
		rc := &domain.RequiredCategory{
			EmployeeID:    emp.ID,
			CategoryCode:  code,
			CategoryLabel: label,
		}
		if err := s.categoryRepo.Add(ctx, rc); err != nil {
			return nil, fmt.Errorf("employee.Create category %s: %w", code, err)
		}
	}
	return emp, nil
}

func (s *employeeService) Get(ctx context.Context, id string) (*domain.EmployeeView, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cats, err := s.categoryRepo.ListRequired(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("employee.Get categories: %w", err)
	}
	return &domain.EmployeeView{Employee: *emp, Categories: cats}, nil
}

func (s *employeeService) List(ctx context.Context, page, pageSize int) ([]domain.Employee, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.employeeRepo.List(ctx, (page-1)*pageSize, pageSize)
}

func (s *employeeService) Update(ctx context.Context, id string, input UpdateEmployeeInput) (*domain.Employee, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	emp.Name = input.Name
	emp.Department = input.Department
	emp.Designation = input.Designation
	emp.Grade = input.Grade
	emp.JoinDate = input.JoinDate
	emp.Status = input.Status

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return nil, err
	}
	return emp, nil
}

func (s *employeeService) UpdateLocation(ctx context.Context, id string, location domain.FileLocation) error {
	if !domain.ValidFileLocation(location) {
		return domain.ErrValidation
	}
	return s.employeeRepo.UpdateLocation(ctx, id, location)
}

func (s *employeeService) Search(ctx context.Context, filter port.EmployeeSearchFilter) ([]domain.EmployeeView, error) {
	emps, err := s.employeeRepo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	views := make([]domain.EmployeeView, 0, len(emps))
	for _, emp := range emps {
		cats, err := s.categoryRepo.ListRequired(ctx, emp.ID)
		if err != nil {
			return nil, fmt.Errorf("employee.Search categories: %w", err)
		}
		views = append(views, domain.EmployeeView{Employee: emp, Categories: cats})
	}
	return views, nil
}
