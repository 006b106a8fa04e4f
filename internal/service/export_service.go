package service

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"edms/internal/csvexport"
	"edms/internal/domain"
	"edms/internal/port"
)

// ExportService renders register downloads for auditors.
type ExportService interface {
	// DocumentsCSV streams the full document register as CSV.
	DocumentsCSV(ctx context.Context, w io.Writer) error
	// EmployeesXLSX builds an Excel workbook of all employees with their
	// per-category document statuses.
	EmployeesXLSX(ctx context.Context) ([]byte, error)
}

type exportService struct {
	docRepo      port.DocumentRepository
	employeeRepo port.EmployeeRepository
	categoryRepo port.RequiredCategoryRepository
}

// NewExportService creates a new ExportService implementation.
func NewExportService(
	docRepo port.DocumentRepository,
	employeeRepo port.EmployeeRepository,
	categoryRepo port.RequiredCategoryRepository,
) ExportService {
	return &exportService{
		docRepo:      docRepo,
		employeeRepo: employeeRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *exportService) DocumentsCSV(ctx context.Context, w io.Writer) error {
	docs, err := s.docRepo.Search(ctx, port.DocumentSearchFilter{})
	if err != nil {
		return fmt.Errorf("export.DocumentsCSV: %w", err)
	}
	return csvexport.WriteRegister(w, docs)
}

const employeeSheet = "Employees"

func (s *exportService) EmployeesXLSX(ctx context.Context) ([]byte, error) {
	emps, err := s.employeeRepo.Search(ctx, port.EmployeeSearchFilter{})
	if err != nil {
		return nil, fmt.Errorf("export.EmployeesXLSX: %w", err)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	if err := f.SetSheetName(f.GetSheetName(0), employeeSheet); err != nil {
		return nil, fmt.Errorf("export.EmployeesXLSX sheet: %w", err)
	}

	header := []interface{}{
		"Employee ID", "Name", "Department", "Designation", "Grade",
		"Join Date", "File Location", "Status",
		"Required Categories", "Active", "Inactive", "Pending",
	}
	if err := f.SetSheetRow(employeeSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("export.EmployeesXLSX header: %w", err)
	}

	for i, emp := range emps {
		cats, err := s.categoryRepo.ListRequired(ctx, emp.ID)
		if err != nil {
			return nil, fmt.Errorf("export.EmployeesXLSX categories: %w", err)
		}
		var active, inactive, pending int
		for _, c := range cats {
			switch c.Status {
			case domain.CategoryActive:
				active++
			case domain.CategoryInactive:
				inactive++
			case domain.CategoryPending:
				pending++
			}
		}

		row := []interface{}{
			emp.ID, emp.Name, emp.Department, emp.Designation, emp.Grade,
			emp.JoinDate.Format("2006-01-02"), string(emp.FileLocation), string(emp.Status),
			len(cats), active, inactive, pending,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(employeeSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("export.EmployeesXLSX row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("export.EmployeesXLSX write: %w", err)
	}
	return buf.Bytes(), nil
}
