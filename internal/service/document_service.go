package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"

	"edms/internal/config"
	"edms/internal/domain"
	"edms/internal/port"
)

// UploadDocumentInput is the DTO for a document upload.
type UploadDocumentInput struct {
	EmployeeID   string
	CategoryCode string
	OtherType    string
	FileName     string
	ContentType  string
	Size         int64
	Body         io.Reader
	UploadedBy   uuid.UUID
}

// DocumentWithURL is a document plus a short-lived presigned link to its
// stored file.
type DocumentWithURL struct {
	domain.Document
	FileURL string `json:"file_url"`
}

/// DocumentService owns the document lifecycle: uploads enter Inactive and
// every later status flip goes through the partition transition guard, so at
// most one document per (employee, category) is Active at any time.
type DocumentService interface {
	Upload(ctx context.Context, input UploadDocumentInput) (*domain.Document, error)
	Get(ctx context.Context, id uuid.UUID) (*DocumentWithURL, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.Document, error)
	ListInactive(ctx context.Context, employeeID, categoryCode string) ([]domain.Document, error)

	// SetStatus moves a document to the requested status. Activation demotes
	// any current Active sibling in the same atomic step. A concurrent
	// transition on the same partition fails with
	// domain.ErrConcurrentModification and is not retried; the caller decides
	// whether to re-read and try again.
	SetStatus(ctx context.Context, id uuid.UUID, status domain.DocumentStatus) (*domain.Document, error)
	// Toggle flips the document to the opposite of its current status.
	Toggle(ctx context.Context, id uuid.UUID) (*domain.Document, error)

	Search(ctx context.Context, filter port.DocumentSearchFilter) ([]domain.DocumentView, error)
}

type documentService struct {
	docRepo      port.DocumentRepository
	employeeRepo port.EmployeeRepository
	storage      port.ObjectStorage
	cfg          config.S3Config
}

// NewDocumentService creates a new DocumentService implementation.
func NewDocumentService(
	docRepo port.DocumentRepository,
	employeeRepo port.EmployeeRepository,
	storage port.ObjectStorage,
	cfg config.S3Config,
) DocumentService {
	return &documentService{
		docRepo:      docRepo,
		employeeRepo: employeeRepo,
		storage:      storage,
		cfg:          cfg,
	}
}

func (s *documentService) Upload(ctx context.Context, input UploadDocumentInput) (*domain.Document, error) {
	label, err := domain.ResolveCategoryLabel(input.CategoryCode, input.OtherType)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(input.ContentType, "application/pdf") {
		return nil, domain.ErrUnsupportedFileType
	}
	if max := s.cfg.MaxFileSizeMB * 1024 * 1024; input.Size > max {
		return nil, domain.ErrFileTooLarge
	}
	if _, err := s.employeeRepo.GetByID(ctx, input.EmployeeID); err != nil {
		return nil, err
	}

	doc := &domain.Document{
		ID:            uuid.New(),
		EmployeeID:    input.EmployeeID,
		CategoryCode:  input.CategoryCode,
		CategoryLabel: label,
		UploadedBy:    input.UploadedBy,
		FileSize:      input.Size,
		ContentType:   "application/pdf",
		S3Bucket:      s.cfg.Bucket,
	}
	doc.S3Key = fmt.Sprintf("documents/%s/%s/%s.pdf", input.EmployeeID, input.CategoryCode, doc.ID)

	// Blob first, metadata second. A crash between the two leaves an orphan
	// object, never a dangling row.
	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      doc.S3Bucket,
		Key:         doc.S3Key,
		Body:        input.Body,
		ContentType: doc.ContentType,
		Size:        input.Size,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}

	if err := s.docRepo.Create(ctx, doc); err != nil {
		if delErr := s.storage.Delete(ctx, doc.S3Bucket, doc.S3Key); delErr != nil {
			log.Printf("document: orphan cleanup of %s failed: %v", doc.S3Key, delErr)
		}
		return nil, err
	}
	return doc, nil
}

func (s *documentService) Get(ctx context.Context, id uuid.UUID) (*DocumentWithURL, error) {
	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := s.storage.GetPresignedURL(ctx, doc.S3Bucket, doc.S3Key, s.cfg.PresignExpiry)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return &DocumentWithURL{Document: *doc, FileURL: url}, nil
}

func (s *documentService) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Document, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.docRepo.ListByEmployee(ctx, employeeID)
}

func (s *documentService) ListInactive(ctx context.Context, employeeID, categoryCode string) ([]domain.Document, error) {
	status := domain.DocumentInactive
	return s.docRepo.ListByEmployeeAndCategory(ctx, employeeID, categoryCode, &status)
}

func (s *documentService) SetStatus(ctx context.Context, id uuid.UUID, status domain.DocumentStatus) (*domain.Document, error) {
	if status != domain.DocumentActive && status != domain.DocumentInactive {
		return nil, domain.ErrValidation
	}

	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, doc, status)
}

func (s *documentService) Toggle(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	target := domain.DocumentActive
	if doc.Status == domain.DocumentActive {
		target = domain.DocumentInactive
	}
	return s.transition(ctx, doc, target)
}

// transition snapshots the partition version and applies the flip under the
// compare-and-swap guard. Activating an already-Active document converges
// without error; the losing side of a race gets
// domain.ErrConcurrentModification.
func (s *documentService) transition(ctx context.Context, doc *domain.Document, target domain.DocumentStatus) (*domain.Document, error) {
	version, err := s.docRepo.PartitionVersion(ctx, doc.EmployeeID, doc.CategoryCode)
	if err != nil {
		return nil, err
	}

	switch target {
	case domain.DocumentActive:
		err = s.docRepo.Activate(ctx, doc.EmployeeID, doc.CategoryCode, doc.ID, version)
	case domain.DocumentInactive:
		err = s.docRepo.Deactivate(ctx, doc.EmployeeID, doc.CategoryCode, doc.ID, version)
	}
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) && doc.Status == domain.DocumentInactive && target == domain.DocumentInactive {
			// Deactivating an already-Inactive document is a no-op.
			return doc, nil
		}
		return nil, err
	}

	return s.docRepo.GetByID(ctx, doc.ID)
}

func (s *documentService) Search(ctx context.Context, filter port.DocumentSearchFilter) ([]domain.DocumentView, error) {
	return s.docRepo.Search(ctx, filter)
}
