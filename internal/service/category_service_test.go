package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"edms/internal/domain"
	"edms/internal/port"
	"edms/internal/service"
	"edms/mocks"
)

func setupCategoryService() (service.CategoryService, *mocks.MockRequiredCategoryRepo, *mocks.MockEmployeeRepo) {
	catRepo := new(mocks.MockRequiredCategoryRepo)
	empRepo := new(mocks.MockEmployeeRepo)
	svc := service.NewCategoryService(catRepo, empRepo)
	return svc, catRepo, empRepo
}

// --- Add ---

func TestCategoryService_Add_CatalogueCode(t *testing.T) {
	svc, catRepo, empRepo := setupCategoryService()

	empRepo.On("GetByID", mock.Anything, "100234").Return(&domain.Employee{ID: "100234"}, nil)
	catRepo.On("Add", mock.Anything, mock.AnythingOfType("*domain.RequiredCategory")).Return(nil)

	rc, err := svc.Add(context.Background(), service.AddCategoryInput{
		EmployeeID:   "100234",
		CategoryCode: "JOR",
	})

	require.NoError(t, err)
	assert.Equal(t, "Joining Report", rc.CategoryLabel)
	catRepo.AssertExpectations(t)
}

func TestCategoryService_Add_OthersWithLabel(t *testing.T) {
	svc, catRepo, empRepo := setupCategoryService()

	empRepo.On("GetByID", mock.Anything, "100234").Return(&domain.Employee{ID: "100234"}, nil)
	catRepo.On("Add", mock.Anything, mock.AnythingOfType("*domain.RequiredCategory")).Return(nil)

	rc, err := svc.Add(context.Background(), service.AddCategoryInput{
		EmployeeID:   "100234",
		CategoryCode: domain.CategoryCodeOthers,
		OtherType:    "Transfer Request",
	})

	require.NoError(t, err)
	assert.Equal(t, "Transfer Request", rc.CategoryLabel)
}

func TestCategoryService_Add_UnknownCode(t *testing.T) {
	svc, _, _ := setupCategoryService()

	_, err := svc.Add(context.Background(), service.AddCategoryInput{
		EmployeeID:   "100234",
		CategoryCode: "ZZZ",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCategoryService_Add_OthersLabelRejectsBadCharacters(t *testing.T) {
	svc, _, _ := setupCategoryService()

	_, err := svc.Add(context.Background(), service.AddCategoryInput{
		EmployeeID:   "100234",
		CategoryCode: domain.CategoryCodeOthers,
		OtherType:    "<script>alert(1)</script>",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCategoryService_Add_Duplicate(t *testing.T) {
	svc, catRepo, empRepo := setupCategoryService()

	empRepo.On("GetByID", mock.Anything, "100234").Return(&domain.Employee{ID: "100234"}, nil)
	catRepo.On("Add", mock.Anything, mock.AnythingOfType("*domain.RequiredCategory")).
		Return(domain.ErrDuplicateCategory)

	_, err := svc.Add(context.Background(), service.AddCategoryInput{
		EmployeeID:   "100234",
		CategoryCode: "JOR",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateCategory)
}

func TestCategoryService_Add_UnknownEmployee(t *testing.T) {
	svc, _, empRepo := setupCategoryService()

	empRepo.On("GetByID", mock.Anything, "999999").Return(nil, domain.ErrNotFound)

	_, err := svc.Add(context.Background(), service.AddCategoryInput{
		EmployeeID:   "999999",
		CategoryCode: "JOR",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// --- Remove ---

func TestCategoryService_RemoveByID(t *testing.T) {
	svc, catRepo, _ := setupCategoryService()

	id := uuid.New()
	rc := &domain.RequiredCategory{
		ID:           id,
		EmployeeID:   "100234",
		CategoryCode: "JOR",
	}
	catRepo.On("GetByID", mock.Anything, id).Return(rc, nil)
	catRepo.On("Remove", mock.Anything, "100234", "JOR").Return(nil)

	got, err := svc.RemoveByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "JOR", got.CategoryCode)
	catRepo.AssertExpectations(t)
}

func TestCategoryService_RemoveByID_NotFound(t *testing.T) {
	svc, catRepo, _ := setupCategoryService()

	id := uuid.New()
	catRepo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	_, err := svc.RemoveByID(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryService_Remove_TwiceIsNoOp(t *testing.T) {
	svc, catRepo, _ := setupCategoryService()

	// The repository treats removal of an already-removed binding as a no-op.
	catRepo.On("Remove", mock.Anything, "100234", "JOR").Return(nil).Twice()

	require.NoError(t, svc.Remove(context.Background(), "100234", "JOR"))
	require.NoError(t, svc.Remove(context.Background(), "100234", "JOR"))
	catRepo.AssertExpectations(t)
}

func TestCategoryService_Remove_KeepsDocuments(t *testing.T) {
	store := newFakeDocumentStore()
	empRepo := new(mocks.MockEmployeeRepo)
	storage := new(mocks.MockObjectStorage)
	docSvc := service.NewDocumentService(store, empRepo, storage, testS3Config)

	empRepo.On("GetByID", mock.Anything, "100234").Return(&domain.Employee{ID: "100234"}, nil)
	storage.On("Upload", mock.Anything, mock.AnythingOfType("port.UploadInput")).
		Return(&port.UploadOutput{}, nil)
	storage.On("GetPresignedURL", mock.Anything, "edms-test", mock.AnythingOfType("string"), int64(3600)).
		Return("https://signed.example/doc", nil)

	input := uploadInput()
	input.CategoryCode = "JOR"
	doc, err := docSvc.Upload(context.Background(), input)
	require.NoError(t, err)

	catRepo := new(mocks.MockRequiredCategoryRepo)
	catSvc := service.NewCategoryService(catRepo, empRepo)
	catRepo.On("Remove", mock.Anything, "100234", "JOR").Return(nil)

	require.NoError(t, catSvc.Remove(context.Background(), "100234", "JOR"))

	// Removing the binding only hides the requirement. The upload history
	// and its blob survive.
	kept, err := docSvc.Get(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "JOR", kept.CategoryCode)
	assert.Equal(t, doc.ID, kept.ID)
	storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

// --- ListRequired ---

func TestCategoryService_ListRequired_PendingWhenNoUpload(t *testing.T) {
	svc, catRepo, empRepo := setupCategoryService()

	empRepo.On("GetByID", mock.Anything, "100234").Return(&domain.Employee{ID: "100234"}, nil)
	docID := uuid.New()
	catRepo.On("ListRequired", mock.Anything, "100234").Return([]domain.RequiredCategoryView{
		{CategoryCode: "OFD", Status: domain.CategoryActive, DocumentID: &docID},
		{CategoryCode: "JOR", Status: domain.CategoryInactive},
		{CategoryCode: "BOD", Status: domain.CategoryPending},
	}, nil)

	views, err := svc.ListRequired(context.Background(), "100234")

	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, domain.CategoryPending, views[2].Status)
	assert.Nil(t, views[2].DocumentID)
}

func TestCategoryService_ListRequired_UnknownEmployee(t *testing.T) {
	svc, _, empRepo := setupCategoryService()

	empRepo.On("GetByID", mock.Anything, "999999").Return(nil, domain.ErrNotFound)

	_, err := svc.ListRequired(context.Background(), "999999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
