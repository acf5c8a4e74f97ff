package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kagaz/internal/domain"
	"kagaz/internal/engine"
	"kagaz/internal/gateway"
	"kagaz/internal/port"
	"kagaz/internal/service"
	"kagaz/mocks"
)

func localOnlyDispatcher() *gateway.Dispatcher {
	return gateway.NewDispatcher(
		[]port.PromptParser{engine.NewLocalParser()},
		[]string{"local"},
		[]domain.UpdateSource{domain.SourceLocal},
	)
}

func TestCreate_Defaults(t *testing.T) {
	repo := new(mocks.MockDocumentRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := service.NewDocumentService(repo, localOnlyDispatcher())
	doc, err := svc.Create(context.Background(), &service.CreateDocumentInput{})

	require.NoError(t, err)
	assert.Equal(t, domain.DocTypeTaxInvoice, doc.DocumentType)
	assert.Equal(t, domain.StatusDraft, doc.Status)
	assert.NotEmpty(t, doc.DocumentNumber)
	assert.Contains(t, doc.DocumentNumber, "INV-")
	repo.AssertExpectations(t)
}

func TestCreate_InvalidType(t *testing.T) {
	repo := new(mocks.MockDocumentRepo)

	svc := service.NewDocumentService(repo, localOnlyDispatcher())
	_, err := svc.Create(context.Background(), &service.CreateDocumentInput{DocumentType: "Ransom Note"})

	assert.ErrorIs(t, err, domain.ErrInvalidDocumentType)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_NumberPrefixFollowsType(t *testing.T) {
	repo := new(mocks.MockDocumentRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := service.NewDocumentService(repo, localOnlyDispatcher())
	doc, err := svc.Create(context.Background(), &service.CreateDocumentInput{DocumentType: domain.DocTypeQuotation})

	require.NoError(t, err)
	assert.Contains(t, doc.DocumentNumber, "QTN-")
}

func TestCreate_ExplicitNumberKept(t *testing.T) {
	repo := new(mocks.MockDocumentRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := service.NewDocumentService(repo, localOnlyDispatcher())
	doc, err := svc.Create(context.Background(), &service.CreateDocumentInput{DocumentNumber: "INV-2026-042"})

	require.NoError(t, err)
	assert.Equal(t, "INV-2026-042", doc.DocumentNumber)
}

func TestGenerate_AppliesAndPersists(t *testing.T) {
	doc := domain.NewDocument("")
	repo := new(mocks.MockDocumentRepo)
	repo.On("GetByID", mock.Anything, doc.ID).Return(doc, nil)
	repo.On("Update", mock.Anything, doc).Return(nil)

	svc := service.NewDocumentService(repo, localOnlyDispatcher())
	result, err := svc.Generate(context.Background(), doc.ID, "Rice 10kg @ 50")

	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Equal(t, domain.SourceLocal, result.Source)
	require.Len(t, result.Document.Items, 1)
	assert.Equal(t, 590.0, result.Document.GrandTotal)
	repo.AssertExpectations(t)
}

func TestGenerate_RemoteWins(t *testing.T) {
	doc := domain.NewDocument("")
	repo := new(mocks.MockDocumentRepo)
	repo.On("GetByID", mock.Anything, doc.ID).Return(doc, nil)
	repo.On("Update", mock.Anything, doc).Return(nil)

	remote := new(mocks.MockPromptParser)
	remote.On("Parse", mock.Anything, mock.Anything).Return(
		&domain.DocumentUpdate{Notes: domain.StrPtr("remote note")}, nil)

	dispatcher := gateway.NewDispatcher(
		[]port.PromptParser{remote, engine.NewLocalParser()},
		[]string{"sambanova", "local"},
		[]domain.UpdateSource{domain.SourceRemote, domain.SourceLocal},
	)
	svc := service.NewDocumentService(repo, dispatcher)

	result, err := svc.Generate(context.Background(), doc.ID, "add a note")

	require.NoError(t, err)
	assert.Equal(t, domain.SourceRemote, result.Source)
	assert.Equal(t, "remote note", result.Document.Notes)
}

func TestGenerate_EmptyPrompt(t *testing.T) {
	repo := new(mocks.MockDocumentRepo)
	svc := service.NewDocumentService(repo, localOnlyDispatcher())

	_, err := svc.Generate(context.Background(), domain.NewDocument("").ID, "   ")

	assert.ErrorIs(t, err, domain.ErrEmptyPrompt)
}

func TestGenerate_DocumentNotFound(t *testing.T) {
	doc := domain.NewDocument("")
	repo := new(mocks.MockDocumentRepo)
	repo.On("GetByID", mock.Anything, doc.ID).Return(nil, domain.ErrDocumentNotFound)

	svc := service.NewDocumentService(repo, localOnlyDispatcher())
	_, err := svc.Generate(context.Background(), doc.ID, "Rice 10kg @ 50")

	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

func TestCommand_EditsExistingItems(t *testing.T) {
	doc := domain.NewDocument("")
	doc.Items = []domain.Item{domain.NewItem("Rice", 10, 50), domain.NewItem("Sugar", 20, 45)}
	doc.RecomputeTotals()

	repo := new(mocks.MockDocumentRepo)
	repo.On("GetByID", mock.Anything, doc.ID).Return(doc, nil)
	repo.On("Update", mock.Anything, doc).Return(nil)

	svc := service.NewDocumentService(repo, localOnlyDispatcher())
	result, err := svc.Command(context.Background(), doc.ID, "remove sugar")

	require.NoError(t, err)
	assert.True(t, result.Applied)
	require.Len(t, result.Document.Items, 1)
	assert.Equal(t, "Rice", result.Document.Items[0].Name)
	repo.AssertExpectations(t)
}

func TestCommand_NoChangeSkipsPersist(t *testing.T) {
	doc := domain.NewDocument("")
	doc.Items = []domain.Item{domain.NewItem("Rice", 10, 50)}
	doc.RecomputeTotals()

	repo := new(mocks.MockDocumentRepo)
	repo.On("GetByID", mock.Anything, doc.ID).Return(doc, nil)

	svc := service.NewDocumentService(repo, localOnlyDispatcher())
	result, err := svc.Command(context.Background(), doc.ID, "xyzzy plugh")

	require.NoError(t, err)
	assert.False(t, result.Applied)
	assert.True(t, result.Update.IsEmpty())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCommand_PersistFailure(t *testing.T) {
	doc := domain.NewDocument("")
	doc.Items = []domain.Item{domain.NewItem("Rice", 10, 50)}
	doc.RecomputeTotals()

	repo := new(mocks.MockDocumentRepo)
	repo.On("GetByID", mock.Anything, doc.ID).Return(doc, nil)
	repo.On("Update", mock.Anything, doc).Return(errors.New("db down"))

	svc := service.NewDocumentService(repo, localOnlyDispatcher())
	_, err := svc.Command(context.Background(), doc.ID, "remove rice")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestList_ClampsPagination(t *testing.T) {
	repo := new(mocks.MockDocumentRepo)
	repo.On("List", mock.Anything, 20, 0).Return([]domain.Document{}, 0, nil)

	svc := service.NewDocumentService(repo, localOnlyDispatcher())
	_, _, err := svc.List(context.Background(), -5, -1)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
