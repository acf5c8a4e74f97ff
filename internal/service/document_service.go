package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"kagaz/internal/domain"
	"kagaz/internal/engine"
	"kagaz/internal/gateway"
	"kagaz/internal/port"
)

// DocumentService manages working documents and their prompt-driven edits.
type DocumentService interface {
	Create(ctx context.Context, input *CreateDocumentInput) (*domain.Document, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	List(ctx context.Context, limit, offset int) ([]domain.Document, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Generate(ctx context.Context, id uuid.UUID, prompt string) (*PromptResult, error)
	Command(ctx context.Context, id uuid.UUID, prompt string) (*PromptResult, error)
}

// CreateDocumentInput holds optional seed fields for a new document.
type CreateDocumentInput struct {
	DocumentType   domain.DocumentType
	DocumentNumber string
	Seller         *domain.Party
	Buyer          *domain.Party
}

// PromptResult is the outcome of applying a prompt to a document.
type PromptResult struct {
	Document *domain.Document       `json:"document"`
	Update   *domain.DocumentUpdate `json:"update"`
	Source   domain.UpdateSource    `json:"source"`
	Applied  bool                   `json:"applied"`
}

type documentService struct {
	repo       port.DocumentRepository
	dispatcher *gateway.Dispatcher
}

// NewDocumentService creates a DocumentService backed by the given repository
// and parser dispatch chain.
func NewDocumentService(repo port.DocumentRepository, dispatcher *gateway.Dispatcher) DocumentService {
	return &documentService{repo: repo, dispatcher: dispatcher}
}

func (s *documentService) Create(ctx context.Context, input *CreateDocumentInput) (*domain.Document, error) {
	if input.DocumentType != "" && !domain.ValidDocumentTypes[input.DocumentType] {
		return nil, domain.ErrInvalidDocumentType
	}
	doc := domain.NewDocument(input.DocumentType)
	doc.DocumentNumber = input.DocumentNumber
	if doc.DocumentNumber == "" {
		doc.DocumentNumber = generateDocumentNumber(doc)
	}
	if input.Seller != nil {
		doc.Seller = *input.Seller
	}
	if input.Buyer != nil {
		doc.Buyer = *input.Buyer
	}
	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("creating document: %w", err)
	}
	return doc, nil
}

func (s *documentService) Get(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *documentService) List(ctx context.Context, limit, offset int) ([]domain.Document, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, limit, offset)
}

func (s *documentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Generate runs the prompt through the dispatch chain (remote parser first,
// local engine as fallback), applies the resulting update, and persists.
func (s *documentService) Generate(ctx context.Context, id uuid.UUID, prompt string) (*PromptResult, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, domain.ErrEmptyPrompt
	}
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	update, source, err := s.dispatcher.Dispatch(ctx, port.ParseInput{Prompt: prompt, Document: doc})
	if err != nil {
		return nil, fmt.Errorf("dispatching prompt: %w", err)
	}

	return s.commit(ctx, doc, update, source)
}

// Command applies a single edit instruction using only the local resolver,
// the offline path that bypasses any remote parser.
func (s *documentService) Command(ctx context.Context, id uuid.UUID, prompt string) (*PromptResult, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, domain.ErrEmptyPrompt
	}
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	update := engine.ResolveCommand(prompt, doc)
	return s.commit(ctx, doc, &update, domain.SourceLocal)
}

func (s *documentService) commit(ctx context.Context, doc *domain.Document, update *domain.DocumentUpdate, source domain.UpdateSource) (*PromptResult, error) {
	result := &PromptResult{Document: doc, Update: update, Source: source}
	if update.IsEmpty() {
		log.Printf("service.DocumentService: prompt produced no change for document %s", doc.ID)
		return result, nil
	}

	doc.Apply(update)
	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, fmt.Errorf("persisting document: %w", err)
	}
	result.Applied = true
	return result, nil
}

func generateDocumentNumber(doc *domain.Document) string {
	prefix := "DOC"
	switch doc.DocumentType {
	case domain.DocTypeTaxInvoice, domain.DocTypeCommercialInvoice, domain.DocTypeServiceInvoice:
		prefix = "INV"
	case domain.DocTypeQuotation, domain.DocTypeEstimate:
		prefix = "QTN"
	case domain.DocTypePurchaseOrder, domain.DocTypePerformaPO:
		prefix = "PO"
	case domain.DocTypeDeliveryChallan, domain.DocTypeJobWorkChallan:
		prefix = "DC"
	case domain.DocTypeReceipt:
		prefix = "RCT"
	}
	short := strings.ToUpper(doc.ID.String()[:8])
	return fmt.Sprintf("%s-%s-%s", prefix, doc.CreatedAt.Format("20060102"), short)
}
