package port

import (
	"context"

	"github.com/google/uuid"

	"kagaz/internal/domain"
)

// DocumentRepository abstracts persistence of working documents.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	List(ctx context.Context, limit, offset int) ([]domain.Document, int, error)
	Update(ctx context.Context, doc *domain.Document) error
	Delete(ctx context.Context, id uuid.UUID) error
}
