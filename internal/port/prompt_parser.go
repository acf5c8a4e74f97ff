package port

import (
	"context"

	"kagaz/internal/domain"
)

// ParseInput carries a free-text prompt and the document it applies to.
type ParseInput struct {
	Prompt   string
	Document *domain.Document
}

// PromptParser turns an informal prompt into a partial document update.
// Implementations must not mutate the input document.
type PromptParser interface {
	Parse(ctx context.Context, input ParseInput) (*domain.DocumentUpdate, error)
}
