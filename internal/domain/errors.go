package domain

import "errors"

var (
	ErrDocumentNotFound    = errors.New("document not found")
	ErrInvalidDocumentType = errors.New("invalid document type")
	ErrEmptyPrompt         = errors.New("prompt is empty")
)
