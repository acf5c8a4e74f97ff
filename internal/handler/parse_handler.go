package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kagaz/internal/domain"
	"kagaz/internal/engine"
)

// ParseHandler exposes the local rule-based engine as stateless endpoints.
type ParseHandler struct{}

// NewParseHandler creates a new ParseHandler.
func NewParseHandler() *ParseHandler {
	return &ParseHandler{}
}

// TokenizeItem handles POST /api/v1/parse/item. Data is null when the text
// is not item-like; that is not an error.
func (h *ParseHandler) TokenizeItem(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "malformed request body")
		return
	}
	RespondOK(c, engine.TokenizeItemLine(req.Text))
}

// Freeform handles POST /api/v1/parse/freeform: a stateless preview of the
// document-level parser. Nothing is persisted.
func (h *ParseHandler) Freeform(c *gin.Context) {
	var req struct {
		Prompt   string           `json:"prompt" binding:"required"`
		Document *domain.Document `json:"document"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "prompt is required")
		return
	}
	doc := req.Document
	if doc == nil {
		doc = domain.NewDocument("")
	}
	update := engine.ParseFreeform(req.Prompt, doc)
	RespondOK(c, update)
}
