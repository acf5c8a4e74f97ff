package handler

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kagaz/internal/domain"
	"kagaz/internal/export"
	"kagaz/internal/service"
)

// DocumentHandler handles document lifecycle and prompt endpoints.
type DocumentHandler struct {
	documentService service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// Create handles POST /api/v1/documents
func (h *DocumentHandler) Create(c *gin.Context) {
	var req struct {
		DocumentType   string        `json:"document_type"`
		DocumentNumber string        `json:"document_number"`
		Seller         *domain.Party `json:"seller"`
		Buyer          *domain.Party `json:"buyer"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "malformed request body")
		return
	}

	doc, err := h.documentService.Create(c.Request.Context(), &service.CreateDocumentInput{
		DocumentType:   domain.DocumentType(req.DocumentType),
		DocumentNumber: req.DocumentNumber,
		Seller:         req.Seller,
		Buyer:          req.Buyer,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, doc)
}

// GetByID handles GET /api/v1/documents/:id
func (h *DocumentHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	doc, err := h.documentService.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, doc)
}

// List handles GET /api/v1/documents
func (h *DocumentHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	docs, total, err := h.documentService.List(c.Request.Context(), limit, offset)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, docs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Delete handles DELETE /api/v1/documents/:id
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.documentService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}

// Generate handles POST /api/v1/documents/:id/generate: the prompt goes
// through the dispatch chain, remote parser first, local engine on failure.
func (h *DocumentHandler) Generate(c *gin.Context) {
	h.runPrompt(c, h.documentService.Generate)
}

// Command handles POST /api/v1/documents/:id/command, local resolver only.
func (h *DocumentHandler) Command(c *gin.Context) {
	h.runPrompt(c, h.documentService.Command)
}

func (h *DocumentHandler) runPrompt(c *gin.Context, run func(ctx context.Context, id uuid.UUID, prompt string) (*service.PromptResult, error)) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req struct {
		Prompt string `json:"prompt" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "prompt is required")
		return
	}
	result, err := run(c.Request.Context(), id, req.Prompt)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// Export handles GET /api/v1/documents/:id/export?format=xlsx|csv
func (h *DocumentHandler) Export(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	doc, err := h.documentService.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	format := c.DefaultQuery("format", "xlsx")
	filename := fmt.Sprintf("%s.%s", doc.DocumentNumber, format)

	switch format {
	case "csv":
		var buf bytes.Buffer
		buf.Write(export.BOM)
		w := export.NewCSVWriter(&buf)
		if err := w.WriteDocument(doc); err != nil {
			HandleError(c, err)
			return
		}
		if err := w.Flush(); err != nil {
			HandleError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
	case "xlsx":
		var buf bytes.Buffer
		if err := export.WriteXLSX(&buf, doc); err != nil {
			HandleError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be 'xlsx' or 'csv'")
	}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "document id must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}
