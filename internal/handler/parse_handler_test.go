package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kagaz/internal/domain"
	"kagaz/internal/engine"
	"kagaz/mocks"
)

func TestParseItem(t *testing.T) {
	r := setupRouter(new(mocks.MockDocumentRepo))

	w := doJSON(r, http.MethodPost, "/api/v1/parse/item", `{"text": "Rice 10kg @ 50"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool               `json:"success"`
		Data    *engine.ItemFields `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Data)
	assert.Equal(t, "Rice", resp.Data.Name)
	assert.Equal(t, 10.0, resp.Data.Quantity)
	assert.Equal(t, 50.0, resp.Data.UnitPrice)
}

func TestParseItem_NotItemLike(t *testing.T) {
	r := setupRouter(new(mocks.MockDocumentRepo))

	w := doJSON(r, http.MethodPost, "/api/v1/parse/item", `{"text": "   "}`)

	// Not an error: "no item" is a valid outcome and comes back as null data.
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool               `json:"success"`
		Data    *engine.ItemFields `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Data)
}

func TestParseFreeformEndpoint(t *testing.T) {
	r := setupRouter(new(mocks.MockDocumentRepo))

	w := doJSON(r, http.MethodPost, "/api/v1/parse/freeform",
		`{"prompt": "quotation to Acme Traders\nRice 10kg @ 50"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data domain.DocumentUpdate `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Data.DocumentType)
	assert.Equal(t, domain.DocTypeQuotation, *resp.Data.DocumentType)
	assert.NotEmpty(t, resp.Data.Items)
}

func TestParseFreeformEndpoint_MissingPrompt(t *testing.T) {
	r := setupRouter(new(mocks.MockDocumentRepo))

	w := doJSON(r, http.MethodPost, "/api/v1/parse/freeform", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
