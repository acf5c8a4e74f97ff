package sambanova

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"kagaz/internal/config"
	"kagaz/internal/domain"
	"kagaz/internal/parser"
	"kagaz/internal/port"
)

const apiURL = "https://api.sambanova.ai/v1/chat/completions"

// Parser implements port.PromptParser using the SambaNova chat-completions
// API (OpenAI-compatible wire format).
type Parser struct {
	apiKey      string
	model       string
	endpoint    string
	maxTokens   int
	temperature float64
	client      *http.Client
}

// NewParser creates a SambaNova-backed prompt parser from config.
func NewParser(cfg *config.ParserConfig) *Parser {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = apiURL
	}
	model := cfg.Model
	if model == "" {
		model = "Meta-Llama-3.3-70B-Instruct"
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 2000
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Parser{
		apiKey:      cfg.APIKey,
		model:       model,
		endpoint:    endpoint,
		maxTokens:   maxTokens,
		temperature: cfg.Temperature,
		client:      &http.Client{Timeout: timeout},
	}
}

func (p *Parser) Parse(ctx context.Context, input port.ParseInput) (*domain.DocumentUpdate, error) {
	prompt := parser.BuildExtractionPrompt(input.Prompt)

	reqBody := map[string]interface{}{
		"model": p.model,
		"messages": []map[string]interface{}{
			{"role": "user", "content": prompt},
		},
		"temperature": p.temperature,
		"max_tokens":  p.maxTokens,
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling sambanova API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		baseErr := fmt.Errorf("sambanova API error (status %d): %s", resp.StatusCode, string(respBody))
		if resp.StatusCode == http.StatusTooManyRequests {
			retryAfter := parser.RetryAfterSecs(resp.Header.Get("Retry-After"))
			return nil, parser.NewRateLimitError("sambanova", baseErr, retryAfter)
		}
		return nil, baseErr
	}

	return decodeUpdate(respBody)
}

// chatResponse is the subset of the chat-completions response we read.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// extraction is the JSON wire shape the model is instructed to emit.
type extraction struct {
	CustomerDetails *struct {
		Name    string `json:"name"`
		Address string `json:"address"`
		City    string `json:"city"`
		State   string `json:"state"`
		Zip     string `json:"zip"`
		Phone   string `json:"phone"`
		Email   string `json:"email"`
		GSTIN   string `json:"gstin"`
	} `json:"customerDetails"`
	Items []struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Quantity    float64  `json:"quantity"`
		Unit        string   `json:"unit"`
		UnitPrice   float64  `json:"unitPrice"`
		TaxRate     *float64 `json:"taxRate"`
	} `json:"items"`
	TransportDetails *struct {
		Mode      string  `json:"mode"`
		VehicleNo string  `json:"vehicleNo"`
		Distance  float64 `json:"distance"`
	} `json:"transportDetails"`
	DocumentType       string `json:"documentType"`
	DocumentNumber     string `json:"documentNumber"`
	Date               string `json:"date"`
	DueDate            string `json:"dueDate"`
	Notes              string `json:"notes"`
	TermsAndConditions string `json:"termsAndConditions"`
}

func decodeUpdate(respBody []byte) (*domain.DocumentUpdate, error) {
	var chat chatResponse
	if err := json.Unmarshal(respBody, &chat); err != nil {
		return nil, fmt.Errorf("unmarshaling chat response: %w", err)
	}
	if len(chat.Choices) == 0 || chat.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("no content in model response")
	}

	content := stripFences(chat.Choices[0].Message.Content)
	var ext extraction
	if err := json.Unmarshal([]byte(content), &ext); err != nil {
		return nil, fmt.Errorf("unmarshaling extraction JSON: %w", err)
	}

	return mapUpdate(&ext), nil
}

// stripFences removes markdown code fences models sometimes wrap JSON in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

func mapUpdate(ext *extraction) *domain.DocumentUpdate {
	var update domain.DocumentUpdate

	if ext.DocumentType != "" && domain.ValidDocumentTypes[domain.DocumentType(ext.DocumentType)] {
		update.DocumentType = domain.DocTypePtr(domain.DocumentType(ext.DocumentType))
	}
	if ext.DocumentNumber != "" {
		update.DocumentNumber = domain.StrPtr(ext.DocumentNumber)
	}
	if ext.Date != "" {
		update.Date = domain.StrPtr(ext.Date)
	}
	if ext.DueDate != "" {
		update.DueDate = domain.StrPtr(ext.DueDate)
	}
	if ext.Notes != "" {
		update.Notes = domain.StrPtr(ext.Notes)
	}
	if ext.TermsAndConditions != "" {
		update.TermsAndConditions = domain.StrPtr(ext.TermsAndConditions)
	}

	if cd := ext.CustomerDetails; cd != nil {
		buyer := domain.PartyUpdate{}
		found := false
		if cd.Name != "" {
			buyer.CompanyName = domain.StrPtr(cd.Name)
			found = true
		}
		if cd.GSTIN != "" {
			buyer.GSTIN = domain.StrPtr(strings.ToUpper(cd.GSTIN))
			found = true
		}
		if cd.Email != "" {
			buyer.Email = domain.StrPtr(cd.Email)
			found = true
		}
		if cd.Phone != "" {
			buyer.Phone = domain.StrPtr(cd.Phone)
			found = true
		}
		addr := domain.AddressUpdate{}
		addrFound := false
		if cd.Address != "" {
			addr.Line1 = domain.StrPtr(cd.Address)
			addrFound = true
		}
		if cd.City != "" {
			addr.City = domain.StrPtr(cd.City)
			addrFound = true
		}
		if cd.State != "" {
			addr.State = domain.StrPtr(cd.State)
			buyer.PlaceOfSupply = domain.StrPtr(cd.State)
			addrFound = true
		}
		if cd.Zip != "" {
			addr.Zip = domain.StrPtr(cd.Zip)
			addrFound = true
		}
		if addrFound {
			buyer.Address = &addr
			found = true
		}
		if found {
			update.Buyer = &buyer
		}
	}

	if td := ext.TransportDetails; td != nil && (td.Mode != "" || td.VehicleNo != "" || td.Distance != 0) {
		update.TransportDetails = &domain.TransportDetails{
			Mode:       td.Mode,
			VehicleNo:  td.VehicleNo,
			DistanceKM: td.Distance,
		}
	}

	if len(ext.Items) > 0 {
		items := make([]domain.Item, 0, len(ext.Items))
		for _, it := range ext.Items {
			if it.Name == "" {
				continue
			}
			item := domain.NewItem(it.Name, it.Quantity, it.UnitPrice)
			if it.Description != "" {
				item.Description = it.Description
			}
			if it.Unit != "" {
				item.Unit = it.Unit
			}
			if it.TaxRate != nil {
				item.TaxRate = *it.TaxRate
			}
			item.Recompute()
			items = append(items, item)
		}
		if len(items) > 0 {
			update.Items = items
			var taxable, tax float64
			for i := range items {
				taxable += items[i].TaxableValue
				tax += items[i].TaxAmount
			}
			update.TotalTaxable = domain.FloatPtr(taxable)
			update.TotalTax = domain.FloatPtr(tax)
			update.GrandTotal = domain.FloatPtr(taxable + tax)
		}
	}

	return &update
}
