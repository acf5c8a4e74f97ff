package engine

import (
	"regexp"

	"kagaz/internal/domain"
)

var segmentSplitRe = regexp.MustCompile(`[\n,;]+`)

// ParseFreeform builds a partial document update from a bulk free-text
// description: items from comma/newline-delimited segments, buyer and date
// fields from a single entity scan over the whole prompt. The current
// document is never mutated. When no items and no entities are found the
// returned update is empty.
func ParseFreeform(prompt string, current *domain.Document) domain.DocumentUpdate {
	var update domain.DocumentUpdate

	entities := ExtractEntities(prompt)
	if entities.DocumentType != "" {
		update.DocumentType = domain.DocTypePtr(entities.DocumentType)
	}
	if entities.InvoiceDate != "" {
		update.Date = domain.StrPtr(entities.InvoiceDate)
	}
	if entities.DueDate != "" {
		update.DueDate = domain.StrPtr(entities.DueDate)
	}
	if buyer := buyerUpdate(entities); buyer != nil {
		update.Buyer = buyer
	}

	var items []domain.Item
	for _, segment := range segmentSplitRe.Split(prompt, -1) {
		fields := TokenizeItemLine(segment)
		if fields == nil {
			continue
		}
		items = append(items, domain.NewItem(fields.Name, fields.Quantity, fields.UnitPrice))
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

	return update
}

// buyerUpdate folds extracted entities into a sparse buyer patch, or nil when
// nothing buyer-related was found.
func buyerUpdate(e Entities) *domain.PartyUpdate {
	var buyer domain.PartyUpdate
	found := false

	if e.CompanyName != "" {
		buyer.CompanyName = domain.StrPtr(e.CompanyName)
		found = true
	}
	if e.GSTIN != "" {
		buyer.GSTIN = domain.StrPtr(e.GSTIN)
		found = true
	}
	if e.Email != "" {
		buyer.Email = domain.StrPtr(e.Email)
		found = true
	}
	if e.Phone != "" {
		buyer.Phone = domain.StrPtr(e.Phone)
		found = true
	}
	if e.PlaceOfSupply != "" {
		buyer.PlaceOfSupply = domain.StrPtr(e.PlaceOfSupply)
		found = true
	}

	var addr domain.AddressUpdate
	addrFound := false
	if e.State != "" {
		addr.State = domain.StrPtr(e.State)
		addrFound = true
	}
	if e.Zip != "" {
		addr.Zip = domain.StrPtr(e.Zip)
		addrFound = true
	}
	if addrFound {
		buyer.Address = &addr
		found = true
	}

	if !found {
		return nil
	}
	return &buyer
}
