package domain

// AddressUpdate is a sparse address patch. Nil fields are left untouched.
type AddressUpdate struct {
	Line1   *string `json:"line1,omitempty"`
	Line2   *string `json:"line2,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	Zip     *string `json:"zip,omitempty"`
	Country *string `json:"country,omitempty"`
}

// PartyUpdate is a sparse party patch applied with merge-by-presence
// semantics: a present field replaces, an absent field is left alone.
type PartyUpdate struct {
	CompanyName   *string        `json:"company_name,omitempty"`
	ContactPerson *string        `json:"contact_person,omitempty"`
	Address       *AddressUpdate `json:"address,omitempty"`
	GSTIN         *string        `json:"gstin,omitempty"`
	PAN           *string        `json:"pan,omitempty"`
	Email         *string        `json:"email,omitempty"`
	Phone         *string        `json:"phone,omitempty"`
	PlaceOfSupply *string        `json:"place_of_supply,omitempty"`
}

// DocumentUpdate describes a partial change to a document. Nil fields mean
// "unchanged". Items is a full replacement list when non-nil; a non-nil empty
// slice clears the item list, which is distinct from nil.
//
// The total fields report the aggregates implied by a replacement item list.
// They are informational for callers; Apply always recomputes aggregates from
// the items themselves.
type DocumentUpdate struct {
	DocumentType       *DocumentType     `json:"document_type,omitempty"`
	DocumentNumber     *string           `json:"document_number,omitempty"`
	Date               *string           `json:"date,omitempty"`
	DueDate            *string           `json:"due_date,omitempty"`
	Buyer              *PartyUpdate      `json:"buyer,omitempty"`
	Items              []Item            `json:"items"`
	TransportDetails   *TransportDetails `json:"transport_details,omitempty"`
	Notes              *string           `json:"notes,omitempty"`
	TermsAndConditions *string           `json:"terms_and_conditions,omitempty"`
	TotalTaxable       *float64          `json:"total_taxable,omitempty"`
	TotalTax           *float64          `json:"total_tax,omitempty"`
	GrandTotal         *float64          `json:"grand_total,omitempty"`
}

// IsEmpty reports whether the update changes nothing. An empty update is the
// deliberate outcome for input the parsers did not understand.
func (u *DocumentUpdate) IsEmpty() bool {
	return u.DocumentType == nil &&
		u.DocumentNumber == nil &&
		u.Date == nil &&
		u.DueDate == nil &&
		u.Buyer == nil &&
		u.Items == nil &&
		u.TransportDetails == nil &&
		u.Notes == nil &&
		u.TermsAndConditions == nil
}

// Apply merges the update onto the document. Present fields replace, absent
// fields are untouched. When the item list is replaced, every derived field
// and the aggregate totals are recomputed; the update's own total fields are
// ignored in favor of recomputation.
func (d *Document) Apply(u *DocumentUpdate) {
	if u == nil {
		return
	}
	if u.DocumentType != nil {
		d.DocumentType = *u.DocumentType
	}
	if u.DocumentNumber != nil {
		d.DocumentNumber = *u.DocumentNumber
	}
	if u.Date != nil {
		d.Date = *u.Date
	}
	if u.DueDate != nil {
		d.DueDate = *u.DueDate
	}
	if u.Buyer != nil {
		u.Buyer.applyTo(&d.Buyer)
	}
	if u.TransportDetails != nil {
		td := *u.TransportDetails
		d.TransportDetails = &td
	}
	if u.Notes != nil {
		d.Notes = *u.Notes
	}
	if u.TermsAndConditions != nil {
		d.TermsAndConditions = *u.TermsAndConditions
	}
	if u.Items != nil {
		d.Items = CloneItems(u.Items)
		d.RecomputeTotals()
	}
}

func (p *PartyUpdate) applyTo(party *Party) {
	if p.CompanyName != nil {
		party.CompanyName = *p.CompanyName
	}
	if p.ContactPerson != nil {
		party.ContactPerson = *p.ContactPerson
	}
	if p.GSTIN != nil {
		party.GSTIN = *p.GSTIN
	}
	if p.PAN != nil {
		party.PAN = *p.PAN
	}
	if p.Email != nil {
		party.Email = *p.Email
	}
	if p.Phone != nil {
		party.Phone = *p.Phone
	}
	if p.PlaceOfSupply != nil {
		party.PlaceOfSupply = *p.PlaceOfSupply
	}
	if p.Address != nil {
		p.Address.applyTo(&party.Address)
	}
}

func (a *AddressUpdate) applyTo(addr *Address) {
	if a.Line1 != nil {
		addr.Line1 = *a.Line1
	}
	if a.Line2 != nil {
		addr.Line2 = *a.Line2
	}
	if a.City != nil {
		addr.City = *a.City
	}
	if a.State != nil {
		addr.State = *a.State
	}
	if a.Zip != nil {
		addr.Zip = *a.Zip
	}
	if a.Country != nil {
		addr.Country = *a.Country
	}
}

// StrPtr returns a pointer to s. Convenience for building updates.
func StrPtr(s string) *string { return &s }

// DocTypePtr returns a pointer to t.
func DocTypePtr(t DocumentType) *DocumentType { return &t }

// FloatPtr returns a pointer to f.
func FloatPtr(f float64) *float64 { return &f }
