package domain

import (
	"time"

	"github.com/google/uuid"
)

// Address holds a postal address.
type Address struct {
	Line1   string `json:"line1"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// Party represents a buyer or seller on a document.
type Party struct {
	CompanyName   string  `json:"company_name"`
	ContactPerson string  `json:"contact_person,omitempty"`
	Address       Address `json:"address"`
	GSTIN         string  `json:"gstin,omitempty"`
	PAN           string  `json:"pan,omitempty"`
	Email         string  `json:"email,omitempty"`
	Phone         string  `json:"phone,omitempty"`
	PlaceOfSupply string  `json:"place_of_supply,omitempty"`
}

// TransportDetails holds logistics information for dispatch documents.
type TransportDetails struct {
	Mode            string  `json:"mode,omitempty"`
	TransporterName string  `json:"transporter_name,omitempty"`
	VehicleNo       string  `json:"vehicle_no,omitempty"`
	LRNo            string  `json:"lr_no,omitempty"`
	DistanceKM      float64 `json:"distance_km,omitempty"`
	EWayBillNo      string  `json:"eway_bill_no,omitempty"`
}

// Item is a single document line. TaxableValue, TaxAmount, and TotalAmount
// are derived from Quantity, UnitPrice, DiscountAmount, and TaxRate; they are
// never authoritative on their own and must be refreshed via Recompute.
type Item struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description,omitempty"`
	HSNSACCode     string  `json:"hsn_sac_code,omitempty"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	UnitPrice      float64 `json:"unit_price"`
	DiscountAmount float64 `json:"discount_amount,omitempty"`
	TaxRate        float64 `json:"tax_rate"`
	TaxableValue   float64 `json:"taxable_value"`
	TaxAmount      float64 `json:"tax_amount"`
	TotalAmount    float64 `json:"total_amount"`
}

// DefaultTaxRate is the GST rate applied to items parsed without an explicit rate.
const DefaultTaxRate = 18

// NewItem builds an item with default unit and tax rate and derived fields set.
func NewItem(name string, quantity, unitPrice float64) Item {
	item := Item{
		ID:        uuid.New().String(),
		Name:      name,
		Quantity:  quantity,
		Unit:      "Nos",
		UnitPrice: unitPrice,
		TaxRate:   DefaultTaxRate,
	}
	item.Recompute()
	return item
}

// Recompute refreshes the derived fields from quantity, price, discount, and
// tax rate. Calling it repeatedly with unchanged inputs yields the same output.
func (i *Item) Recompute() {
	i.TaxableValue = i.Quantity*i.UnitPrice - i.DiscountAmount
	i.TaxAmount = i.TaxableValue * i.TaxRate / 100
	i.TotalAmount = i.TaxableValue + i.TaxAmount
}

// Document is the single mutable working copy of a business document.
// Item order is entry order and is significant for positional references.
type Document struct {
	ID                 uuid.UUID         `json:"id"`
	DocumentType       DocumentType      `json:"document_type"`
	DocumentNumber     string            `json:"document_number"`
	Date               string            `json:"date,omitempty"`
	DueDate            string            `json:"due_date,omitempty"`
	Seller             Party             `json:"seller"`
	Buyer              Party             `json:"buyer"`
	Items              []Item            `json:"items"`
	Currency           string            `json:"currency"`
	TransportDetails   *TransportDetails `json:"transport_details,omitempty"`
	Notes              string            `json:"notes,omitempty"`
	TermsAndConditions string            `json:"terms_and_conditions,omitempty"`
	Status             DocumentStatus    `json:"status"`
	TotalTaxable       float64           `json:"total_taxable"`
	TotalTax           float64           `json:"total_tax"`
	GrandTotal         float64           `json:"grand_total"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

// NewDocument creates an empty draft document with defaults.
func NewDocument(docType DocumentType) *Document {
	if docType == "" {
		docType = DocTypeTaxInvoice
	}
	now := time.Now().UTC()
	return &Document{
		ID:           uuid.New(),
		DocumentType: docType,
		Date:         now.Format("2006-01-02"),
		Items:        []Item{},
		Currency:     "INR",
		Status:       StatusDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// RecomputeTotals re-derives every item's computed fields and the aggregate
// totals. Aggregates are a pure function of the item list.
func (d *Document) RecomputeTotals() {
	var taxable, tax float64
	for i := range d.Items {
		d.Items[i].Recompute()
		taxable += d.Items[i].TaxableValue
		tax += d.Items[i].TaxAmount
	}
	d.TotalTaxable = taxable
	d.TotalTax = tax
	d.GrandTotal = taxable + tax
}

// CloneItems returns a copy of the item list so parsers can mutate freely
// without touching the caller's document.
func CloneItems(items []Item) []Item {
	cloned := make([]Item, len(items))
	copy(cloned, items)
	return cloned
}
