package engine

import "kagaz/internal/domain"

// Static lookup tables for the rule-based engine. All of these are read-only
// configuration data; nothing in this package mutates them.

// priceMarkers are tokens that mark an adjacent number as a unit price.
var priceMarkers = map[string]bool{
	"@": true, "rs": true, "inr": true, "$": true, "€": true,
	"price": true, "rate": true, "cost": true, "each": true, "amount": true,
}

// qtyMarkers are tokens that mark an adjacent number as a quantity.
var qtyMarkers = map[string]bool{
	"qty": true, "pc": true, "pcs": true, "nos": true, "unit": true,
	"units": true, "box": true, "boxes": true, "kg": true, "kgs": true,
	"packets": true,
}

// docTypeKeywords maps prompt keywords to document types. Order matters:
// the first substring match wins, so longer phrases come before their
// abbreviations ("purchase order" before "po").
var docTypeKeywords = []struct {
	Keyword string
	Type    domain.DocumentType
}{
	{"tax invoice", domain.DocTypeTaxInvoice},
	{"proforma", domain.DocTypeProformaInvoice},
	{"quotation", domain.DocTypeQuotation},
	{"estimate", domain.DocTypeEstimate},
	{"purchase order", domain.DocTypePurchaseOrder},
	{"po", domain.DocTypePurchaseOrder},
	{"work order", domain.DocTypeWorkOrder},
	{"wo", domain.DocTypeWorkOrder},
	{"challan", domain.DocTypeDeliveryChallan},
	{"receipt", domain.DocTypeReceipt},
}

// indianStates is checked by case-insensitive substring match, in list order.
var indianStates = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka",
	"Kerala", "Madhya Pradesh", "Maharashtra", "Manipur", "Meghalaya",
	"Mizoram", "Nagaland", "Odisha", "Punjab", "Rajasthan", "Sikkim",
	"Tamil Nadu", "Telangana", "Tripura", "Uttar Pradesh", "Uttarakhand",
	"West Bengal", "Delhi", "Chandigarh",
}

// Intent keyword sets for the command resolver. Hinglish forms included
// ("hataavo" = remove, "karo" = do/make, "jagya par"/"badle" = instead of).
var (
	removeWords  = []string{"remove", "delete", "hataavo", "clear", "drop"}
	replaceWords = []string{"replace", "jagya par", "badle", "instead"}
	addWords     = []string{"add", "create", "new", "include"}
	updateWords  = []string{"change", "update", "set", "karo", "make", "edit"}

	taxWords      = []string{"gst", "tax", "vat"}
	qtyHintWords  = []string{"qty", "quantity", "count"}
	rateHintWords = []string{"rate", "price", "rs", "rupees"}
)

// ordinalKeywords resolve positional item references. Checked in order.
var ordinalKeywords = []struct {
	Keyword string
	Index   int // -1 means last item
}{
	{"first", 0}, {"1st", 0},
	{"second", 1}, {"2nd", 1},
	{"third", 2}, {"3rd", 2},
	{"last", -1},
}
