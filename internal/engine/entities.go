package engine

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"kagaz/internal/domain"
)

// One compiled matcher per entity kind so failures stay isolated and each
// pattern is testable on its own.
var (
	gstinRe     = regexp.MustCompile(`(?i)\d{2}[A-Z]{5}\d{4}[A-Z][A-Z\d]Z[A-Z\d]`)
	emailRe     = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe     = regexp.MustCompile(`(?:(?:\+|0{0,2})91(\s*-\s*)?|0?)?[6789]\d{9}`)
	pincodeRe   = regexp.MustCompile(`\b\d{6}\b`)
	dateRe      = regexp.MustCompile(`(\d{1,2}[-./]\d{1,2}[-./]\d{2,4})|(\d{4}[-./]\d{1,2}[-./]\d{1,2})`)
	dmyShapeRe  = regexp.MustCompile(`^[0-3]?\d[-./][01]?\d[-./]\d{4}$`)
	ymdShapeRe  = regexp.MustCompile(`^\d{4}[-./][01]?\d[-./][0-3]?\d$`)
	buyerLeadRe = regexp.MustCompile(`(?i)(?:to|client|customer|buyer|party)\s+([a-z0-9\s.&'-]+)`)
	dueInRe     = regexp.MustCompile(`(?i)due\s+(?:in|after)\s+(\d+)\s+days`)
)

// buyerStopWords terminate a buyer-name run. The regex above captures greedily
// (RE2 has no lookahead), so the capture is cut at the first stop word.
var buyerStopWords = []string{",", ";", ".", "gst", "date", "items", "consisting", "\n"}

// Entities is the sparse result of scanning a prompt for structured values.
// Empty string means the entity was not found; nothing is defaulted.
type Entities struct {
	DocumentType  domain.DocumentType
	GSTIN         string
	Email         string
	Phone         string
	CompanyName   string
	State         string
	PlaceOfSupply string
	Zip           string
	InvoiceDate   string
	DueDate       string
}

// ExtractEntities scans the full prompt text for structured entities. It is a
// pure function and never fails; absent entities are simply left empty.
func ExtractEntities(text string) Entities {
	var out Entities
	lower := strings.ToLower(text)

	for _, kw := range docTypeKeywords {
		if strings.Contains(lower, kw.Keyword) {
			out.DocumentType = kw.Type
			break
		}
	}

	if m := gstinRe.FindString(text); m != "" {
		out.GSTIN = strings.ToUpper(m)
	}
	if m := emailRe.FindString(text); m != "" {
		out.Email = m
	}
	if m := phoneRe.FindString(text); m != "" {
		out.Phone = m
	}
	if m := buyerLeadRe.FindStringSubmatch(text); m != nil {
		if name := trimBuyerName(m[1]); name != "" {
			out.CompanyName = name
		}
	}

	for _, state := range indianStates {
		if strings.Contains(lower, strings.ToLower(state)) {
			out.State = state
			// Simplifying assumption: place of supply follows the buyer state.
			out.PlaceOfSupply = state
			break
		}
	}

	// Bare 6-digit scan. Collides with other 6-digit numbers in the text;
	// accepted limitation.
	if m := pincodeRe.FindString(text); m != "" {
		out.Zip = m
	}

	dates := dateRe.FindAllString(text, -1)
	if len(dates) > 0 {
		out.InvoiceDate = normalizeDate(dates[0])
		if len(dates) > 1 {
			out.DueDate = normalizeDate(dates[1])
		}
	}
	if m := dueInRe.FindStringSubmatch(text); m != nil && out.InvoiceDate != "" {
		days, err := strconv.Atoi(m[1])
		if err == nil {
			if base, perr := time.Parse("2006-01-02", out.InvoiceDate); perr == nil {
				out.DueDate = base.AddDate(0, 0, days).Format("2006-01-02")
			}
		}
	}

	return out
}

// trimBuyerName cuts a greedy buyer-name capture at the first stop word.
func trimBuyerName(captured string) string {
	lower := strings.ToLower(captured)
	cut := len(captured)
	for _, stop := range buyerStopWords {
		if idx := strings.Index(lower, stop); idx >= 0 && idx < cut {
			cut = idx
		}
	}
	return strings.TrimSpace(captured[:cut])
}

var dateSepRe = regexp.MustCompile(`[-./]`)

// normalizeDate converts DD-MM-YYYY or YYYY-MM-DD shapes (with -, /, or .
// separators) to ISO "YYYY-MM-DD". Anything else yields "".
func normalizeDate(raw string) string {
	switch {
	case dmyShapeRe.MatchString(raw):
		parts := dateSepRe.Split(raw, -1)
		return parts[2] + "-" + pad2(parts[1]) + "-" + pad2(parts[0])
	case ymdShapeRe.MatchString(raw):
		parts := dateSepRe.Split(raw, -1)
		return parts[0] + "-" + pad2(parts[1]) + "-" + pad2(parts[2])
	default:
		return ""
	}
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
