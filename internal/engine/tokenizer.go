package engine

import (
	"regexp"
	"strings"
	"unicode"
)

// ItemFields is the raw result of tokenizing one item-like text segment.
type ItemFields struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

var (
	thousandsRe   = regexp.MustCompile(`(\d+),(\d+)`)
	priceSuffixRe = regexp.MustCompile(`^(\d+(\.\d+)?)(rs|inr|\$|€)$`)
	qtySuffixRe   = regexp.MustCompile(`^(\d+(\.\d+)?)(kg|pcs|pc|nos)$`)
	unitStripRe   = regexp.MustCompile(`rs|inr|\$|kg|pcs`)
	fusedValueRe  = regexp.MustCompile(`\d+(kg|pcs|rs)`)
)

// TokenizeItemLine parses one free-text segment describing at most one item.
// It returns nil when the segment is not item-like (empty, or nothing left
// over for a name once numbers and marker words are consumed).
//
// Known limitation: unmarked numbers embedded in product names ("iPhone 14")
// can be claimed as quantity or price. That is inherent to the heuristic and
// deliberately not special-cased.
func TokenizeItemLine(text string) *ItemFields {
	raw := strings.TrimSpace(text)
	if raw == "" {
		return nil
	}

	// Strip thousands separators inside numbers ("1,000" -> "1000").
	clean := strings.ToLower(thousandsRe.ReplaceAllString(raw, "$1$2"))
	tokens := strings.Fields(clean)

	var (
		price, qty       float64
		hasPrice, hasQty bool
	)

	// First pass: numbers adjacent to marker words, and fused forms.
	for i, tok := range tokens {
		if m := priceSuffixRe.FindStringSubmatch(tok); m != nil {
			if v, ok := leadingNumber(m[1]); ok {
				price, hasPrice = v, true
				continue
			}
		}
		if m := qtySuffixRe.FindStringSubmatch(tok); m != nil {
			if v, ok := leadingNumber(m[1]); ok {
				qty, hasQty = v, true
				continue
			}
		}

		if !isNumeric(tok) {
			continue
		}
		v, _ := leadingNumber(tok)
		var prev, next string
		if i > 0 {
			prev = tokens[i-1]
		}
		if i+1 < len(tokens) {
			next = tokens[i+1]
		}
		switch {
		case priceMarkers[prev] || (next != "" && priceMarkers[next]):
			price, hasPrice = v, true
		case qtyMarkers[prev] || (next != "" && qtyMarkers[next]):
			qty, hasQty = v, true
		}
	}

	// Second pass: disambiguate unmarked numbers.
	var numericValues []float64
	for _, tok := range tokens {
		if isNumeric(tok) {
			v, _ := leadingNumber(tok)
			numericValues = append(numericValues, v)
		}
	}
	var unused []float64
	for _, n := range numericValues {
		if (hasPrice && n == price) || (hasQty && n == qty) {
			continue
		}
		unused = append(unused, n)
	}

	if len(unused) > 0 && !hasQty {
		candidate := unused[0]
		for _, n := range unused[1:] {
			if n < candidate {
				candidate = n
			}
		}
		// A single large unmarked number reads as a price, not a count.
		if len(unused) == 1 && candidate > 1000 && !hasPrice {
			price, hasPrice = candidate, true
			qty, hasQty = 1, true
		} else {
			qty, hasQty = candidate, true
		}
	}

	// Whatever number remains becomes the price. This tie-break is token
	// order, not magnitude, and can misassign with three or more unmarked
	// numbers; behavior is kept as-is.
	if !hasPrice {
		for _, n := range numericValues {
			if hasQty && n == qty {
				continue
			}
			price, hasPrice = n, true
			break
		}
	}

	if !hasQty {
		qty = 1
	}
	if !hasPrice {
		price = 0
	}

	// Name: every token not consumed as a value, fused suffix, or marker.
	var nameTokens []string
	for _, tok := range tokens {
		stripped := unitStripRe.ReplaceAllString(tok, "")
		if v, ok := leadingNumber(stripped); ok && (v == price || v == qty) {
			if isNumeric(tok) {
				continue
			}
			if fusedValueRe.MatchString(tok) {
				continue
			}
		}
		if priceMarkers[tok] || qtyMarkers[tok] || tok == "of" {
			continue
		}
		nameTokens = append(nameTokens, tok)
	}

	name := strings.TrimSpace(strings.Join(nameTokens, " "))
	if name == "" {
		return nil
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	name = string(runes)

	return &ItemFields{Name: name, Quantity: qty, UnitPrice: price}
}
