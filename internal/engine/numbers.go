package engine

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	bareNumberRe    = regexp.MustCompile(`\d+(\.\d+)?`)
	wholeNumberRe   = regexp.MustCompile(`^\d+(\.\d+)?$`)
	leadingNumberRe = regexp.MustCompile(`^\d+(\.\d+)?`)
)

func isNumeric(tok string) bool {
	return wholeNumberRe.MatchString(tok)
}

// firstNumber returns the first bare number appearing anywhere in text.
func firstNumber(text string) (float64, bool) {
	m := bareNumberRe.FindString(text)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	return v, err == nil
}

// allNumbers returns every bare number in text, in order of appearance.
func allNumbers(text string) []float64 {
	matches := bareNumberRe.FindAllString(text, -1)
	nums := make([]float64, 0, len(matches))
	for _, m := range matches {
		if v, err := strconv.ParseFloat(m, 64); err == nil {
			nums = append(nums, v)
		}
	}
	return nums
}

// leadingNumber parses a numeric prefix of a token, so "30," yields 30.
func leadingNumber(tok string) (float64, bool) {
	m := leadingNumberRe.FindString(tok)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	return v, err == nil
}

// numberNear finds a number adjacent to any of the given keywords: one or two
// tokens ahead first, then one token behind.
func numberNear(text string, keywords []string) (float64, bool) {
	tokens := strings.Fields(text)
	for i, tok := range tokens {
		hit := false
		for _, k := range keywords {
			if strings.Contains(tok, k) {
				hit = true
				break
			}
		}
		if !hit {
			continue
		}
		if i+1 < len(tokens) {
			if v, ok := leadingNumber(tokens[i+1]); ok {
				return v, true
			}
		}
		if i+2 < len(tokens) {
			if v, ok := leadingNumber(tokens[i+2]); ok {
				return v, true
			}
		}
		if i-1 >= 0 {
			if v, ok := leadingNumber(tokens[i-1]); ok {
				return v, true
			}
		}
	}
	return 0, false
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
