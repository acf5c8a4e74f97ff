package engine

import (
	"context"
	"strings"

	"kagaz/internal/domain"
	"kagaz/internal/port"
)

// LocalParser adapts the rule-based engine to port.PromptParser so it can sit
// at the end of the dispatch chain. It never returns an error: input it does
// not understand yields an empty update.
type LocalParser struct{}

// NewLocalParser creates the local rule-based parser.
func NewLocalParser() *LocalParser {
	return &LocalParser{}
}

// Parse routes the prompt to the freeform parser when the document has no
// items yet (building from scratch) and to the command resolver otherwise
// (single-instruction edit). A bulk prompt on a populated document, several
// delimited item lines with no edit keyword, is a re-entry of the item list
// and goes freeform as well.
func (p *LocalParser) Parse(_ context.Context, input port.ParseInput) (*domain.DocumentUpdate, error) {
	doc := input.Document
	if doc == nil {
		doc = domain.NewDocument("")
	}
	var update domain.DocumentUpdate
	if len(doc.Items) == 0 || isBulkPrompt(input.Prompt) {
		update = ParseFreeform(input.Prompt, doc)
	} else {
		update = ResolveCommand(input.Prompt, doc)
	}
	return &update, nil
}

// isBulkPrompt reports whether a prompt reads as a multi-line item dump
// rather than a single edit instruction: no intent keyword and at least two
// delimited segments that each tokenize to an item. The two-segment floor
// keeps thousands separators ("Sofa set 1,500") on the command path.
func isBulkPrompt(prompt string) bool {
	lower := strings.ToLower(prompt)
	for _, set := range [][]string{removeWords, replaceWords, addWords, updateWords, taxWords} {
		if containsAny(lower, set) {
			return false
		}
	}
	segments := 0
	for _, segment := range segmentSplitRe.Split(prompt, -1) {
		if TokenizeItemLine(segment) != nil {
			segments++
		}
	}
	return segments >= 2
}
