package engine

import (
	"strings"

	"kagaz/internal/domain"
)

// ResolveCommand applies a single free-text edit instruction to an existing
// document and returns the resulting partial update. Each call is a one-shot
// classify-and-apply; nothing is kept between calls and the caller's document
// is never mutated.
//
// Unrecognized input degrades to an empty update rather than an error: a
// silent no-op is always preferred over a destructive guess. A structurally
// valid but wrong edit on genuinely ambiguous input is accepted behavior.
func ResolveCommand(prompt string, current *domain.Document) domain.DocumentUpdate {
	lower := strings.ToLower(prompt)

	isRemove := containsAny(lower, removeWords)
	isReplace := containsAny(lower, replaceWords)
	isAdd := containsAny(lower, addWords)
	isUpdate := containsAny(lower, updateWords)

	// Tax-rate shortcut: "gst hataavo", "gst 12 karo". Applies to every item.
	if containsAny(lower, taxWords) {
		if isRemove {
			items := domain.CloneItems(current.Items)
			for i := range items {
				items[i].TaxRate = 0
				items[i].Recompute()
			}
			return domain.DocumentUpdate{Items: items}
		}
		if rate, ok := firstNumber(lower); ok {
			items := domain.CloneItems(current.Items)
			for i := range items {
				items[i].TaxRate = rate
				items[i].Recompute()
			}
			return domain.DocumentUpdate{Items: items}
		}
	}

	target := resolveTarget(lower, current.Items)

	if isRemove && target != -1 {
		items := domain.CloneItems(current.Items)
		items = append(items[:target], items[target+1:]...)
		return domain.DocumentUpdate{Items: items}
	}

	if isReplace && target != -1 {
		if fields := TokenizeItemLine(prompt); fields != nil {
			items := domain.CloneItems(current.Items)
			item := &items[target]
			item.Name = fields.Name
			// Tokenizer defaults (zero price, unit quantity) fall back to
			// the old item's values.
			if fields.Quantity != 0 {
				item.Quantity = fields.Quantity
			}
			if fields.UnitPrice != 0 {
				item.UnitPrice = fields.UnitPrice
			}
			item.Recompute()
			return domain.DocumentUpdate{Items: items}
		}
	}

	// Targeted update. Any non-remove intent with a resolved target lands
	// here, including prompts that matched no intent keyword at all.
	if (isUpdate || !isRemove) && target != -1 {
		items := domain.CloneItems(current.Items)
		item := &items[target]

		if hasHintWord(lower, qtyHintWords) {
			if v, ok := numberNear(lower, []string{"qty", "quantity"}); ok {
				item.Quantity = v
			} else if nums := allNumbers(lower); len(nums) > 0 {
				item.Quantity = nums[0]
			}
		}
		if hasHintWord(lower, rateHintWords) {
			if v, ok := numberNear(lower, []string{"rate", "price", "rs"}); ok {
				item.UnitPrice = v
			} else if nums := allNumbers(lower); len(nums) > 0 {
				// With two bare numbers quantity took the first, so price
				// takes the second.
				if len(nums) > 1 {
					item.UnitPrice = nums[1]
				} else {
					item.UnitPrice = nums[0]
				}
			}
		}

		item.Recompute()
		return domain.DocumentUpdate{Items: items}
	}

	// Fallback ADD: explicit add intent, or nothing else matched. Without an
	// add keyword the prompt must at least carry a number; plain words that
	// matched nothing ("xyzzy plugh") stay a no-op instead of becoming a
	// phantom zero-price item.
	if isAdd || (!isRemove && !isUpdate && !isReplace) {
		if fields := TokenizeItemLine(prompt); fields != nil {
			if _, hasNum := firstNumber(lower); isAdd || hasNum {
				items := append(domain.CloneItems(current.Items),
					domain.NewItem(fields.Name, fields.Quantity, fields.UnitPrice))
				return domain.DocumentUpdate{Items: items}
			}
		}
	}

	// Not understood: do nothing, deliberately.
	return domain.DocumentUpdate{}
}

// hasHintWord matches hints as whole tokens. Substring matching would let
// "rs" fire inside unrelated words like "first".
func hasHintWord(lower string, words []string) bool {
	for _, tok := range strings.Fields(lower) {
		for _, w := range words {
			if tok == w {
				return true
			}
		}
	}
	return false
}

// resolveTarget locates the item an instruction refers to: ordinal keywords
// first, then fuzzy name match where the LAST item whose name appears in the
// prompt wins. Returns -1 when no target is found.
func resolveTarget(lower string, items []domain.Item) int {
	for _, ord := range ordinalKeywords {
		if !strings.Contains(lower, ord.Keyword) {
			continue
		}
		idx := ord.Index
		if idx == -1 {
			idx = len(items) - 1
		}
		if idx >= 0 && idx < len(items) {
			return idx
		}
		return -1
	}

	target := -1
	for idx := range items {
		name := strings.ToLower(items[idx].Name)
		if name == "" {
			continue
		}
		if strings.Contains(lower, name) {
			target = idx
		}
	}
	return target
}
