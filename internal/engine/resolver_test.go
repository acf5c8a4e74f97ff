package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kagaz/internal/domain"
	"kagaz/internal/engine"
)

func twoItemDoc(t *testing.T) *domain.Document {
	t.Helper()
	doc := domain.NewDocument("")
	doc.Items = []domain.Item{
		domain.NewItem("Rice", 10, 50),
		domain.NewItem("Sugar", 20, 45),
	}
	doc.RecomputeTotals()
	return doc
}

func TestResolveCommand_RemoveByName(t *testing.T) {
	doc := twoItemDoc(t)
	update := engine.ResolveCommand("remove sugar", doc)

	require.Len(t, update.Items, 1)
	assert.Equal(t, "Rice", update.Items[0].Name)
}

func TestResolveCommand_RemoveByOrdinal(t *testing.T) {
	doc := twoItemDoc(t)
	update := engine.ResolveCommand("delete the first item", doc)

	require.Len(t, update.Items, 1)
	assert.Equal(t, "Sugar", update.Items[0].Name)
}

func TestResolveCommand_RemoveLast(t *testing.T) {
	doc := twoItemDoc(t)
	update := engine.ResolveCommand("drop the last one", doc)

	require.Len(t, update.Items, 1)
	assert.Equal(t, "Rice", update.Items[0].Name)
}

func TestResolveCommand_TaxRemoval(t *testing.T) {
	doc := twoItemDoc(t)
	update := engine.ResolveCommand("gst hataavo", doc)

	require.Len(t, update.Items, 2)
	for _, item := range update.Items {
		assert.Equal(t, 0.0, item.TaxRate)
		assert.Equal(t, 0.0, item.TaxAmount)
		assert.Equal(t, item.TaxableValue, item.TotalAmount)
	}

	doc.Apply(&update)
	assert.Equal(t, doc.TotalTaxable, doc.GrandTotal)
	assert.Equal(t, 0.0, doc.TotalTax)
}

func TestResolveCommand_TaxRateSet(t *testing.T) {
	doc := twoItemDoc(t)
	update := engine.ResolveCommand("gst 12 karo", doc)

	require.Len(t, update.Items, 2)
	for _, item := range update.Items {
		assert.Equal(t, 12.0, item.TaxRate)
		assert.InDelta(t, item.TaxableValue*0.12, item.TaxAmount, 1e-9)
	}
}

func TestResolveCommand_TaxMentionWithoutNumberFallsThrough(t *testing.T) {
	doc := twoItemDoc(t)
	// No remove intent, no rate number: the shortcut does not fire and the
	// prompt resolves against items normally (no target, no number -> no-op).
	update := engine.ResolveCommand("what about tax", doc)

	assert.True(t, update.IsEmpty())
}

func TestResolveCommand_PositionalQuantityUpdate(t *testing.T) {
	doc := twoItemDoc(t)
	original := doc.Items[1]

	update := engine.ResolveCommand("first item qty 30 karo", doc)

	require.Len(t, update.Items, 2)
	first := update.Items[0]
	assert.Equal(t, 30.0, first.Quantity)
	assert.Equal(t, 1500.0, first.TaxableValue)
	assert.Equal(t, 270.0, first.TaxAmount)
	assert.Equal(t, 1770.0, first.TotalAmount)
	assert.Equal(t, original, update.Items[1])
}

func TestResolveCommand_PriceUpdateByName(t *testing.T) {
	doc := twoItemDoc(t)
	update := engine.ResolveCommand("update rice price to 60", doc)

	require.Len(t, update.Items, 2)
	assert.Equal(t, 60.0, update.Items[0].UnitPrice)
	assert.Equal(t, 600.0, update.Items[0].TaxableValue)
}

func TestResolveCommand_QtyAndPricePositional(t *testing.T) {
	doc := twoItemDoc(t)
	// Two bare numbers with both hints: quantity takes the first, price the second.
	update := engine.ResolveCommand("change sugar quantity 25 and price 55", doc)

	require.Len(t, update.Items, 2)
	sugar := update.Items[1]
	assert.Equal(t, 25.0, sugar.Quantity)
	assert.Equal(t, 55.0, sugar.UnitPrice)
	assert.Equal(t, 1375.0, sugar.TaxableValue)
}

func TestResolveCommand_FuzzyLastMatchWins(t *testing.T) {
	doc := twoItemDoc(t)
	update := engine.ResolveCommand("remove rice and sugar", doc)

	// Both names appear in the prompt; the later item wins and only it is
	// removed. One instruction edits one line.
	require.Len(t, update.Items, 1)
	assert.Equal(t, "Rice", update.Items[0].Name)
}

func TestResolveCommand_Replace(t *testing.T) {
	doc := twoItemDoc(t)
	update := engine.ResolveCommand("replace rice 20kg 55", doc)

	require.Len(t, update.Items, 2)
	replaced := update.Items[0]
	assert.Equal(t, 20.0, replaced.Quantity)
	assert.Equal(t, 55.0, replaced.UnitPrice)
	assert.Equal(t, 1100.0, replaced.TaxableValue)
	// The untargeted item is untouched.
	assert.Equal(t, "Sugar", update.Items[1].Name)
}

func TestResolveCommand_ReplaceKeepsOldPriceWhenNoneGiven(t *testing.T) {
	doc := twoItemDoc(t)
	update := engine.ResolveCommand("wheat instead of rice", doc)

	require.Len(t, update.Items, 2)
	replaced := update.Items[0]
	// No price in the prompt: the old price carries over.
	assert.Equal(t, 50.0, replaced.UnitPrice)
	assert.Equal(t, "Wheat instead rice", replaced.Name)
}

func TestResolveCommand_AddExplicit(t *testing.T) {
	doc := twoItemDoc(t)
	update := engine.ResolveCommand("add Wheat 5kg 60", doc)

	require.Len(t, update.Items, 3)
	added := update.Items[2]
	assert.Equal(t, 5.0, added.Quantity)
	assert.Equal(t, 60.0, added.UnitPrice)
	assert.Equal(t, float64(domain.DefaultTaxRate), added.TaxRate)
}

func TestResolveCommand_AddImplicitWithNumbers(t *testing.T) {
	doc := twoItemDoc(t)
	// No intent keyword at all, and no existing item name matches: the prompt
	// reads as a new item line.
	update := engine.ResolveCommand("Cement 50 350", doc)

	require.Len(t, update.Items, 3)
	assert.Equal(t, "Cement", update.Items[2].Name)
}

func TestResolveCommand_NoOpOnNoise(t *testing.T) {
	doc := twoItemDoc(t)
	before := doc.GrandTotal

	update := engine.ResolveCommand("xyzzy plugh", doc)

	assert.True(t, update.IsEmpty())
	doc.Apply(&update)
	assert.Len(t, doc.Items, 2)
	assert.Equal(t, before, doc.GrandTotal)
}

func TestResolveCommand_RemoveUnknownNameIsNoOp(t *testing.T) {
	doc := twoItemDoc(t)
	update := engine.ResolveCommand("remove the diamond ring", doc)

	assert.True(t, update.IsEmpty())
}

func TestResolveCommand_OrdinalOutOfRange(t *testing.T) {
	doc := domain.NewDocument("")
	doc.Items = []domain.Item{domain.NewItem("Rice", 10, 50)}
	doc.RecomputeTotals()

	update := engine.ResolveCommand("remove the third item", doc)

	assert.True(t, update.IsEmpty())
}

func TestResolveCommand_DoesNotMutateDocument(t *testing.T) {
	doc := twoItemDoc(t)
	engine.ResolveCommand("remove sugar", doc)
	engine.ResolveCommand("gst hataavo", doc)

	assert.Len(t, doc.Items, 2)
	assert.Equal(t, 18.0, doc.Items[0].TaxRate)
}
