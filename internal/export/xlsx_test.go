package export_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"kagaz/internal/export"
)

func TestWriteXLSX_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	doc := exportDoc()

	require.NoError(t, export.WriteXLSX(&buf, doc))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Document"}, f.GetSheetList())

	docType, err := f.GetCellValue("Document", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Tax Invoice", docType)

	number, err := f.GetCellValue("Document", "B1")
	require.NoError(t, err)
	assert.Equal(t, "INV-2026-042", number)

	// Row 6 is the item header, rows 7-8 the items, row 9 the totals.
	header, err := f.GetCellValue("Document", "B6")
	require.NoError(t, err)
	assert.Equal(t, "Item Name", header)

	riceName, err := f.GetCellValue("Document", "B7")
	require.NoError(t, err)
	assert.Equal(t, "Rice", riceName)

	grand, err := f.GetCellValue("Document", "K9")
	require.NoError(t, err)
	assert.Equal(t, "1652", grand)
}
