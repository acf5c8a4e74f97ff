package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"kagaz/internal/domain"
)

const sheetName = "Document"

// WriteXLSX renders a document as a spreadsheet: header block, item table,
// and totals, mirroring the CSV layout.
func WriteXLSX(w io.Writer, doc *domain.Document) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	rows := [][]interface{}{
		{string(doc.DocumentType), doc.DocumentNumber},
		{"Date", doc.Date},
		{"Buyer", doc.Buyer.CompanyName},
		{"Buyer GSTIN", doc.Buyer.GSTIN},
		{},
	}

	header := make([]interface{}, len(itemColumns))
	for i, c := range itemColumns {
		header[i] = c
	}
	rows = append(rows, header)

	for i := range doc.Items {
		item := &doc.Items[i]
		rows = append(rows, []interface{}{
			i + 1, item.Name, item.Description, item.HSNSACCode,
			item.Quantity, item.Unit, item.UnitPrice, item.TaxRate,
			item.TaxableValue, item.TaxAmount, item.TotalAmount,
		})
	}

	rows = append(rows, []interface{}{
		"", "Totals", "", "", "", "", "", "",
		doc.TotalTaxable, doc.TotalTax, doc.GrandTotal,
	})

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("computing cell name: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
