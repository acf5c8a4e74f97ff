package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"kagaz/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// itemColumns defines the CSV header row for document line items.
var itemColumns = []string{
	"#",
	"Item Name",
	"Description",
	"HSN/SAC",
	"Quantity",
	"Unit",
	"Unit Price",
	"Tax Rate (%)",
	"Taxable Value",
	"Tax Amount",
	"Total Amount",
}

// CSVWriter exports a document's line items as CSV.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteDocument writes a header block, the item table, and a totals row.
func (w *CSVWriter) WriteDocument(doc *domain.Document) error {
	meta := [][]string{
		{string(doc.DocumentType), doc.DocumentNumber},
		{"Date", doc.Date},
		{"Buyer", doc.Buyer.CompanyName},
		{"Buyer GSTIN", doc.Buyer.GSTIN},
		{},
	}
	for _, row := range meta {
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}

	if err := w.csv.Write(itemColumns); err != nil {
		return err
	}
	for i := range doc.Items {
		if err := w.csv.Write(itemRow(i, &doc.Items[i])); err != nil {
			return err
		}
	}

	totals := []string{
		"", "Totals", "", "", "", "", "", "",
		fmtf(doc.TotalTaxable), fmtf(doc.TotalTax), fmtf(doc.GrandTotal),
	}
	return w.csv.Write(totals)
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

func itemRow(idx int, item *domain.Item) []string {
	return []string{
		fmt.Sprintf("%d", idx+1),
		item.Name,
		item.Description,
		item.HSNSACCode,
		fmtf(item.Quantity),
		item.Unit,
		fmtf(item.UnitPrice),
		fmtf(item.TaxRate),
		fmtf(item.TaxableValue),
		fmtf(item.TaxAmount),
		fmtf(item.TotalAmount),
	}
}

func fmtf(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
