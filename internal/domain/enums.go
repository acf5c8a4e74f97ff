package domain

// DocumentType identifies the kind of business document being generated.
type DocumentType string

const (
	DocTypeTaxInvoice        DocumentType = "Tax Invoice"
	DocTypeProformaInvoice   DocumentType = "Proforma Invoice"
	DocTypeCommercialInvoice DocumentType = "Commercial Invoice"
	DocTypeQuotation         DocumentType = "Quotation"
	DocTypeEstimate          DocumentType = "Estimate"
	DocTypePurchaseOrder     DocumentType = "Purchase Order"
	DocTypeSalesOrder        DocumentType = "Sales Order"
	DocTypeDeliveryChallan   DocumentType = "Delivery Challan"
	DocTypeBillOfSupply      DocumentType = "Bill of Supply"
	DocTypeDebitNote         DocumentType = "Debit Note"
	DocTypeCreditNote        DocumentType = "Credit Note"
	DocTypeReceipt           DocumentType = "Receipt"
	DocTypePackingList       DocumentType = "Packing List"
	DocTypeExportInvoice     DocumentType = "Export Invoice"
	DocTypeImportInvoice     DocumentType = "Import Invoice"
	DocTypePaymentVoucher    DocumentType = "Payment Voucher"
	DocTypeExpenseVoucher    DocumentType = "Expense Voucher"
	DocTypeWorkOrder         DocumentType = "Work Order"
	DocTypePerformaPO        DocumentType = "Performa PO"
	DocTypeCustomsInvoice    DocumentType = "Customs Invoice"
	DocTypeJobWorkChallan    DocumentType = "Job Work Challan"
	DocTypeRefundInvoice     DocumentType = "Refund Invoice"
	DocTypeServiceInvoice    DocumentType = "Service Invoice"
)

// ValidDocumentTypes is the set of accepted document types.
var ValidDocumentTypes = map[DocumentType]bool{
	DocTypeTaxInvoice:        true,
	DocTypeProformaInvoice:   true,
	DocTypeCommercialInvoice: true,
	DocTypeQuotation:         true,
	DocTypeEstimate:          true,
	DocTypePurchaseOrder:     true,
	DocTypeSalesOrder:        true,
	DocTypeDeliveryChallan:   true,
	DocTypeBillOfSupply:      true,
	DocTypeDebitNote:         true,
	DocTypeCreditNote:        true,
	DocTypeReceipt:           true,
	DocTypePackingList:       true,
	DocTypeExportInvoice:     true,
	DocTypeImportInvoice:     true,
	DocTypePaymentVoucher:    true,
	DocTypeExpenseVoucher:    true,
	DocTypeWorkOrder:         true,
	DocTypePerformaPO:        true,
	DocTypeCustomsInvoice:    true,
	DocTypeJobWorkChallan:    true,
	DocTypeRefundInvoice:     true,
	DocTypeServiceInvoice:    true,
}

// DocumentStatus represents the lifecycle state of a working document.
type DocumentStatus string

const (
	StatusDraft     DocumentStatus = "Draft"
	StatusSent      DocumentStatus = "Sent"
	StatusPaid      DocumentStatus = "Paid"
	StatusCancelled DocumentStatus = "Cancelled"
)

// UpdateSource records which parser produced a document update.
type UpdateSource string

const (
	SourceRemote UpdateSource = "remote"
	SourceLocal  UpdateSource = "local"
)
