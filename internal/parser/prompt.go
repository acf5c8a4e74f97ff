package parser

import "fmt"

// BuildExtractionPrompt wraps the user's free text with instructions that
// force the model to emit the JSON wire shape the gateway knows how to map
// onto a document update.
func BuildExtractionPrompt(userInput string) string {
	return fmt.Sprintf(`Extract structured business-document data from the following informal text and return ONLY valid JSON.

INPUT TEXT:
%s

INSTRUCTIONS:
1. Parse the text to identify customer details, line items, transport info, dates, payment terms, and notes.
2. Return ONLY a valid JSON object (no markdown, no explanations, no code blocks).
3. Use null for missing fields.
4. Quantities and prices must be numbers, not strings.
5. Dates must be in YYYY-MM-DD format.

OUTPUT SCHEMA:
{
  "customerDetails": {"name": null, "address": null, "city": null, "state": null, "zip": null, "phone": null, "email": null, "gstin": null},
  "items": [{"name": "", "description": null, "quantity": 0, "unit": null, "unitPrice": 0, "taxRate": null}],
  "transportDetails": {"mode": null, "vehicleNo": null, "distance": null},
  "documentType": null,
  "documentNumber": null,
  "date": null,
  "dueDate": null,
  "notes": null,
  "termsAndConditions": null
}`, userInput)
}
