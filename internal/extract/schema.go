package extract

import (
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// envelopeSchema checks the minimum an extraction result must carry before it
// is persisted without review. Platform grammars stay lenient on purpose, so
// the gate is what flags half-empty results instead of failing them.
const envelopeSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "platform": {
      "type": "string",
      "enum": ["lieferando", "wolt", "uber_eats"]
    },
    "invoice_number": {
      "type": "string",
      "minLength": 3,
      "pattern": "^[A-Za-z0-9/_\\-]+$"
    },
    "invoice_date": {"type": "string", "format": "date"},
    "total_amount": {"type": "number"},
    "confidence": {"type": "integer", "minimum": 1, "maximum": 100}
  },
  "required": ["platform", "invoice_number", "invoice_date", "total_amount", "confidence"]
}`

var envelope = jsonschema.MustCompileString("envelope.json", envelopeSchema)

// Validate runs the envelope schema over the result and marks it for review
// on any violation. Validation never rejects: a failing result still gets
// persisted, it just lands in the review queue.
func Validate(d *Data) {
	doc := map[string]any{
		"platform":   string(d.Platform),
		"confidence": d.Confidence,
	}
	if d.InvoiceNumber != "" {
		doc["invoice_number"] = d.InvoiceNumber
	}
	if d.InvoiceDate != nil {
		doc["invoice_date"] = d.InvoiceDate.Format(time.DateOnly)
	}
	if d.TotalAmount != nil {
		doc["total_amount"] = *d.TotalAmount
	}

	if err := envelope.Validate(doc); err != nil {
		d.NeedsReview = true
	}
	// placeholder numbers are always reviewed, even when well-formed
	if strings.HasPrefix(d.InvoiceNumber, "TEMP-") {
		d.NeedsReview = true
	}
}
