package entity

import (
	"time"

	"github.com/cc-collective/invoice-ingest/constants"
)

// Attachment is one file attached to a mailbox message. Content is the raw
// bytes as downloaded; only PDF attachments are processed further.
type Attachment struct {
	Filename string
	Content  []byte
}

// Email represents one mailbox message for data transfer between layers.
type Email struct {
	ID          string
	From        string
	Subject     string
	Date        time.Time
	Attachments []Attachment
}

// PDFs returns the attachments whose filename marks them as PDF documents.
func (e Email) PDFs() []Attachment {
	var out []Attachment
	for _, a := range e.Attachments {
		if constants.IsPDFFilename(a.Filename) {
			out = append(out, a)
		}
	}
	return out
}

// EmailMeta is the provenance stored alongside every invoice created from a
// mailbox message.
type EmailMeta struct {
	Subject  string
	Sender   string
	Received time.Time
}
