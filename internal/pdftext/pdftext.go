// Package pdftext extracts plain text from PDF attachments. Pages are joined
// with a form feed so downstream sniffing can look at the first page alone.
package pdftext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/cc-collective/invoice-ingest/internal/common"
)

// Extractor reads the text layer of machine-generated PDFs. The platform
// invoices all carry one; scanned documents come out empty and are handled
// upstream as extraction misses.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the concatenated text of every page. The underlying
// reader panics on some malformed inputs, so decoding is fenced with a
// recover and any failure surfaces as ErrPDFDecode.
func (e *Extractor) ExtractText(content []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = common.NewAppError("PDF_DECODE", fmt.Sprintf("reader panic: %v", r), common.ErrPDFDecode)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", common.NewAppError("PDF_DECODE", "open pdf", common.ErrPDFDecode)
	}

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", common.NewAppError("PDF_DECODE", fmt.Sprintf("page %d", i), common.ErrPDFDecode)
		}
		var b strings.Builder
		for _, row := range rows {
			for j, word := range row.Content {
				if j > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(word.S)
			}
			b.WriteByte('\n')
		}
		pages = append(pages, b.String())
	}
	return strings.Join(pages, "\f"), nil
}
