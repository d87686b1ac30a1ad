// Package pipeline drives the email-to-invoice flow: subject gating, PDF text
// extraction, platform classification, field extraction, dedup and persist,
// then a second pass merging netting reports into the invoices they reference.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cc-collective/invoice-ingest/constants"
	"github.com/cc-collective/invoice-ingest/internal/classify"
	"github.com/cc-collective/invoice-ingest/internal/common"
	"github.com/cc-collective/invoice-ingest/internal/entity"
	"github.com/cc-collective/invoice-ingest/internal/extract"
	"github.com/cc-collective/invoice-ingest/internal/normalize"
)

// Processor coordinates the two-pass handling of one email.
type Processor struct {
	logger   *slog.Logger
	store    Store
	text     TextExtractor
	notifier Notifier
	now      func() time.Time
}

func NewProcessor(logger *slog.Logger, store Store, text TextExtractor, notifier Notifier) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:   logger,
		store:    store,
		text:     text,
		notifier: notifier,
		now:      time.Now,
	}
}

// nettingDoc is a netting report held back for the second pass, after every
// primary invoice in the same email has been persisted.
type nettingDoc struct {
	filename string
	text     string
}

// ProcessEmail runs the full flow for one email. One broken PDF never aborts
// the rest: decode and store failures are counted and the remaining
// attachments still go through. The returned stats are also folded into batch
// and handed to the notifier.
func (p *Processor) ProcessEmail(ctx context.Context, batch *BatchStats, email entity.Email) (stats EmailStats, err error) {
	meta := entity.EmailMeta{Subject: email.Subject, Sender: email.From, Received: email.Date}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("process email %s: panic: %v", email.ID, r)
			stats.Errors++
		}
		if batch != nil {
			batch.Add(stats)
		}
		if p.notifier != nil {
			p.notifier.EmailProcessed(ctx, meta, stats)
		}
	}()

	ctx = common.WithEmailID(ctx, email.ID)

	uberSubject, woltSubject := classify.IsSpecialReportSubject(email.Subject)
	if !uberSubject && !woltSubject && !classify.HasInvoiceSubject(email.Subject) {
		p.logger.Debug("pipeline.email.skipped", "email_id", email.ID, "subject", email.Subject)
		return stats, nil
	}

	pdfs := email.PDFs()
	stats.Detected = len(pdfs)
	if len(pdfs) == 0 {
		return stats, nil
	}

	var nettingQueue []nettingDoc
	for _, pdf := range pdfs {
		text, decodeErr := p.text.ExtractText(pdf.Content)
		if decodeErr != nil {
			p.logger.Error("pipeline.pdf.decode_failed", "email_id", email.ID, "filename", pdf.Filename, "err", decodeErr)
			stats.record(FileOutcome{Filename: pdf.Filename, Outcome: constants.OutcomeFailed, Err: decodeErr.Error()})
			continue
		}

		docType := constants.DocPrimaryInvoice
		firstPage := classify.FirstPage(text)
		switch {
		case uberSubject:
			docType = classify.SniffUberEats(firstPage)
		case woltSubject:
			docType = classify.SniffWoltPayout(firstPage)
		}

		switch docType {
		case constants.DocIrrelevant:
			p.logger.Debug("pipeline.pdf.irrelevant", "email_id", email.ID, "filename", pdf.Filename)
			stats.record(FileOutcome{Filename: pdf.Filename, Outcome: constants.OutcomeSkipped})
		case constants.DocNettingReport:
			nettingQueue = append(nettingQueue, nettingDoc{filename: pdf.Filename, text: text})
		default:
			p.processPrimary(ctx, &stats, meta, pdf.Filename, text)
		}
	}

	for _, doc := range nettingQueue {
		p.processNetting(ctx, &stats, doc)
	}

	p.logger.Info("pipeline.email.processed", "email_id", email.ID, "subject", email.Subject, "summary", stats.Summary())
	return stats, nil
}

// processPrimary classifies, extracts and persists one primary invoice PDF.
func (p *Processor) processPrimary(ctx context.Context, stats *EmailStats, meta entity.EmailMeta, filename, text string) {
	platform := classify.Classify(filename, text)
	if platform == constants.PlatformUnknown {
		p.logger.Debug("pipeline.pdf.unclassified", "filename", filename)
		stats.record(FileOutcome{Filename: filename, Platform: platform, Outcome: constants.OutcomeSkipped})
		return
	}

	data := extract.Extract(platform, text)
	if data.InvoiceNumber == "" {
		// a placeholder keeps the document instead of dropping it; review
		// resolves the real number later
		data.InvoiceNumber = normalize.TempInvoiceNumber(p.now())
		p.logger.Warn("pipeline.pdf.no_invoice_number", "filename", filename, "platform", platform, "placeholder", data.InvoiceNumber)
	}
	extract.Validate(data)

	outcome := FileOutcome{Filename: filename, Platform: platform, InvoiceNumber: data.InvoiceNumber}

	exists, err := p.store.Exists(ctx, platform, data.InvoiceNumber)
	if err != nil {
		p.logger.Error("pipeline.store.exists_failed", "filename", filename, "invoice_number", data.InvoiceNumber, "err", err)
		outcome.Outcome = constants.OutcomeFailed
		outcome.Err = err.Error()
		stats.record(outcome)
		return
	}
	if exists {
		p.logger.Info("pipeline.invoice.duplicate", "platform", platform, "invoice_number", data.InvoiceNumber)
		outcome.Outcome = constants.OutcomeDuplicate
		stats.record(outcome)
		return
	}

	inv, err := p.store.CreateInvoice(ctx, &CreateInvoiceRequest{Data: data, Email: meta, Filename: filename})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateInvoice) {
			// lost the race against a concurrent insert of the same number
			outcome.Outcome = constants.OutcomeDuplicate
			stats.record(outcome)
			return
		}
		p.logger.Error("pipeline.store.create_failed", "filename", filename, "invoice_number", data.InvoiceNumber, "err", err)
		outcome.Outcome = constants.OutcomeFailed
		outcome.Err = err.Error()
		stats.record(outcome)
		return
	}

	p.logger.Info("pipeline.invoice.created",
		"id", inv.ID,
		"platform", platform,
		"invoice_number", data.InvoiceNumber,
		"needs_review", data.NeedsReview,
		"confidence", data.Confidence,
	)
	outcome.Outcome = constants.OutcomeCreated
	stats.record(outcome)
}

// processNetting merges one held-back netting report into the Wolt invoice it
// references. Reports whose invoice cannot be resolved are counted as
// orphaned and left for manual follow-up.
func (p *Processor) processNetting(ctx context.Context, stats *EmailStats, doc nettingDoc) {
	outcome := FileOutcome{Filename: doc.filename, Platform: constants.PlatformWolt}

	invoiceNumber := extract.FindNettingInvoiceNumber(doc.text)
	if invoiceNumber == "" {
		p.logger.Warn("pipeline.netting.no_invoice_number", "filename", doc.filename)
		outcome.Outcome = constants.OutcomeOrphaned
		stats.record(outcome)
		return
	}
	outcome.InvoiceNumber = invoiceNumber

	fields := extract.ExtractNetting(doc.text)
	err := p.store.AttachNetting(ctx, invoiceNumber, fields, doc.text)
	switch {
	case err == nil:
		p.logger.Info("pipeline.netting.merged", "invoice_number", invoiceNumber, "filename", doc.filename)
		outcome.Outcome = constants.OutcomeMerged
	case errors.Is(err, common.ErrNoMatchingInvoice):
		p.logger.Warn("pipeline.netting.orphaned", "invoice_number", invoiceNumber, "filename", doc.filename)
		outcome.Outcome = constants.OutcomeOrphaned
	default:
		p.logger.Error("pipeline.netting.failed", "invoice_number", invoiceNumber, "err", err)
		outcome.Outcome = constants.OutcomeFailed
		outcome.Err = err.Error()
	}
	stats.record(outcome)
}
