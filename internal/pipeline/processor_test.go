package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/cc-collective/invoice-ingest/constants"
	"github.com/cc-collective/invoice-ingest/internal/common"
	"github.com/cc-collective/invoice-ingest/internal/entity"
	"github.com/cc-collective/invoice-ingest/internal/extract"
)

// fakeExtractor treats attachment content as the extracted text; contents
// starting with the corrupt marker fail like a broken PDF would.
type fakeExtractor struct{}

const corruptMarker = "%%corrupt%%"

func (fakeExtractor) ExtractText(content []byte) (string, error) {
	if strings.HasPrefix(string(content), corruptMarker) {
		return "", common.ErrPDFDecode
	}
	return string(content), nil
}

type storedInvoice struct {
	req *CreateInvoiceRequest
}

type fakeStore struct {
	invoices map[string]*storedInvoice // platform + "/" + number
	netting  map[string]*extract.NettingFields
	failNext error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		invoices: make(map[string]*storedInvoice),
		netting:  make(map[string]*extract.NettingFields),
	}
}

func key(p constants.Platform, n string) string { return string(p) + "/" + n }

func (s *fakeStore) Exists(_ context.Context, platform constants.Platform, invoiceNumber string) (bool, error) {
	_, ok := s.invoices[key(platform, invoiceNumber)]
	return ok, nil
}

func (s *fakeStore) CreateInvoice(_ context.Context, req *CreateInvoiceRequest) (*entity.Invoice, error) {
	if s.failNext != nil {
		err := s.failNext
		s.failNext = nil
		return nil, err
	}
	k := key(req.Data.Platform, req.Data.InvoiceNumber)
	if _, ok := s.invoices[k]; ok {
		return nil, common.ErrDuplicateInvoice
	}
	s.invoices[k] = &storedInvoice{req: req}
	return &entity.Invoice{
		ID:            uuid.New(),
		Platform:      req.Data.Platform,
		InvoiceNumber: req.Data.InvoiceNumber,
	}, nil
}

func (s *fakeStore) AttachNetting(_ context.Context, invoiceNumber string, fields *extract.NettingFields, _ string) error {
	if _, ok := s.invoices[key(constants.PlatformWolt, invoiceNumber)]; !ok {
		return common.ErrNoMatchingInvoice
	}
	s.netting[invoiceNumber] = fields
	return nil
}

type notification struct {
	email entity.EmailMeta
	stats EmailStats
}

type fakeNotifier struct {
	sent []notification
}

func (n *fakeNotifier) EmailProcessed(_ context.Context, email entity.EmailMeta, stats EmailStats) {
	n.sent = append(n.sent, notification{email: email, stats: stats})
}

const woltInvoiceText = `Rechnung (Selbstfakturierung)
Rechnungsnummer DEU/25/HRB274170B/1/35
Rechnungsdatum 17.11.2025
Endbetrag 100,00 19,00 119,00
`

const woltNettingText = `Übersicht Umsätze und Auszahlungen
Rechnungsnummer DEU/25/HRB274170B/1/35
DEU/25/HRB274170B/1/35 100,00 19,00 119,00
Nettoauszahlung 119,00
`

const lieferandoInvoiceText = `Lieferando.de
Rechnung Nr: 9917350273
Gesamtbetrag dieser Rechnung € 103,34
`

func attachment(name, text string) entity.Attachment {
	return entity.Attachment{Filename: name, Content: []byte(text)}
}

func newTestProcessor(store Store) (*Processor, *fakeNotifier) {
	notifier := &fakeNotifier{}
	return NewProcessor(nil, store, fakeExtractor{}, notifier), notifier
}

func TestProcessEmailCreatesInvoice(t *testing.T) {
	store := newFakeStore()
	p, notifier := newTestProcessor(store)

	email := entity.Email{
		ID:      "msg-1",
		From:    "noreply@takeaway.com",
		Subject: "Ihre Rechnung von Lieferando",
		Date:    time.Date(2025, 11, 17, 9, 0, 0, 0, time.UTC),
		Attachments: []entity.Attachment{
			attachment("rechnung_und_einzelauflistung.pdf", lieferandoInvoiceText),
		},
	}

	stats, err := p.ProcessEmail(context.Background(), nil, email)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Detected != 1 || stats.Created != 1 || stats.Errors != 0 {
		t.Fatalf("stats = %s", stats.Summary())
	}

	stored, ok := store.invoices[key(constants.PlatformLieferando, "9917350273")]
	if !ok {
		t.Fatal("invoice not persisted")
	}
	if stored.req.Email.Subject != email.Subject {
		t.Errorf("email provenance subject = %q", stored.req.Email.Subject)
	}
	if len(notifier.sent) != 1 {
		t.Fatalf("got %d notifications, want 1", len(notifier.sent))
	}
	if got := notifier.sent[0].stats.Created; got != 1 {
		t.Errorf("notified created = %d", got)
	}
}

func TestProcessEmailDuplicate(t *testing.T) {
	store := newFakeStore()
	p, _ := newTestProcessor(store)

	email := entity.Email{
		ID:      "msg-1",
		Subject: "Rechnung",
		Attachments: []entity.Attachment{
			attachment("rechnung_und_einzelauflistung.pdf", lieferandoInvoiceText),
		},
	}

	if _, err := p.ProcessEmail(context.Background(), nil, email); err != nil {
		t.Fatal(err)
	}
	email.ID = "msg-2"
	stats, err := p.ProcessEmail(context.Background(), nil, email)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Created != 0 || stats.Duplicates != 1 {
		t.Fatalf("stats = %s", stats.Summary())
	}
	if len(store.invoices) != 1 {
		t.Fatalf("got %d invoices, want 1", len(store.invoices))
	}
}

// The netting report is held back until every primary invoice of the email is
// persisted, so attachment order must not matter.
func TestProcessEmailNettingTwoPass(t *testing.T) {
	store := newFakeStore()
	p, _ := newTestProcessor(store)

	email := entity.Email{
		ID:      "msg-1",
		Subject: "Wolt Payout Report 01.11.-16.11.",
		Attachments: []entity.Attachment{
			// netting report deliberately listed before the invoice
			attachment("shop__netting_report__semi_monthly__2025-11-01__2025-11-16.pdf", woltNettingText),
			attachment("shop_2025-11-16_00:00:00.000_692cfcbbc3686f9e6b931ea6.pdf", woltInvoiceText),
		},
	}

	stats, err := p.ProcessEmail(context.Background(), nil, email)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Created != 1 || stats.Merged != 1 || stats.Orphaned != 0 {
		t.Fatalf("stats = %s", stats.Summary())
	}
	fields, ok := store.netting["DEU/25/HRB274170B/1/35"]
	if !ok {
		t.Fatal("netting not attached")
	}
	if fields.NetPayout == nil || *fields.NetPayout != 119.00 {
		t.Errorf("net payout = %v", fields.NetPayout)
	}
}

func TestProcessEmailNettingOrphaned(t *testing.T) {
	store := newFakeStore()
	p, _ := newTestProcessor(store)

	email := entity.Email{
		ID:      "msg-1",
		Subject: "Wolt payout report",
		Attachments: []entity.Attachment{
			attachment("shop__netting_report__semi_monthly__2025-11-01__2025-11-16.pdf", woltNettingText),
		},
	}

	stats, err := p.ProcessEmail(context.Background(), nil, email)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Merged != 0 || stats.Orphaned != 1 {
		t.Fatalf("stats = %s", stats.Summary())
	}
}

// One corrupt PDF among three must cost exactly one error and leave the other
// two fully processed.
func TestProcessEmailCorruptPDFDoesNotAbort(t *testing.T) {
	store := newFakeStore()
	p, _ := newTestProcessor(store)

	email := entity.Email{
		ID:      "msg-1",
		Subject: "Rechnung November",
		Attachments: []entity.Attachment{
			attachment("rechnung_und_woche_44.pdf", lieferandoInvoiceText),
			attachment("broken.pdf", corruptMarker),
			attachment("rechnung_und_woche_45.pdf", strings.ReplaceAll(lieferandoInvoiceText, "9917350273", "9917350274")),
		},
	}

	stats, err := p.ProcessEmail(context.Background(), nil, email)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Detected != 3 || stats.Created != 2 || stats.Errors != 1 {
		t.Fatalf("stats = %s", stats.Summary())
	}
}

func TestProcessEmailUnknownPlatformSkipped(t *testing.T) {
	store := newFakeStore()
	p, _ := newTestProcessor(store)

	email := entity.Email{
		ID:      "msg-1",
		Subject: "Rechnungsübersicht",
		Attachments: []entity.Attachment{
			attachment("statement.pdf", "1&1 Telecom GmbH Rechnungsübersicht Dezember"),
		},
	}

	stats, err := p.ProcessEmail(context.Background(), nil, email)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Skipped != 1 || stats.Created != 0 {
		t.Fatalf("stats = %s", stats.Summary())
	}
	if len(store.invoices) != 0 {
		t.Fatal("unrelated PDF persisted")
	}
}

func TestProcessEmailPlaceholderNumber(t *testing.T) {
	store := newFakeStore()
	p, _ := newTestProcessor(store)
	p.now = func() time.Time { return time.Date(2025, 11, 17, 12, 0, 0, 0, time.UTC) }

	email := entity.Email{
		ID:      "msg-1",
		Subject: "Rechnung",
		Attachments: []entity.Attachment{
			attachment("scan.pdf", "Lieferando.de Abrechnung ohne Nummer"),
		},
	}

	stats, err := p.ProcessEmail(context.Background(), nil, email)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Created != 1 {
		t.Fatalf("stats = %s", stats.Summary())
	}
	stored, ok := store.invoices[key(constants.PlatformLieferando, "TEMP-20251117120000")]
	if !ok {
		t.Fatalf("placeholder invoice missing, have %v", store.invoices)
	}
	if !stored.req.Data.NeedsReview {
		t.Error("placeholder invoice not flagged for review")
	}
}

func TestProcessEmailNonInvoiceSubjectSkipped(t *testing.T) {
	store := newFakeStore()
	p, notifier := newTestProcessor(store)

	email := entity.Email{
		ID:      "msg-1",
		Subject: "Newsletter: neue Restaurants in deiner Stadt",
		Attachments: []entity.Attachment{
			attachment("rechnung_und_einzelauflistung.pdf", lieferandoInvoiceText),
		},
	}

	stats, err := p.ProcessEmail(context.Background(), nil, email)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Detected != 0 || stats.Created != 0 {
		t.Fatalf("stats = %s", stats.Summary())
	}
	if len(store.invoices) != 0 {
		t.Fatal("invoice created from non-invoice email")
	}
	if len(notifier.sent) != 1 {
		t.Fatal("notifier must still receive the digest")
	}
}

func TestProcessEmailStoreFailure(t *testing.T) {
	store := newFakeStore()
	store.failNext = errors.New("connection reset")
	p, _ := newTestProcessor(store)

	email := entity.Email{
		ID:      "msg-1",
		Subject: "Rechnung",
		Attachments: []entity.Attachment{
			attachment("rechnung_und_einzelauflistung.pdf", lieferandoInvoiceText),
		},
	}

	stats, err := p.ProcessEmail(context.Background(), nil, email)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Errors != 1 || stats.Created != 0 {
		t.Fatalf("stats = %s", stats.Summary())
	}
}

func TestBatchStatsAggregation(t *testing.T) {
	store := newFakeStore()
	p, _ := newTestProcessor(store)

	batch := &BatchStats{}
	first := entity.Email{
		ID:      "msg-1",
		Subject: "Rechnung",
		Attachments: []entity.Attachment{
			attachment("rechnung_und_einzelauflistung.pdf", lieferandoInvoiceText),
		},
	}
	second := entity.Email{
		ID:      "msg-2",
		Subject: "Rechnung",
		Attachments: []entity.Attachment{
			attachment("rechnung_und_einzelauflistung.pdf", lieferandoInvoiceText),
		},
	}

	if _, err := p.ProcessEmail(context.Background(), batch, first); err != nil {
		t.Fatal(err)
	}
	if _, err := p.ProcessEmail(context.Background(), batch, second); err != nil {
		t.Fatal(err)
	}

	if batch.Emails != 2 || batch.Created != 1 || batch.Duplicates != 1 {
		t.Fatalf("batch = %s", batch.Summary())
	}
}
