package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/cc-collective/invoice-ingest/constants"
	"github.com/cc-collective/invoice-ingest/internal/entity"
	"github.com/cc-collective/invoice-ingest/internal/extract"
	"github.com/cc-collective/invoice-ingest/internal/pipeline"
)

type fakeRepo struct {
	invoices   []*entity.Invoice
	lastFilter entity.InvoiceFilter
}

func (f *fakeRepo) Exists(context.Context, constants.Platform, string) (bool, error) {
	return false, nil
}

func (f *fakeRepo) CreateInvoice(context.Context, *pipeline.CreateInvoiceRequest) (*entity.Invoice, error) {
	return nil, nil
}

func (f *fakeRepo) AttachNetting(context.Context, string, *extract.NettingFields, string) error {
	return nil
}

func (f *fakeRepo) ListInvoices(_ context.Context, filter entity.InvoiceFilter) ([]*entity.Invoice, error) {
	f.lastFilter = filter
	return f.invoices, nil
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func amount(v float64) *float64 { return &v }

func TestExportInvoicesXLSX(t *testing.T) {
	repo := &fakeRepo{invoices: []*entity.Invoice{
		{
			ID:            uuid.New(),
			Platform:      constants.PlatformWolt,
			InvoiceNumber: "DEU/25/HRB274170B/1/35",
			InvoiceDate:   date(2025, time.March, 31),
			SupplierName:  constants.SupplierWolt,
			TotalAmount:   amount(1011.98),
			Status:        constants.InvoiceStatusDraft,
			HasNetting:    true,
			EmailSubject:  "Wolt Rechnung",
		},
		{
			ID:            uuid.New(),
			Platform:      constants.PlatformLieferando,
			InvoiceNumber: "250331123456789",
			SupplierName:  constants.SupplierLieferando,
			Status:        constants.InvoiceStatusDraft,
			NeedsReview:   true,
		},
	}}

	svc := NewService(repo, nil)
	out, err := svc.ExportInvoicesXLSX(context.Background(), "", nil, nil)
	if err != nil {
		t.Fatalf("ExportInvoicesXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	get := func(cell string) string {
		v, err := f.GetCellValue("Invoices", cell)
		if err != nil {
			t.Fatalf("cell %s: %v", cell, err)
		}
		return v
	}

	if got := get("A1"); got != "Platform" {
		t.Fatalf("header A1 = %q", got)
	}
	if got := get("B2"); got != "DEU/25/HRB274170B/1/35" {
		t.Fatalf("invoice number = %q", got)
	}
	if got := get("C2"); got != "2025-03-31" {
		t.Fatalf("invoice date = %q", got)
	}
	if got := get("G2"); got != "1.011,98" {
		t.Fatalf("total = %q", got)
	}
	if got := get("A3"); got != "lieferando" {
		t.Fatalf("second platform = %q", got)
	}
	if got := get("C3"); got != "" {
		t.Fatalf("missing date should be blank, got %q", got)
	}
}

func TestExportNormalizesDateWindow(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nil)

	from := time.Date(2025, time.March, 1, 13, 45, 0, 0, time.UTC)
	if _, err := svc.ExportInvoicesXLSX(context.Background(), constants.PlatformWolt, &from, nil); err != nil {
		t.Fatalf("ExportInvoicesXLSX: %v", err)
	}

	if repo.lastFilter.Platform != constants.PlatformWolt {
		t.Fatalf("platform filter = %q", repo.lastFilter.Platform)
	}
	if repo.lastFilter.From == nil || !repo.lastFilter.From.Equal(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("from not normalized to midnight: %v", repo.lastFilter.From)
	}
	// from without to implies a window ending today
	if repo.lastFilter.To == nil {
		t.Fatal("to should default to today when only from is set")
	}
}
