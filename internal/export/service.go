package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/cc-collective/invoice-ingest/constants"
	"github.com/cc-collective/invoice-ingest/internal/entity"
	"github.com/cc-collective/invoice-ingest/internal/normalize"
	"github.com/cc-collective/invoice-ingest/internal/repository"
)

// Service is a tiny façade over the invoice repository that produces XLSX
// bytes for exports.
type Service struct {
	invoicesRepo repository.InvoiceRepository
	logger       *slog.Logger
}

func NewService(repo repository.InvoiceRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{invoicesRepo: repo, logger: logger}
}

// ExportInvoicesXLSX returns an XLSX workbook (as bytes) for the platform and
// date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all invoices.
func (s *Service) ExportInvoicesXLSX(ctx context.Context, platform constants.Platform, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	invs, err := s.invoicesRepo.ListInvoices(ctx, entity.InvoiceFilter{
		Platform: platform,
		From:     fromDate,
		To:       toDate,
	})
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Invoices"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Platform",
		"Invoice Number",
		"Invoice Date",
		"Period Start",
		"Period End",
		"Supplier",
		"Total Amount",
		"Status",
		"Needs Review",
		"Netting",
		"Email Subject",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, inv := range invs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, string(inv.Platform))
		write(2, inv.InvoiceNumber)
		write(3, formatDate(inv.InvoiceDate))
		write(4, formatDate(inv.PeriodStart))
		write(5, formatDate(inv.PeriodEnd))
		write(6, inv.SupplierName)
		if inv.TotalAmount != nil {
			write(7, normalize.FormatDecimal(*inv.TotalAmount))
		} else {
			write(7, "")
		}
		write(8, string(inv.Status))
		write(9, inv.NeedsReview)
		write(10, inv.HasNetting)
		write(11, truncate(inv.EmailSubject, 140))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 12) // platform
	_ = f.SetColWidth(sheet, "B", "B", 28) // invoice number
	_ = f.SetColWidth(sheet, "C", "E", 14) // dates
	_ = f.SetColWidth(sheet, "F", "F", 32) // supplier
	_ = f.SetColWidth(sheet, "G", "G", 14) // amount
	_ = f.SetColWidth(sheet, "K", "K", 48) // subject

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"platform", string(platform),
		"rows", len(invs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
