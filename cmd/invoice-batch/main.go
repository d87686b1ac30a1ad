package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cc-collective/invoice-ingest/constants"
	"github.com/cc-collective/invoice-ingest/internal/entity"
	"github.com/cc-collective/invoice-ingest/internal/export"
	"github.com/cc-collective/invoice-ingest/internal/pdftext"
	"github.com/cc-collective/invoice-ingest/internal/pipeline"
	repo "github.com/cc-collective/invoice-ingest/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		inmem       = flag.Bool("inmem", false, "use in-memory SQLite database")
		dbPath      = flag.String("db", "", "SQLite database path (optional, defaults next to output)")
		dir         = flag.String("dir", "", "directory to process invoice PDFs from (required)")
		out         = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		platformStr = flag.String("platform", "", "export filter: lieferando, wolt or uber_eats (optional)")
		fromStr     = flag.String("from", "", "from date YYYY-MM-DD")
		toStr       = flag.String("to", "", "to date YYYY-MM-DD")
	)
	flag.Parse()

	// Validate required flags
	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	// If output file not specified, use parent directory with default filename
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "invoices.xlsx")
	}

	platform, ok := constants.ParsePlatform(*platformStr)
	if !ok {
		printError("Error: invalid --platform, use lieferando, wolt or uber_eats\n")
		os.Exit(1)
	}

	// Parse date filters
	var from, to *time.Time
	if *fromStr != "" {
		if parsed, err := time.Parse("2006-01-02", *fromStr); err != nil {
			printError("Error: invalid --from date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			from = &parsed
		}
	}
	if *toStr != "" {
		if parsed, err := time.Parse("2006-01-02", *toStr); err != nil {
			printError("Error: invalid --to date format, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		} else {
			to = &parsed
		}
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	dsn := *dbPath
	if *inmem {
		dsn = ":memory:"
	} else if dsn == "" {
		dsn = filepath.Join(filepath.Dir(*out), "invoices.db")
	}

	entc, pool, err := repo.Open(ctx, repo.Config{DSN: dsn}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err, "dsn", dsn)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.Migrate(ctx, entc, logger); err != nil {
		os.Exit(1)
	}

	invoicesRepo := repo.NewInvoiceRepository(entc, logger)
	processor := pipeline.NewProcessor(logger, invoicesRepo, pdftext.NewExtractor(), pipeline.NewLogNotifier(logger))

	primaries, reports, err := collectPDFs(*dir)
	if err != nil {
		logger.Error("failed to scan directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("directory scanned", "dir", *dir, "invoices", len(primaries), "reports", len(reports))

	// The pipeline is email-driven; a directory run synthesizes two mails so
	// the usual subject gating applies. Reports go second: the payout sniff
	// routes them into the netting pass, which needs the invoices persisted.
	now := time.Now()
	batch := &pipeline.BatchStats{}
	if len(primaries) > 0 {
		_, err := processor.ProcessEmail(ctx, batch, entity.Email{
			ID:          "local-invoices",
			From:        "local-batch",
			Subject:     "Rechnung Import",
			Date:        now,
			Attachments: primaries,
		})
		if err != nil {
			logger.Error("failed to process invoices", "error", err)
		}
	}
	if len(reports) > 0 {
		_, err := processor.ProcessEmail(ctx, batch, entity.Email{
			ID:          "local-reports",
			From:        "local-batch",
			Subject:     "Wolt payout report",
			Date:        now,
			Attachments: reports,
		})
		if err != nil {
			logger.Error("failed to process reports", "error", err)
		}
	}

	// Export to XLSX
	logger.Info("exporting to XLSX", "output", *out)
	exportService := export.NewService(invoicesRepo, logger)

	xlsxBytes, err := exportService.ExportInvoicesXLSX(ctx, platform, from, to)
	if err != nil {
		logger.Error("failed to export invoices", "error", err)
		os.Exit(1)
	}

	err = os.WriteFile(*out, xlsxBytes, 0644)
	if err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	logger.Info("batch processing complete", "summary", batch.Summary(), "output_file", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- PDFs detected: %d\n", batch.Detected)
	fmt.Printf("- Invoices created: %d\n", batch.Created)
	fmt.Printf("- Duplicates: %d\n", batch.Duplicates)
	fmt.Printf("- Netting merged: %d\n", batch.Merged)
	fmt.Printf("- Errors: %d\n", batch.Errors)
	fmt.Printf("- Output: %s\n", *out)
}

// collectPDFs splits the directory into primary invoices and payout/netting
// reports by filename convention, mirroring how the platforms name their
// attachments. Content sniffing downstream corrects misfiled reports.
func collectPDFs(dir string) (primaries, reports []entity.Attachment, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !constants.IsPDFFilename(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, nil, err
		}
		att := entity.Attachment{Filename: name, Content: content}
		if isReportFilename(name) {
			reports = append(reports, att)
		} else {
			primaries = append(primaries, att)
		}
	}
	return primaries, reports, nil
}

func isReportFilename(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "netting_report") ||
		strings.Contains(lower, "sales_report") ||
		strings.Contains(lower, "payout")
}
