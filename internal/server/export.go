package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/cc-collective/invoice-ingest/constants"
	v1 "github.com/cc-collective/invoice-ingest/gen/proto/invoices/v1"
	"github.com/cc-collective/invoice-ingest/internal/common"
	"github.com/cc-collective/invoice-ingest/internal/export"
)

type ExportServer struct {
	v1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportInvoices(ctx context.Context, req *v1.ExportInvoicesRequest) (*v1.ExportInvoicesResponse, error) {
	platform, ok := constants.ParsePlatform(strings.TrimSpace(req.GetPlatform()))
	if !ok {
		return nil, common.InvalidArgumentError("platform must be lieferando, wolt or uber_eats")
	}

	// Optional dates (YYYY-MM-DD):
	// - only from -> from..today (inclusive)
	// - only to   -> beginning..to (inclusive)
	// - none      -> all.
	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := time.Parse("2006-01-02", fd)
		if err != nil {
			return nil, common.InvalidArgumentError("from_date must be YYYY-MM-DD")
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := time.Parse("2006-01-02", td)
		if err != nil {
			return nil, common.InvalidArgumentError("to_date must be YYYY-MM-DD")
		}
		toPtr = &t
	}

	xlsx, err := s.svc.ExportInvoicesXLSX(ctx, platform, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "platform", req.GetPlatform(), "err", err)
		return nil, common.InternalErrorf("export: %v", err)
	}

	return &v1.ExportInvoicesResponse{Xlsx: xlsx}, nil
}
