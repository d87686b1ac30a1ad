package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cc-collective/invoice-ingest/constants"
	invoicespb "github.com/cc-collective/invoice-ingest/gen/proto/invoices/v1"
	"github.com/cc-collective/invoice-ingest/internal/entity"
	"github.com/cc-collective/invoice-ingest/internal/repository"
	"github.com/cc-collective/invoice-ingest/internal/utils"
)

type InvoicesService struct {
	invoicespb.UnimplementedInvoicesServiceServer
	invoiceRepo repository.InvoiceRepository
	logger      *slog.Logger
}

func NewInvoicesService(invoiceRepo repository.InvoiceRepository, logger *slog.Logger) *InvoicesService {
	return &InvoicesService{
		invoiceRepo: invoiceRepo,
		logger:      logger,
	}
}

func (s *InvoicesService) ListInvoices(ctx context.Context, req *invoicespb.ListInvoicesRequest) (*invoicespb.ListInvoicesResponse, error) {
	platform, ok := constants.ParsePlatform(strings.TrimSpace(req.GetPlatform()))
	if !ok {
		s.logger.Error("unknown platform for list invoices", "platform", req.GetPlatform())
		return nil, status.Error(codes.InvalidArgument, "platform must be lieferando, wolt or uber_eats")
	}

	var fromDate, toDate *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		from, err := utils.ParseYMD(fd)
		if err != nil {
			s.logger.Error("invalid from_date format", "from_date", fd, "error", err)
			return nil, status.Errorf(codes.InvalidArgument, "from_date invalid (YYYY-MM-DD): %v", err)
		}
		fromDate = &from
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		to, err := utils.ParseYMD(td)
		if err != nil {
			s.logger.Error("invalid to_date format", "to_date", td, "error", err)
			return nil, status.Errorf(codes.InvalidArgument, "to_date invalid (YYYY-MM-DD): %v", err)
		}
		toDate = &to
	}

	filter := entity.InvoiceFilter{
		Platform: platform,
		From:     fromDate,
		To:       toDate,
	}
	if req.GetNeedsReviewOnly() {
		yes := true
		filter.NeedsReview = &yes
	}

	s.logger.Info("listing invoices", "platform", platform, "from_date", fromDate, "to_date", toDate, "needs_review_only", req.GetNeedsReviewOnly())
	invs, err := s.invoiceRepo.ListInvoices(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list invoices", "platform", platform, "error", err)
		return nil, status.Errorf(codes.Internal, "list invoices: %v", err)
	}
	s.logger.Info("invoices listed successfully", "platform", platform, "count", len(invs))

	out := make([]*invoicespb.Invoice, 0, len(invs))
	for _, inv := range invs {
		out = append(out, utils.ToPBInvoice(inv))
	}
	return &invoicespb.ListInvoicesResponse{Invoices: out}, nil
}
