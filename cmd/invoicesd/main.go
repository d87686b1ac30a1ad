package main

import (
	"context"
	"flag"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/cc-collective/invoice-ingest/gen/proto/invoices/v1"
	"github.com/cc-collective/invoice-ingest/internal/async"
	"github.com/cc-collective/invoice-ingest/internal/common"
	"github.com/cc-collective/invoice-ingest/internal/export"
	"github.com/cc-collective/invoice-ingest/internal/mailbox"
	"github.com/cc-collective/invoice-ingest/internal/pdftext"
	"github.com/cc-collective/invoice-ingest/internal/pipeline"
	repo "github.com/cc-collective/invoice-ingest/internal/repository"
	svc "github.com/cc-collective/invoice-ingest/internal/server"
)

func main() {
	authCode := flag.String("auth-code", "", "one-time Gmail consent code; exchanges it for a token file and exits")
	flag.Parse()

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.ValidateMail(); err != nil {
		logger.Error("invalid mailbox configuration", "error", err)
		os.Exit(1)
	}

	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *authCode != "" {
		if err := mailbox.Exchange(ctx, cfg.Mail.CredentialsFile, cfg.Mail.TokenFile, *authCode); err != nil {
			logger.Error("token exchange failed", "error", err)
			os.Exit(1)
		}
		logger.Info("token saved", "token_file", cfg.Mail.TokenFile)
		return
	}

	mail, authURL, err := mailbox.Setup(ctx, cfg.Mail.CredentialsFile, cfg.Mail.TokenFile, logger)
	if err != nil {
		logger.Error("mailbox setup failed", "error", err)
		os.Exit(1)
	}
	if authURL != "" {
		logger.Info("gmail authorization required", "url", authURL)
		logger.Info("visit the URL, then rerun with -auth-code <code>")
		os.Exit(2)
	}

	entc, pool, err := svc.ConnectDB(ctx, cfg.Database.DSN, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer svc.CloseDB(entc, pool, logger)

	if err := svc.PingDB(ctx, pool, logger, 5*time.Second); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	if err := repo.Migrate(ctx, entc, logger); err != nil {
		os.Exit(1)
	}

	invoicesRepo := repo.NewInvoiceRepository(entc, logger)
	processor := pipeline.NewProcessor(logger, invoicesRepo, pdftext.NewExtractor(), pipeline.NewLogNotifier(logger))
	queue := async.NewEmailQueue(processor, logger,
		async.WithQueueSize(512),
		async.WithProcessTimeout(3*time.Minute),
	)

	// gRPC server
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	invoicesService := svc.NewInvoicesService(invoicesRepo, logger)
	v1.RegisterInvoicesServiceServer(grpcServer, invoicesService)
	exportServer := svc.NewExportServer(export.NewService(invoicesRepo, logger), logger)
	v1.RegisterExportServiceServer(grpcServer, exportServer)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("invoicesd listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	go pollMailbox(ctx, mail, cfg.Mail, queue, logger)

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}

// pollMailbox fetches new invoice mails on every tick and feeds them to the
// queue oldest-first, so netting reports see the invoices sent before them.
// The watermark only advances after a cycle drained; a failed fetch retries
// the same window next tick and dedup absorbs the overlap.
func pollMailbox(ctx context.Context, mail *mailbox.Client, cfg common.MailConfig, queue async.Queue, logger *slog.Logger) {
	watermark := time.Now().Add(-cfg.Lookback)

	ticker := time.NewTicker(cfg.PollInterval)
	defer ticker.Stop()

	for {
		cycleStart := time.Now()
		emails, err := mail.FetchSince(ctx, cfg.Query, watermark)
		if err != nil {
			logger.Error("poll.fetch_failed", "error", err)
		} else {
			sort.Slice(emails, func(i, j int) bool { return emails[i].Date.Before(emails[j].Date) })

			batch := &pipeline.BatchStats{}
			var wg sync.WaitGroup
			for _, email := range emails {
				wg.Add(1)
				_ = queue.Enqueue(ctx, async.Job{
					Email:       email,
					Batch:       batch,
					SubmittedAt: time.Now(),
					Done:        wg.Done,
				})
			}
			wg.Wait()

			if len(emails) > 0 {
				logger.Info("poll.cycle.done", "emails", len(emails), "summary", batch.Summary())
			}
			watermark = cycleStart
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
