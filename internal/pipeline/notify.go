package pipeline

import (
	"context"
	"log/slog"

	"github.com/cc-collective/invoice-ingest/internal/entity"
)

// LogNotifier writes the per-email digest to the structured log. It stands in
// for a chat or realtime channel; anything implementing Notifier can replace
// it without touching the processor.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) EmailProcessed(ctx context.Context, email entity.EmailMeta, stats EmailStats) {
	n.logger.Info("notify.email.processed",
		"subject", email.Subject,
		"sender", email.Sender,
		"summary", stats.Summary(),
	)
}
