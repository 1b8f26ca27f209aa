package scheduler

import (
	"context"
	"time"

	"altroway_backend/internals/helpers/dbtime"
	"altroway_backend/internals/helpers/logger"
)

// ExpirySweeper is satisfied by the documents service.
type ExpirySweeper interface {
	ExpireDueDocuments(ctx context.Context, today dbtime.Date) (int, error)
}

// StartDocumentExpiryScheduler sweeps once at start and then every
// interval until ctx is cancelled.
func StartDocumentExpiryScheduler(ctx context.Context, docs ExpirySweeper, interval time.Duration) {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	log := logger.L().With("job", "document_expiry")

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			RunDocumentExpiry(ctx, docs, dbtime.Today(), log)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

func RunDocumentExpiry(ctx context.Context, docs ExpirySweeper, today dbtime.Date, log *logger.Logger) int {
	n, err := docs.ExpireDueDocuments(ctx, today)
	if err != nil {
		log.Error("document expiry sweep failed", "err", err)
		return 0
	}
	if n > 0 {
		log.Info("documents marked expired", "count", n, "today", today.String())
	}
	return n
}
