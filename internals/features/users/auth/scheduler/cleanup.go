package scheduler

import (
	"context"
	"time"

	"gorm.io/gorm"

	"altroway_backend/internals/configs"
	authService "altroway_backend/internals/features/users/auth/service"
	"altroway_backend/internals/helpers/logger"
)

// StartBlacklistCleanupScheduler purges blacklist rows that expired more
// than TOKEN_BLACKLIST_TTL_DAYS ago, once at start and then every 24h,
// until ctx is cancelled.
func StartBlacklistCleanupScheduler(ctx context.Context, db *gorm.DB) {
	ttl := time.Duration(configs.GetEnvInt("TOKEN_BLACKLIST_TTL_DAYS", 7)) * 24 * time.Hour
	log := logger.L().With("job", "token_blacklist_cleanup")

	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			RunBlacklistCleanup(ctx, db, time.Now().Add(-ttl), log)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

func RunBlacklistCleanup(ctx context.Context, db *gorm.DB, cutoff time.Time, log *logger.Logger) int64 {
	var total int64
	for {
		n, err := authService.PurgeBlacklist(ctx, db, cutoff, 100)
		if err != nil {
			log.Error("token blacklist cleanup failed", "err", err)
			return total
		}
		total += n
		if n < 100 {
			break
		}
	}
	if total > 0 {
		log.Info("expired blacklist tokens removed", "count", total)
	} else {
		log.Debug("no blacklist tokens to remove")
	}
	return total
}
