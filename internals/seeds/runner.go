package seeds

import (
	"gorm.io/gorm"

	"altroway_backend/internals/helpers/logger"
	"altroway_backend/internals/seeds/jobs"
)

// RunAllSeeds loads reference data. Safe to run on every start.
func RunAllSeeds(db *gorm.DB) {
	//* Jobs
	if _, err := jobs.SeedJobs(db); err != nil {
		logger.L().Error("job seed failed", "err", err)
	}
}
