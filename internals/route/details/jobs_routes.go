package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	applicationRoutes "altroway_backend/internals/features/jobs/applications/route"
	jobRoutes "altroway_backend/internals/features/jobs/jobs/route"
	savedJobRoutes "altroway_backend/internals/features/jobs/saved_jobs/route"
)

// /api/jobs, /api/applications and /api/saved-jobs
func JobsRoutes(api fiber.Router, db *gorm.DB, adminOnly fiber.Handler) {
	jobRoutes.JobRoutes(api, db, adminOnly)
	applicationRoutes.ApplicationRoutes(api, db, adminOnly)
	savedJobRoutes.SavedJobRoutes(api, db)
}
