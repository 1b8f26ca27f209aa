package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoutes "altroway_backend/internals/features/admin/route"
	dashboardRoutes "altroway_backend/internals/features/home/dashboard/route"
	profileRoutes "altroway_backend/internals/features/users/profiles/route"
	helperStorage "altroway_backend/internals/helpers/storage"
)

// AdminRoutes mounts /api/admin/users and /api/admin/stats on an already
// guarded group.
func AdminRoutes(admin fiber.Router, db *gorm.DB, blobs helperStorage.BlobStore) {
	profileRoutes.AdminUserRoutes(admin, db, blobs)
	dashboardRoutes.AdminStatsRoutes(admin, db)
}

// AdminPageRoutes mounts /, /login and the /admin pages.
func AdminPageRoutes(app fiber.Router, db *gorm.DB, gate fiber.Handler) {
	adminRoutes.AdminPageRoutes(app, db, gate)
}
