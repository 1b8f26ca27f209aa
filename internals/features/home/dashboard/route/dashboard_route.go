package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"altroway_backend/internals/features/home/dashboard/controller"
	"altroway_backend/internals/features/home/dashboard/service"
)

func DashboardRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDashboardController(service.NewDashboardService(db))
	api.Get("/dashboard", ctrl.UserDashboard)
}

// AdminStatsRoutes mounts /stats on a guarded admin group.
func AdminStatsRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDashboardController(service.NewDashboardService(db))
	admin.Get("/stats", ctrl.AdminStats)
}
