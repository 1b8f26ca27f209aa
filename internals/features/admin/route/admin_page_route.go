package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"altroway_backend/internals/features/admin/controller"
)

// AdminPageRoutes mounts the server-rendered pages. The app must be built
// with views.NewEngine and the session resolver must run before gate.
func AdminPageRoutes(app fiber.Router, db *gorm.DB, gate fiber.Handler) {
	ctrl := controller.NewAdminPageController(db)

	app.Get("/", ctrl.Home)
	app.Get("/login", ctrl.Login)

	admin := app.Group("/admin", gate)
	admin.Get("/", ctrl.Dashboard)
	admin.Get("/users", ctrl.Users)
	admin.Get("/jobs", ctrl.Jobs)
	admin.Get("/cms", ctrl.CMS)
	admin.Post("/cms/save", ctrl.SaveContent)
	admin.Post("/cms/delete", ctrl.DeleteContent)
	admin.Get("/setup", ctrl.Setup)
}
