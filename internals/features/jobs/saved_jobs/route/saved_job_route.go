package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"altroway_backend/internals/features/jobs/saved_jobs/controller"
	"altroway_backend/internals/features/jobs/saved_jobs/service"
)

func SavedJobRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSavedJobController(service.NewSavedJobService(db))

	g := api.Group("/saved-jobs")
	g.Get("/", ctrl.List)
	g.Get("/check", ctrl.Check)
	g.Post("/", ctrl.Save)
	g.Delete("/", ctrl.Unsave)
	g.Post("/toggle", ctrl.Toggle)
}
