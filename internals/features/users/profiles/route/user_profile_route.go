package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"altroway_backend/internals/features/users/profiles/controller"
	"altroway_backend/internals/features/users/profiles/service"
	helperStorage "altroway_backend/internals/helpers/storage"
)

func ProfileRoutes(api fiber.Router, db *gorm.DB, blobs helperStorage.BlobStore) {
	ctrl := controller.NewProfileController(service.NewProfileService(db, blobs))

	g := api.Group("/profile")
	g.Get("/", ctrl.GetProfile)
	g.Put("/", ctrl.UpdateProfile)
}

// AdminUserRoutes mounts /api/admin/users on an already guarded group.
func AdminUserRoutes(admin fiber.Router, db *gorm.DB, blobs helperStorage.BlobStore) {
	ctrl := controller.NewProfileController(service.NewProfileService(db, blobs))

	g := admin.Group("/users")
	g.Get("/", ctrl.ListUsers)
	g.Delete("/", ctrl.DeleteUser)
	g.Put("/:id/status", ctrl.UpdateStatus)
}
