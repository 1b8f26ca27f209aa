package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoutes "altroway_backend/internals/features/users/auth/route"
	authService "altroway_backend/internals/features/users/auth/service"
	profileRoutes "altroway_backend/internals/features/users/profiles/route"
	helperStorage "altroway_backend/internals/helpers/storage"
	"altroway_backend/internals/seeds"
)

// /api/auth, /api/profile and /api/setup-test-accounts
func UserRoutes(api fiber.Router, db *gorm.DB, blobs helperStorage.BlobStore, auth *authService.AuthService) {
	authRoutes.AuthRoutes(api, db, auth)
	profileRoutes.ProfileRoutes(api, db, blobs)
	seeds.SetupTestAccountsRoutes(api, db, auth)
}
