package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"everify_backend/internals/features/admins/controller"
	"everify_backend/internals/middlewares"
)

func AdminAuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAdminAuthController(db)

	app.Post("/api/admin/login", middlewares.LoginRateLimiter(), ctrl.Login)
}
