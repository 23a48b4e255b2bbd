package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"everify_backend/internals/configs"
	adminRoute "everify_backend/internals/features/admins/route"
	"everify_backend/internals/features/certificates/card"
	certRoute "everify_backend/internals/features/certificates/route"
	uploadRoute "everify_backend/internals/features/uploads/route"
	authMiddleware "everify_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app)

	renderer := card.NewService(configs.AppOrigin, card.StaticInfo{
		ContactPhone: configs.ContactPhone,
		ContactEmail: configs.ContactEmail,
		VerifyDomain: configs.VerifyDomain,
	}, card.NewHTTPImageFetcher())

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AdminAuthRoutes...")
	adminRoute.AdminAuthRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	certRoute.PublicCertificateRoutes(public, db, renderer)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (JWT)...")
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware())
	certRoute.AdminCertificateRoutes(admin, db, renderer)
	uploadRoute.UploadRoutes(admin)
}
