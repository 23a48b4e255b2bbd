package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"everify_backend/internals/features/certificates/card"
	"everify_backend/internals/features/certificates/controller"
)

// AdminCertificateRoutes mounts the CRUD surface. The router passed in
// is already JWT-gated.
func AdminCertificateRoutes(r fiber.Router, db *gorm.DB, renderer *card.Service) {
	crud := controller.NewCertificateAdminController(db)
	cards := controller.NewCertificateCardController(db, renderer)

	r.Get("/certificates", crud.List)
	r.Post("/certificates", crud.Create)
	r.Put("/certificates/:id", crud.Update)
	r.Delete("/certificates/:id", crud.Delete)
	r.Get("/certificates/:id/card", cards.DownloadByID)
}
