package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"everify_backend/internals/features/certificates/card"
	"everify_backend/internals/features/certificates/controller"
)

// PublicCertificateRoutes mounts the verification lookups and the
// self-service card download.
func PublicCertificateRoutes(r fiber.Router, db *gorm.DB, renderer *card.Service) {
	lookup := controller.NewCertificateLookupController(db)
	cards := controller.NewCertificateCardController(db, renderer)

	r.Get("/certificates/reference/:referenceNo", lookup.GetByReference)
	r.Get("/certificates/verify/:certificateNo", lookup.GetByCertificate)
	r.Get("/certificates/reference/:referenceNo/card", cards.DownloadByReference)
}
