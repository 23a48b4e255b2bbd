package route

import (
	"github.com/gofiber/fiber/v2"

	"everify_backend/internals/features/uploads/controller"
)

// UploadRoutes mounts the signed-upload handshake on an already
// JWT-gated router.
func UploadRoutes(r fiber.Router) {
	ctrl := controller.NewUploadSignatureController()

	r.Post("/uploads/signature", ctrl.Signature)
}
