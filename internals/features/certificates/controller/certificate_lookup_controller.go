package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"everify_backend/internals/features/certificates/dto"
	"everify_backend/internals/features/certificates/repository"
	helper "everify_backend/internals/helpers"
)

// CertificateLookupController serves the two public verification
// paths: by reference number (self-service) and by certificate number
// (QR scan).
type CertificateLookupController struct {
	Repo *repository.CertificateRepository
}

func NewCertificateLookupController(db *gorm.DB) *CertificateLookupController {
	return &CertificateLookupController{Repo: repository.NewCertificateRepository(db)}
}

func (ctrl *CertificateLookupController) GetByReference(c *fiber.Ctx) error {
	referenceNo := c.Params("referenceNo")

	m, err := ctrl.Repo.FindByReference(c.UserContext(), referenceNo)
	if err != nil {
		return lookupError(c, err)
	}
	return helper.Success(c, "Certificate found", dto.ToVerificationResponse(m))
}

func (ctrl *CertificateLookupController) GetByCertificate(c *fiber.Ctx) error {
	certificateNo := c.Params("certificateNo")

	m, err := ctrl.Repo.FindByCertificateNo(c.UserContext(), certificateNo)
	if err != nil {
		return lookupError(c, err)
	}
	return helper.Success(c, "Certificate found", dto.ToVerificationResponse(m))
}

func lookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "Certificate data not found")
	}
	return helper.Error(c, fiber.StatusInternalServerError, "Lookup failed")
}
