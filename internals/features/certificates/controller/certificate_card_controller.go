package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"everify_backend/internals/features/certificates/card"
	"everify_backend/internals/features/certificates/model"
	"everify_backend/internals/features/certificates/repository"
	helper "everify_backend/internals/helpers"
)

// CertificateCardController renders the printable two-sided card as a
// PDF download. One request renders one certificate, synchronously.
type CertificateCardController struct {
	Repo     *repository.CertificateRepository
	Renderer *card.Service
}

func NewCertificateCardController(db *gorm.DB, renderer *card.Service) *CertificateCardController {
	return &CertificateCardController{
		Repo:     repository.NewCertificateRepository(db),
		Renderer: renderer,
	}
}

// DownloadByReference is the public self-service download path.
func (ctrl *CertificateCardController) DownloadByReference(c *fiber.Ctx) error {
	m, err := ctrl.Repo.FindByReference(c.UserContext(), c.Params("referenceNo"))
	if err != nil {
		return lookupError(c, err)
	}
	return ctrl.send(c, m)
}

// DownloadByID is the admin-side download path.
func (ctrl *CertificateCardController) DownloadByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid certificate id")
	}
	m, err := ctrl.Repo.FindByID(c.UserContext(), id)
	if err != nil {
		return lookupError(c, err)
	}
	return ctrl.send(c, m)
}

func (ctrl *CertificateCardController) send(c *fiber.Ctx, m *model.CertificateModel) error {
	rendered, err := ctrl.Renderer.Render(c.UserContext(), m)
	if err != nil {
		if errors.Is(err, card.ErrAssetUnavailable) {
			// retryable: nothing partial was produced, re-click retries
			return helper.Error(c, fiber.StatusBadGateway, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Card rendering failed")
	}

	doc, err := card.Document(rendered)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Card assembly failed")
	}

	filename := card.Filename(m.CertificateNo, m.Name)
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(doc)
}
