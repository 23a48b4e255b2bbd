package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"everify_backend/internals/features/certificates/dto"
	"everify_backend/internals/features/certificates/repository"
	helper "everify_backend/internals/helpers"
)

type CertificateAdminController struct {
	Repo *repository.CertificateRepository
}

func NewCertificateAdminController(db *gorm.DB) *CertificateAdminController {
	return &CertificateAdminController{Repo: repository.NewCertificateRepository(db)}
}

// List returns certificates newest first with paging.
func (ctrl *CertificateAdminController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	rows, total, err := ctrl.Repo.List(c.UserContext(), paging.Offset, paging.Limit)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list certificates")
	}

	return helper.Success(c, "OK", fiber.Map{
		"certificates": rows,
		"pagination":   helper.BuildPagination(paging, total, len(rows)),
	})
}

// Create rejects any collision on certificate_no or reference_no.
func (ctrl *CertificateAdminController) Create(c *fiber.Ctx) error {
	var req dto.CreateCertificateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid date format")
	}

	if err := ctrl.Repo.Create(c.UserContext(), m); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return helper.Error(c, fiber.StatusConflict,
				"Certificate with this certificate or reference number already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create certificate")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Certificate created", m)
}

// Update is a full-field replace by id.
func (ctrl *CertificateAdminController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid certificate id")
	}

	var req dto.UpdateCertificateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid date format")
	}

	updated, err := ctrl.Repo.Update(c.UserContext(), id, m)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return helper.Error(c, fiber.StatusNotFound, "Certificate not found")
		case errors.Is(err, repository.ErrConflict):
			return helper.Error(c, fiber.StatusConflict,
				"Certificate with this certificate or reference number already exists")
		default:
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to update certificate")
		}
	}

	return helper.Success(c, "Certificate updated", updated)
}

// Delete is a hard delete; there is no soft-delete or audit trail.
func (ctrl *CertificateAdminController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid certificate id")
	}

	if err := ctrl.Repo.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Certificate not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete certificate")
	}

	return helper.Success(c, "Certificate deleted", nil)
}
