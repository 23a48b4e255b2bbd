package controller

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"everify_backend/internals/configs"
	"everify_backend/internals/features/uploads/service"
	helper "everify_backend/internals/helpers"
)

type UploadSignatureController struct{}

func NewUploadSignatureController() *UploadSignatureController {
	return &UploadSignatureController{}
}

// Signature issues a short-lived signature/timestamp pair scoped to the
// fixed upload folder. The hosted URL the client gets back from the
// image host becomes the record's image_url.
func (ctrl *UploadSignatureController) Signature(c *fiber.Ctx) error {
	if configs.CloudinaryAPISecret == "" {
		return helper.Error(c, fiber.StatusInternalServerError, "Upload signing is not configured")
	}

	timestamp := time.Now().Unix()
	params := map[string]string{
		"timestamp": strconv.FormatInt(timestamp, 10),
		"folder":    configs.UploadFolder,
	}
	signature := service.SignParams(params, configs.CloudinaryAPISecret)

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"cloudname": configs.CloudinaryCloudName,
		"apikey":    configs.CloudinaryAPIKey,
		"folder":    configs.UploadFolder,
	})
}
