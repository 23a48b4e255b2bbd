package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"everify_backend/internals/configs"
	"everify_backend/internals/features/admins/dto"
	"everify_backend/internals/features/admins/model"
	helper "everify_backend/internals/helpers"
)

const accessTTL = 24 * time.Hour

type AdminAuthController struct {
	DB *gorm.DB
}

func NewAdminAuthController(db *gorm.DB) *AdminAuthController {
	return &AdminAuthController{DB: db}
}

// Login checks the shared admin credential and issues a bearer token.
// Wrong username and wrong password are indistinguishable on purpose.
func (ctrl *AdminAuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var admin model.AdminModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("admin_username = ?", req.Username).
		First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Login failed")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.AdminPassword), []byte(req.Password)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := signAccessToken(admin)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to sign token")
	}

	return helper.Success(c, "Login successful", dto.LoginResponse{
		AdminID:     admin.AdminID.String(),
		Username:    admin.AdminUsername,
		AccessToken: token,
	})
}

func signAccessToken(admin model.AdminModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"admin_id": admin.AdminID.String(),
		"username": admin.AdminUsername,
		"iat":      now.Unix(),
		"exp":      now.Add(accessTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}
