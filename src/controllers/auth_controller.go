package controllers

import (
	"time"

	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/services"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const refreshTokenTTL = 7 * 24 * time.Hour

// Login godoc
// @Summary Login
// @Description Authenticate with email/password, returns access + refresh tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body object true "email and password"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /auth/login [post]
func Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	user, err := services.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role, user.RefID.Hex())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error generating token"})
	}

	refreshToken := uuid.NewString()
	if err := utils.StoreRefreshToken(user.ID.Hex(), refreshToken, refreshTokenTTL); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error storing refresh token"})
	}

	return c.JSON(fiber.Map{
		"token":        token,
		"refreshToken": refreshToken,
		"user":         user,
	})
}

// RefreshToken issues a new access token and rotates the refresh token.
func RefreshToken(c *fiber.Ctx) error {
	var req struct {
		UserID       string `json:"userId" validate:"required"`
		RefreshToken string `json:"refreshToken" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	valid, err := utils.ValidateRefreshToken(req.UserID, req.RefreshToken)
	if err != nil || !valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid refresh token"})
	}

	user, err := services.GetUserByID(req.UserID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role, user.RefID.Hex())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error generating token"})
	}

	newRefreshToken := uuid.NewString()
	if err := utils.StoreRefreshToken(user.ID.Hex(), newRefreshToken, refreshTokenTTL); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error storing refresh token"})
	}

	return c.JSON(fiber.Map{
		"token":        token,
		"refreshToken": newRefreshToken,
	})
}

// Logout revokes the current access token and drops the refresh token.
func Logout(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	authHeader := c.Get("Authorization")
	tokenStr := ""
	if len(authHeader) > 7 {
		tokenStr = authHeader[7:] // strip "Bearer "
	}

	if tokenStr != "" {
		_ = utils.BlacklistToken(tokenStr, 24*time.Hour)
	}
	_ = utils.DeleteRefreshToken(userID)

	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}
