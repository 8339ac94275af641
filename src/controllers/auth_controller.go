package controllers

import (
	"time"

	"github.com/CMIS-TAMU/cmis-events-sub002/src/services"
	"github.com/CMIS-TAMU/cmis-events-sub002/src/utils"

	"github.com/gofiber/fiber/v2"
)

// LoginUser godoc
// @Summary      Log in
// @Description  Authenticate with email/password and receive a JWT
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/login [post]
func LoginUser(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request format",
			"code":  "INVALID_REQUEST",
		})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
			"code":  "MISSING_CREDENTIALS",
		})
	}

	user, err := services.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
			"code":  "INVALID_CREDENTIALS",
		})
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Token generation failed",
			"code":  "TOKEN_ERROR",
		})
	}

	// Refresh token lives in Redis for 7 days.
	refreshToken := utils.GenerateRandomString(64)
	if err := utils.StoreRefreshToken(user.ID.Hex(), refreshToken, 7*24*time.Hour); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Session setup failed",
			"code":  "SESSION_ERROR",
		})
	}

	return c.JSON(fiber.Map{
		"token":        token,
		"refreshToken": refreshToken,
		"user": fiber.Map{
			"id":    user.RefID.Hex(),
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
		"message": "Login successful",
	})
}

// LogoutUser godoc
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Security     BearerAuth
// @Router       /auth/logout [post]
func LogoutUser(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	if userID != "" {
		if err := utils.DeleteRefreshToken(userID); err != nil {
			return utils.HandleError(c, fiber.StatusInternalServerError, "Logout failed")
		}
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}
