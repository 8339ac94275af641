package utils

import (
	"github.com/CMIS-TAMU/cmis-events-sub002/src/models"

	"github.com/gofiber/fiber/v2"
)

// HandleError writes the standard error body with the given status.
func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
