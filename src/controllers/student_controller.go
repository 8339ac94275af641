package controllers

import (
	"github.com/CMIS-TAMU/cmis-events-sub002/src/models"
	"github.com/CMIS-TAMU/cmis-events-sub002/src/services/students"
	"github.com/CMIS-TAMU/cmis-events-sub002/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetStudentProfile godoc
// @Summary      Get a student profile
// @Tags         students
// @Produce      json
// @Param        id path string true "Student ID"
// @Success      200  {object}  models.StudentProfile
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /students/{id} [get]
func GetStudentProfile(c *fiber.Ctx) error {
	profile, err := students.GetStudentProfileByID(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Student not found")
	}
	return c.JSON(profile)
}

// UpdateMentorshipPreferences godoc
// @Summary      Update mentorship preferences
// @Description  Student self-service: skills, interests, goals and the seeking-mentorship flag.
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        id path string true "Student ID"
// @Param        body body models.StudentProfile true "Preferences"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /students/{id}/mentorship [put]
func UpdateMentorshipPreferences(c *fiber.Ctx) error {
	var profile models.StudentProfile
	if err := c.BodyParser(&profile); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	if err := students.UpdateMentorshipPreferences(c.Params("id"), &profile); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error updating preferences: "+err.Error())
	}
	return c.JSON(fiber.Map{"message": "Preferences updated"})
}
