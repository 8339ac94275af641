package controllers

import (
	"github.com/CMIS-TAMU/cmis-events-sub002/src/models"
	"github.com/CMIS-TAMU/cmis-events-sub002/src/services/mentors"
	"github.com/CMIS-TAMU/cmis-events-sub002/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateMentor godoc
// @Summary      Create a mentor profile
// @Tags         mentors
// @Accept       json
// @Produce      json
// @Param        body body models.MentorProfile true "Mentor profile"
// @Success      201  {object}  models.MentorProfile
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /mentors [post]
func CreateMentor(c *fiber.Ctx) error {
	var mentor models.MentorProfile
	if err := c.BodyParser(&mentor); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	if err := mentors.CreateMentorProfile(&mentor); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Error creating mentor: "+err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Mentor profile created successfully",
		"mentor":  mentor,
	})
}

// GetMentors godoc
// @Summary      List active mentors
// @Tags         mentors
// @Produce      json
// @Success      200  {array}   models.MentorProfile
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /mentors [get]
func GetMentors(c *fiber.Ctx) error {
	list, err := mentors.GetActiveMentors()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching mentors")
	}
	return c.JSON(list)
}

// GetMentorByID godoc
// @Summary      Get a mentor profile
// @Tags         mentors
// @Produce      json
// @Param        id path string true "Mentor ID"
// @Success      200  {object}  models.MentorProfile
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /mentors/{id} [get]
func GetMentorByID(c *fiber.Ctx) error {
	mentor, err := mentors.GetMentorByID(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Mentor not found")
	}
	return c.JSON(mentor)
}

// UpdateMentor godoc
// @Summary      Update a mentor profile
// @Tags         mentors
// @Accept       json
// @Produce      json
// @Param        id path string true "Mentor ID"
// @Param        body body models.MentorProfile true "Mentor profile"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /mentors/{id} [put]
func UpdateMentor(c *fiber.Ctx) error {
	var mentor models.MentorProfile
	if err := c.BodyParser(&mentor); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	if err := mentors.UpdateMentorProfile(c.Params("id"), &mentor); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error updating mentor: "+err.Error())
	}
	return c.JSON(fiber.Map{"message": "Mentor profile updated successfully"})
}

// DeactivateMentor godoc
// @Summary      Deactivate a mentor
// @Description  Deactivated mentors stop receiving match proposals immediately.
// @Tags         mentors
// @Produce      json
// @Param        id path string true "Mentor ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /mentors/{id} [delete]
func DeactivateMentor(c *fiber.Ctx) error {
	if err := mentors.DeactivateMentor(c.Params("id")); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error deactivating mentor")
	}
	return c.JSON(fiber.Map{"message": "Mentor deactivated"})
}
