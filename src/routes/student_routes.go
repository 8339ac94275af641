package routes

import (
	"github.com/CMIS-TAMU/cmis-events-sub002/src/controllers"
	"github.com/CMIS-TAMU/cmis-events-sub002/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func studentRoutes(app *fiber.App) {
	studentRoutes := app.Group("/students", middleware.AuthJWT)
	studentRoutes.Get("/:id", controllers.GetStudentProfile)
	studentRoutes.Put("/:id/mentorship", controllers.UpdateMentorshipPreferences)
}
