package routes

import (
	"github.com/CMIS-TAMU/cmis-events-sub002/src/controllers"
	"github.com/CMIS-TAMU/cmis-events-sub002/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func mentorRoutes(app *fiber.App) {
	mentorRoutes := app.Group("/mentors", middleware.AuthJWT)
	mentorRoutes.Get("/", controllers.GetMentors)
	mentorRoutes.Post("/", controllers.CreateMentor)
	mentorRoutes.Get("/:id", controllers.GetMentorByID)
	mentorRoutes.Put("/:id", controllers.UpdateMentor)
	mentorRoutes.Delete("/:id", controllers.DeactivateMentor)
}
