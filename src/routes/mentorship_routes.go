package routes

import (
	"github.com/CMIS-TAMU/cmis-events-sub002/src/controllers"
	"github.com/CMIS-TAMU/cmis-events-sub002/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// mentorshipRoutes covers the matching engine's caller-facing API.
func mentorshipRoutes(app *fiber.App) {
	m := app.Group("/mentorship", middleware.AuthJWT)
	m.Get("/mentors/:id/matches", controllers.PreviewMatches)                              // read-only preview
	m.Post("/mentors/:id/batches", controllers.CreateMatchBatch)                           // propose candidates
	m.Get("/batches/:id", controllers.GetMatchBatch)                                       // batch + candidates
	m.Post("/batches/:id/candidates/:studentId/respond", controllers.RespondToCandidate)   // accept/decline
}
