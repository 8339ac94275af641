package routes

import (
	"github.com/CMIS-TAMU/cmis-events-sub002/src/controllers"
	"github.com/CMIS-TAMU/cmis-events-sub002/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func authRoutes(app *fiber.App) {
	auth := app.Group("/auth")
	auth.Post("/login", controllers.LoginUser)
	auth.Post("/logout", middleware.AuthJWT, controllers.LogoutUser)
}
