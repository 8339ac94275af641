package main

import (
	"fmt"
	"log"
	"net/url"
	"os"

	_ "github.com/CMIS-TAMU/cmis-events-sub002/docs"
	"github.com/CMIS-TAMU/cmis-events-sub002/src/controllers"
	"github.com/CMIS-TAMU/cmis-events-sub002/src/database"
	"github.com/CMIS-TAMU/cmis-events-sub002/src/jobs"
	"github.com/CMIS-TAMU/cmis-events-sub002/src/routes"
	"github.com/CMIS-TAMU/cmis-events-sub002/src/services/matching"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

// @title        CMIS Mentorship Matching API
// @version      1.0
// @description  Mentor-student matching engine for the CMIS events platform
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Redis and Asynq are optional in development
	database.InitRedis()
	database.InitAsynq()

	// Wire the matching engine onto the shared collections
	store := matching.NewMongoStore()
	controllers.InitMatching(matching.NewService(store, store))

	// Background worker: expiry sweep, orphan reap, invite mail
	go jobs.StartWorker()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app)

	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888"
	}

	log.Println("Server is running on port " + appURI)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI)))
	if err != nil {
		log.Fatal(err)
	}
}
