package main

import (
	"fmt"
	"log"
	"net/url"
	"os"

	"studyabroad-backend/src/database"
	"studyabroad-backend/src/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

func main() {

	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Redis is optional; auth plumbing degrades gracefully without it
	database.InitRedis()

	app := fiber.New()

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "*"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // ❌ must stay false with "*"
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "5000"
	}

	log.Println("Server is running on port " + port)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(port)))
	if err != nil {
		log.Fatal(err)
	}

}
