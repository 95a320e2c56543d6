package routes

import (
	"studyabroad-backend/src/controllers"
	"studyabroad-backend/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// UniversityRoutes กำหนดเส้นทางสำหรับ University API
func UniversityRoutes(app *fiber.App) {
	uniRoutes := app.Group("/api/universities")
	uniRoutes.Get("/", controllers.GetUniversities) // public
	uniRoutes.Post("/", middleware.AuthJWT, middleware.RequireAdmin, controllers.CreateUniversity)
}
