package routes

import (
	"studyabroad-backend/src/controllers"
	"studyabroad-backend/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// AuthRoutes กำหนด route สำหรับ auth และ profile
func AuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Post("/", controllers.RegisterUser)    // สมัครสมาชิก
	auth.Post("/login", controllers.LoginUser)  // 🔐 login
	auth.Post("/logout", middleware.AuthJWT, controllers.LogoutUser)
	auth.Get("/me", middleware.AuthJWT, controllers.GetMe)

	auth.Get("/profile", middleware.AuthJWT, controllers.GetProfile)
	auth.Put("/profile", middleware.AuthJWT, controllers.UpdateProfile)
	auth.Put("/profile/upload-pdf", middleware.AuthJWT, controllers.UploadProfilePDF)
}
