package routes

import (
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/controllers"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// authRoutes กำหนดเส้นทางสำหรับ Auth API
func authRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")
	authGroup.Post("/login", controllers.Login)
	authGroup.Post("/refresh", controllers.RefreshToken)
	authGroup.Post("/logout", middleware.AuthJWT, controllers.Logout)
}
