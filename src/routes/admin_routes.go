package routes

import (
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/controllers"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// adminRoutes กำหนดเส้นทางสำหรับ Admin API
func adminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin")
	adminGroup.Use(middleware.AuthJWT)
	adminGroup.Post("/recalculate-scores", controllers.RecalculateAllScores)
}
