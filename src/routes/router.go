package routes

import (
	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	authRoutes(app)
	studentRoutes(app)
	projectRoutes(app)
	internshipRoutes(app)
	jobRoutes(app)
	skillRoutes(app)
	certificateRoutes(app)
	postingRoutes(app)
	adminRoutes(app)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
