package routes

import (
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/controllers"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// internshipRoutes กำหนดเส้นทางสำหรับ Internship API
func internshipRoutes(app *fiber.App) {
	internshipGroup := app.Group("/students/:studentId/internships")
	internshipGroup.Use(middleware.AuthJWT)
	internshipGroup.Get("/", controllers.GetInternships)
	internshipGroup.Post("/", controllers.CreateInternship)
	internshipGroup.Put("/:id", controllers.UpdateInternship)
	internshipGroup.Delete("/:id", controllers.DeleteInternship)
}
