package routes

import (
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/controllers"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// studentRoutes กำหนดเส้นทางสำหรับ Student API
func studentRoutes(app *fiber.App) {
	studentGroup := app.Group("/students")
	studentGroup.Post("/", controllers.CreateStudent) // registration is open
	studentGroup.Use(middleware.AuthJWT)
	studentGroup.Get("/", controllers.GetStudents)
	studentGroup.Get("/:id", controllers.GetStudentByID)
	studentGroup.Put("/:id", controllers.UpdateStudent)
	studentGroup.Delete("/:id", controllers.DeleteStudent)
	studentGroup.Get("/:studentId/dashboard", controllers.GetDashboard)
	studentGroup.Get("/:studentId/recommendations", controllers.GetRecommendations)
}
