package routes

import (
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/controllers"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// projectRoutes กำหนดเส้นทางสำหรับ Project API
func projectRoutes(app *fiber.App) {
	projectGroup := app.Group("/students/:studentId/projects")
	projectGroup.Use(middleware.AuthJWT)
	projectGroup.Get("/", controllers.GetProjects)
	projectGroup.Post("/", controllers.CreateProject)
	projectGroup.Put("/:id", controllers.UpdateProject)
	projectGroup.Delete("/:id", controllers.DeleteProject)
}
