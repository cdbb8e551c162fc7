package routes

import (
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/controllers"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// jobRoutes กำหนดเส้นทางสำหรับ Job tracker API
func jobRoutes(app *fiber.App) {
	jobGroup := app.Group("/students/:studentId/jobs")
	jobGroup.Use(middleware.AuthJWT)
	jobGroup.Get("/", controllers.GetJobs)
	jobGroup.Post("/", controllers.CreateJob)
	jobGroup.Put("/:id/status", controllers.UpdateJobStatus)
	jobGroup.Delete("/:id", controllers.DeleteJob)
}
