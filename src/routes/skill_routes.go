package routes

import (
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/controllers"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// skillRoutes กำหนดเส้นทางสำหรับ Skill API
func skillRoutes(app *fiber.App) {
	skillGroup := app.Group("/students/:studentId/skills")
	skillGroup.Use(middleware.AuthJWT)
	skillGroup.Get("/", controllers.GetSkills)
	skillGroup.Post("/", controllers.CreateSkill)
	skillGroup.Put("/:id", controllers.UpdateSkill)
	skillGroup.Delete("/:id", controllers.DeleteSkill)
}
