package routes

import (
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/controllers"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// postingRoutes กำหนดเส้นทางสำหรับ Job Posting API
func postingRoutes(app *fiber.App) {
	postingGroup := app.Group("/postings")
	postingGroup.Use(middleware.AuthJWT)
	postingGroup.Get("/", controllers.GetPostings)
	postingGroup.Get("/active", controllers.GetActivePostings)
	postingGroup.Post("/", controllers.CreatePosting)
	postingGroup.Get("/:id", controllers.GetPostingByID)
	postingGroup.Put("/:id", controllers.UpdatePosting)
	postingGroup.Delete("/:id", controllers.DeletePosting)
}
