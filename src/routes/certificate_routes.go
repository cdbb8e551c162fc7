package routes

import (
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/controllers"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// certificateRoutes กำหนดเส้นทางสำหรับ Certificate API
func certificateRoutes(app *fiber.App) {
	certificateGroup := app.Group("/students/:studentId/certificates")
	certificateGroup.Use(middleware.AuthJWT)
	certificateGroup.Get("/", controllers.GetCertificates)
	certificateGroup.Post("/", controllers.CreateCertificate)
	certificateGroup.Put("/:id", controllers.UpdateCertificate)
	certificateGroup.Delete("/:id", controllers.DeleteCertificate)
}
