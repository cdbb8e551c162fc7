package main

import (
	"fmt"
	"log"
	"net/url"
	"os"

	_ "github.com/Deepak-csengineer05/zonavi-scms-sub000/docs"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/database"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/jobs"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

func main() {

	// เชื่อมต่อกับ MongoDB
	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}
	database.InitCollections()

	// Redis + Asynq (optional - สำหรับ background jobs)
	database.InitRedis()
	database.InitAsynq()
	if database.AsynqClient != nil {
		go jobs.RunWorker(database.RedisURI)
	}

	app := fiber.New()

	// ✅ เปิดใช้งาน CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// รวม routes จากแต่ละ module
	routes.InitRoutes(app)

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		appPort = "8888"
	}

	log.Println("Server is running on port " + appPort)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appPort)))
	if err != nil {
		log.Fatal(err)
	}
}
