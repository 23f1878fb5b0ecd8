package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"conference-webapp/config"
	"conference-webapp/database"
	"conference-webapp/handlers"
	"conference-webapp/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if err := database.Init(cfg); err != nil {
		log.Fatalf("cannot initialize database: %v", err)
	}
	handlers.PapersDir = cfg.PapersDir

	app := fiber.New()

	router.SetupRoutes(app)

	log.Fatal(app.Listen(cfg.ListenAddr))
}
