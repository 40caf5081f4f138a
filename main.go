package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/e-Xiua/admin-events-api/config"
	"github.com/e-Xiua/admin-events-api/controllers"
	"github.com/e-Xiua/admin-events-api/mail"
	"github.com/e-Xiua/admin-events-api/repository"
	"github.com/e-Xiua/admin-events-api/routes"
	"github.com/e-Xiua/admin-events-api/security"
	"github.com/e-Xiua/admin-events-api/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := config.Connect(cfg); err != nil {
		log.Fatalf("database: %v", err)
	}

	identity := security.NewIdentityClient(cfg.Identity.URL)
	controllers.Gate = security.NewRoleGate(identity, cfg.Security.AuthorizedRoles)
	controllers.Events = services.NewEventService(
		repository.NewEventRepository(config.DB),
		mail.NewMailService(),
	)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	routes.Setup(app, cfg)

	log.Fatal(app.Listen(cfg.Server.Addr))
}
