package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"skill-garden/config"
	"skill-garden/handlers"
	"skill-garden/middleware"
	"skill-garden/models"
	"skill-garden/services"
	"skill-garden/utils"
)

func main() {
	cfg := config.Load()

	app := fiber.New()
	app.Use(middleware.SecurityHeaders())
	app.Use(middleware.SanitizeRequestPath())

	allowedOrigins := make([]string, 0)
	for _, origin := range strings.Split(cfg.AllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			allowedOrigins = append(allowedOrigins, origin)
		}
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(allowedOrigins, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.Challenge{},
		&models.Resource{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	var storage *utils.ObjectStorage
	if cfg.R2.Enabled() {
		storage, err = utils.NewObjectStorage(cfg.R2)
		if err != nil {
			log.Fatal("failed to initialize object storage:", err)
		}
	} else {
		log.Println("Object storage not configured, resource uploads disabled")
	}

	authService := services.NewAuthService(db, cfg.JWTSecret)
	teamService := services.NewTeamService(db)
	challengeService := services.NewChallengeService(db, services.NewKeywordJudge())
	resourceService := services.NewResourceService(db, storage)
	leaderboardService := services.NewLeaderboardService(db)

	challengeService.StartDailyScheduler()

	handlers.SetupAuthRoutes(app, authService)
	handlers.SetupTeamRoutes(app, teamService, cfg.JWTSecret)
	handlers.SetupChallengeRoutes(app, challengeService, cfg.JWTSecret)
	handlers.SetupResourceRoutes(app, resourceService, cfg.JWTSecret)
	handlers.SetupLeaderboardRoutes(app, leaderboardService)

	if !cfg.IsProduction() {
		seedService := services.NewSeedService(db, authService)
		handlers.SetupDebugRoutes(app, seedService)
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Client-rendered static pages, when deployed alongside the API.
	app.Static("/", "./public")

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Endpoint not found",
			"request": fiber.Map{"method": c.Method(), "path": c.Path()},
		})
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Skill Garden backend running on port %s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

// openDatabase connects to Postgres, falling back to an in-memory SQLite
// database outside production so the app can run without a provisioned
// database.
func openDatabase(cfg config.Config) (*gorm.DB, error) {
	if cfg.DatabaseURL != "" {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
		if err == nil {
			return db, nil
		}
		if cfg.IsProduction() {
			return nil, err
		}
		log.Printf("Postgres connection failed (%v), falling back to in-memory SQLite", err)
	} else {
		if cfg.IsProduction() {
			log.Fatal("DATABASE_URL environment variable not set")
		}
		log.Println("DATABASE_URL not set, using in-memory SQLite")
	}
	return gorm.Open(sqlite.Open("file:skillgarden?mode=memory&cache=shared"), &gorm.Config{})
}
