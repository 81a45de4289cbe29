package main

import (
	"capstone-service/internal/config"
	"capstone-service/internal/handlers"
	"capstone-service/internal/logging"
	"capstone-service/internal/metrics"
	"capstone-service/internal/models"
	"capstone-service/internal/repository"
	"capstone-service/internal/services"
	"capstone-service/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	cfg := InitConfig()
	logging.InitLogger(cfg.LogDir)
	log := logging.Logger

	db := ConnectDatabase(cfg)
	MigrateDatabase(db)
	minioClient := InitMinIOClient(cfg)
	collector := metrics.NewCollector()

	projectRepo := repository.NewProjectRepository(db)
	facultyRepo := repository.NewFacultyRepository(db)
	manuscriptRepo := repository.NewManuscriptRepository(db)

	manuscriptService := services.NewManuscriptService(manuscriptRepo, minioClient, cfg.MinioBucket, log)
	projectService := services.NewProjectService(projectRepo, manuscriptService, collector, log)
	defenseService := services.NewDefenseService(projectRepo, collector, log)
	facultyService := services.NewFacultyService(facultyRepo, log)
	if err := facultyService.SeedDirectory(); err != nil {
		log.Fatalf("faculty directory seeding failed: %v", err)
	}

	projectHandler := handlers.NewProjectHandler(projectService, log)
	defenseHandler := handlers.NewDefenseHandler(defenseService, projectService, log)
	facultyHandler := handlers.NewFacultyHandler(facultyService, log)
	manuscriptHandler := handlers.NewManuscriptHandler(manuscriptService, projectService, log)

	app := fiber.New()
	app.Use(cors.New())

	// Register Prometheus metrics endpoint
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api/capstone")

	api.Get("/faculty", facultyHandler.ListFaculty)
	api.Post("/faculty", facultyHandler.AddFaculty)

	api.Get("/projects", projectHandler.ListProjects)
	api.Post("/projects", projectHandler.CreateProject)
	api.Get("/projects/similar", projectHandler.FindSimilar)
	api.Get("/projects/:id", projectHandler.GetProject)
	api.Delete("/projects/:id", projectHandler.DeleteProject)
	api.Put("/projects/:id/status", projectHandler.UpdateStatus)
	api.Put("/projects/:id/progress", projectHandler.UpdateProgress)
	api.Post("/projects/:id/move-to-finals", projectHandler.MoveToFinals)
	api.Post("/projects/:id/move-to-inventory", projectHandler.MoveToInventory)

	api.Post("/projects/:id/defense", defenseHandler.Schedule)
	api.Put("/projects/:id/defense/result", defenseHandler.SetResult)
	api.Get("/defenses/availability", defenseHandler.Availability)

	api.Post("/projects/:id/manuscripts", manuscriptHandler.Upload)
	api.Get("/projects/:id/manuscripts", manuscriptHandler.List)
	api.Get("/manuscripts/:id/download", manuscriptHandler.Download)
	api.Delete("/manuscripts/:id", manuscriptHandler.Delete)

	api.Get("/swagger/*", swagger.HandlerDefault)

	// Add Health check endpoint
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	port := cfg.AppPort
	if port == "" {
		port = "8080"
		log.Infof("defaulting to port %s", port)
	}
	log.Infof("server listening on port %s", port)
	log.Fatal(app.Listen(":" + port))
}

func InitConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Logger.Fatalf("config error: %v", err)
	}
	return cfg
}

func ConnectDatabase(cfg *config.Config) *gorm.DB {
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		logging.Logger.Fatalf("database connection failed: %v", err)
	}
	return db
}

func MigrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(&models.Project{}, &models.FacultyMember{}, &models.Manuscript{})
	if err != nil {
		logging.Logger.Fatalf("database migration failed: %v", err)
	}
}

func InitMinIOClient(cfg *config.Config) *minio.Client {
	minioClient, err := storage.NewMinioClient(cfg)
	if err != nil {
		logging.Logger.Fatalf("minio client initialization failed: %v", err)
	}
	return minioClient
}
