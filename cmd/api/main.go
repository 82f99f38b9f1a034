package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"civic-redressal/internal/config"
	"civic-redressal/internal/handler"
	"civic-redressal/internal/middleware"
	"civic-redressal/internal/repository"
	"civic-redressal/internal/seed"
	"civic-redressal/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (photo upload will not work)", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redis, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	if err := seed.Run(context.Background(), repos); err != nil {
		log.Fatalf("Failed to seed baseline data: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, services *service.Services) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/admin/login", h.Auth.AdminLogin)
	auth.Post("/refresh", h.Auth.RefreshToken)
	auth.Post("/admin/change-password", middleware.AdminRequired(services.Auth), h.Auth.ChangeAdminPassword)

	citizen := v1.Group("", middleware.UserRequired(services.Auth))

	complaints := citizen.Group("/complaints")
	complaints.Post("/", h.Complaint.Create)
	complaints.Get("/my", h.Complaint.ListMine)
	complaints.Get("/:id", h.Complaint.Get)
	complaints.Get("/:id/history", h.Complaint.History)
	complaints.Delete("/:id", h.Complaint.Delete)

	admin := v1.Group("/admin", middleware.AdminRequired(services.Auth))

	adminComplaints := admin.Group("/complaints")
	adminComplaints.Get("/", h.Complaint.ListForAdmin)
	adminComplaints.Get("/:id", h.Complaint.Get)
	adminComplaints.Get("/:id/history", h.Complaint.History)
	adminComplaints.Put("/:id/status", h.Complaint.UpdateStatus)
	adminComplaints.Get("/:id/complainant", h.Complaint.ComplainantDetails)

	notifications := admin.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.UnreadCount)
	notifications.Patch("/:id/read", h.Notification.MarkAsRead)

	super := v1.Group("/super-admin", middleware.AdminRequired(services.Auth), middleware.RequireSuperAdmin())
	super.Post("/admins", h.SuperAdmin.CreateAdmin)
	super.Get("/admins", h.SuperAdmin.ListAdmins)
	super.Get("/admins/status", h.SuperAdmin.WorkStatuses)
	super.Put("/admins/:id", h.SuperAdmin.UpdateAdmin)
	super.Delete("/admins/:id", h.SuperAdmin.DeleteAdmin)
	super.Post("/admins/:id/remark", h.SuperAdmin.SendRemark)
	super.Get("/departments", h.SuperAdmin.ListDepartments)
	super.Get("/municipalities", h.SuperAdmin.ListMunicipalities)
}
