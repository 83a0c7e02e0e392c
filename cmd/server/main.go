package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/SR3DR3/planncomm-v2/internal/auth"
	"github.com/SR3DR3/planncomm-v2/internal/config"
	"github.com/SR3DR3/planncomm-v2/internal/database"
	"github.com/SR3DR3/planncomm-v2/internal/handlers"
	"github.com/SR3DR3/planncomm-v2/internal/health"
	h "github.com/SR3DR3/planncomm-v2/internal/http"
	"github.com/SR3DR3/planncomm-v2/internal/middleware"
	"github.com/SR3DR3/planncomm-v2/internal/realtime"
	"github.com/SR3DR3/planncomm-v2/internal/repositories"
	"github.com/SR3DR3/planncomm-v2/internal/services"
)

func main() {
	port := flag.Int("port", 0, "override listen port")
	flag.Parse()

	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("[Database] open failed: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	migrator := database.NewMigrator(db)
	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("[Migrations] failed: %v", err)
	}

	if cfg.Seed.Enabled {
		if err := database.SeedIfEmpty(ctx, db); err != nil {
			log.Fatalf("[Seed] failed: %v", err)
		}
	}

	// Repositories
	clientRepo := repositories.NewClientRepository(db)
	employeeRepo := repositories.NewEmployeeRepository(db)
	taskRepo := repositories.NewTaskRepository(db)
	assignmentRepo := repositories.NewAssignmentRepository(db)
	userRepo := repositories.NewUserRepository(db)

	// Services
	jwtManager := auth.NewJWTManager(cfg)
	clientService := services.NewClientService(clientRepo)
	employeeService := services.NewEmployeeService(employeeRepo, taskRepo)
	taskService := services.NewTaskService(taskRepo, assignmentRepo)
	userService := services.NewUserService(userRepo, jwtManager)
	exportService := services.NewExportService(taskRepo, clientRepo, employeeRepo, employeeService)

	// Handlers
	healthChecker := health.NewHealthChecker(db)
	authHandler := handlers.NewAuthHandler(userService)
	clientHandler := handlers.NewClientHandler(clientService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	taskHandler := handlers.NewTaskHandler(taskService)
	metaHandler := handlers.NewMetaHandler()
	exportHandler := handlers.NewExportHandler(exportService)
	healthHandler := handlers.NewHealthHandler(healthChecker)
	monitoringHandler := handlers.NewMonitoringHandler(healthChecker, cfg.Database.Path)

	// Realtime update relay
	hub := realtime.NewHub()
	go hub.Run()

	router := h.NewRouter(authHandler, clientHandler, employeeHandler, taskHandler,
		metaHandler, exportHandler, healthHandler, monitoringHandler, hub)

	corsMiddleware := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("[Server] PlannComm backend listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("[Server] failed: %v", err)
	}
}
