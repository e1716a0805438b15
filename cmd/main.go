package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"binsight/internal/analytics"
	"binsight/internal/caching"
	"binsight/internal/config"
	"binsight/internal/handlers"
	"binsight/internal/jobs"
	"binsight/internal/jobs/background"
	"binsight/internal/repositories"
	"binsight/internal/services"
	"binsight/pkg/database"
)

const version = "1.0.0"

func main() {
	// Database connection
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := database.NewPool(context.Background(), databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Redis configuration
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379" // Default Redis address
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDBStr := os.Getenv("REDIS_DB")
	redisDB := 0 // Default DB
	if redisDBStr != "" {
		if db, err := strconv.Atoi(redisDBStr); err == nil {
			redisDB = db
		}
	}

	// MinIO configuration
	minioEndpoint := os.Getenv("MINIO_ENDPOINT")
	if minioEndpoint == "" {
		minioEndpoint = "localhost:9000" // Default MinIO endpoint
	}
	minioAccessKey := os.Getenv("MINIO_ACCESS_KEY")
	if minioAccessKey == "" {
		minioAccessKey = "minioadmin" // Default for development
	}
	minioSecretKey := os.Getenv("MINIO_SECRET_KEY")
	if minioSecretKey == "" {
		minioSecretKey = "minioadmin" // Default for development
	}
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	// Jobs configuration
	jobsCfg, err := config.LoadJobsConfig(os.Getenv("JOBS_CONFIG"))
	if err != nil {
		log.Fatalf("Failed to load jobs config: %v", err)
	}

	// Initialize MinIO storage
	storage, err := services.NewMinioStorage(minioEndpoint, minioAccessKey, minioSecretKey, useSSL)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO storage: %v", err)
	}

	// Create repositories
	inventoryRepo := repositories.NewInventoryRepository(pool)
	layoutRepo := repositories.NewWarehouseLayoutRepository(pool)
	movementRepo := repositories.NewMovementLogsRepository(pool)

	// Create cache service
	cacheSvc := caching.NewRedisCacheService(redisAddr, redisPassword, redisDB)

	// Create services
	statsSvc := analytics.NewStatsService(layoutRepo, inventoryRepo, cacheSvc)
	itemSvc := services.NewItemService(inventoryRepo, layoutRepo, movementRepo, cacheSvc)
	reportSvc := services.NewReportService(inventoryRepo, layoutRepo, storage, jobsCfg.Reports.Bucket, jobsCfg.Reports.URLExpiry())
	expiryAlerts := jobs.NewExpiryAlertService(inventoryRepo)

	// Asynq client and worker for report exports
	redisOpt := asynq.RedisClientOpt{Addr: redisAddr, Password: redisPassword, DB: redisDB}
	taskClient := asynq.NewClient(redisOpt)
	defer taskClient.Close()

	taskServer := asynq.NewServer(redisOpt, asynq.Config{Concurrency: 2})
	mux := asynq.NewServeMux()
	mux.HandleFunc(jobs.TypeReportExport, jobs.NewReportTaskHandler(reportSvc).HandleReportExport)
	go func() {
		if err := taskServer.Run(mux); err != nil {
			log.Fatalf("Task server failed: %v", err)
		}
	}()

	// Background scheduler
	scheduler, err := background.NewJobScheduler(statsSvc, expiryAlerts, reportSvc, background.Config{
		StatsRefreshInterval: jobsCfg.Scheduler.StatsRefreshInterval(),
		ExpiryCheckInterval:  jobsCfg.Scheduler.ExpiryCheckInterval(),
		NightlyExportHour:    jobsCfg.Scheduler.NightlyExportHour,
	})
	if err != nil {
		log.Fatalf("Failed to create job scheduler: %v", err)
	}
	scheduler.Start()
	defer func() {
		if err := scheduler.Stop(); err != nil {
			log.Printf("Failed to stop job scheduler: %v", err)
		}
	}()

	// Create handlers
	itemHandlers := handlers.NewItemHandlers(itemSvc)
	dashboardHandlers := handlers.NewDashboardHandlers(statsSvc)
	statsHandlers := handlers.NewStatsHandlers(statsSvc)
	reportHandlers := handlers.NewReportHandlers(taskClient)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc, version)

	// Create Echo instance
	e := echo.New()

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// Routes
	e.GET("/", dashboardHandlers.Dashboard)
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	api := e.Group("/api")
	api.POST("/item", itemHandlers.GetItem)
	api.POST("/item/add", itemHandlers.AddItem)
	api.POST("/item/delete", itemHandlers.DeleteItem)
	api.GET("/warehouse/stats", statsHandlers.WarehouseStats)
	api.POST("/reports/export", reportHandlers.ExportReport)

	// Start server
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		log.Fatalf("Invalid port %s: %v", portStr, err)
	}

	log.Printf("Binsight server v%s starting on port %d", version, port)

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", port)))
}
