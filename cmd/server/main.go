package main

import (
	"context"
	"fmt"
	"log"

	"car_rental/internal/config"
	"car_rental/internal/database"
	"car_rental/internal/flash"
	"car_rental/internal/handlers"
	"car_rental/internal/metrics"
	"car_rental/internal/migrations"
	"car_rental/internal/mutation"
	"car_rental/internal/redis"
	"car_rental/internal/repository"
	"car_rental/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := run(context.Background(), cfg); err != nil {
		log.Fatal(err)
	}
}

// run owns every connection it opens and closes them all before returning.
func run(ctx context.Context, cfg *config.Config) error {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	if err := handlers.LoadTemplates(router); err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	// Initialize database
	db, err := database.Initialize(cfg.ORMDatabaseURL, cfg.GormLogLevel)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Warning: Failed to close database: %v", err)
		}
	}()

	if _, err := migrations.VerifySchema(db); err != nil {
		log.Printf("Warning: Could not verify schema: %v", err)
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, cfg.PoolMaxConns)
	if err != nil {
		return err
	}
	defer pool.Close()

	// Flash messages live in Redis when it is configured
	var flashes flash.Store = flash.NewMemoryStore()
	checks := map[string]handlers.CheckFunc{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		"pool": pool.Ping,
	}
	if cfg.RedisURL != "" {
		redisClient, err := redis.Initialize(cfg.RedisURL, cfg.FlashTTL)
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("Warning: Failed to close Redis: %v", err)
			}
		}()
		flashes = redisClient
		checks["redis"] = redisClient.Ping
	} else {
		log.Println("REDIS_URL not set, keeping flash messages in memory")
	}

	m := metrics.New()
	protocol := mutation.NewProtocol(db, m)

	// Initialize repositories
	fleetRepo := repository.NewFleetRepository(db)
	peopleRepo := repository.NewPeopleRepository(db)
	rentalRepo := repository.NewRentalRepository(db)
	reportRepo := repository.NewReportRepository(pool)

	// Initialize services
	recordService := services.NewRecordService(protocol)
	listService := services.NewListService(fleetRepo, peopleRepo, rentalRepo)
	reportService := services.NewReportService(reportRepo)

	// Setup routes
	router.Use(gin.Logger(), gin.Recovery(), m.Middleware(), handlers.FlashSession())
	handlers.RegisterRoutes(router, handlers.Handlers{
		Pages:   handlers.NewPageHandler(listService, flashes),
		Records: handlers.NewRecordHandler(recordService, flashes),
		Reports: handlers.NewReportHandler(reportService, flashes),
		Health:  handlers.NewHealthHandler(checks),
		Metrics: m,
	})

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
