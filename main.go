// File: fieldbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fieldbook/config"
	"fieldbook/cron"
	"fieldbook/database"
	bookingRepo "fieldbook/database/repository/booking"
	facilityRepo "fieldbook/database/repository/facility"
	scheduleRepo "fieldbook/database/repository/schedule"
	"fieldbook/handlers"
	"fieldbook/middleware"
	"fieldbook/routes"
	"fieldbook/services/entrypass"
	facilitySvc "fieldbook/services/facility"
	"fieldbook/services/scheduling"
	"fieldbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	facRepo := facilityRepo.NewMongoFacilityRepo()
	schedRepo := scheduleRepo.NewMongoScheduleRepo()
	bookRepo := bookingRepo.NewMongoBookingRepo()

	// async task client for repair reconciles.
	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWorkerDB,
	})
	defer taskClient.Close()

	// services.
	facilityService := &facilitySvc.DefaultFacilityService{
		Repo: facRepo,
	}

	schedulingEngine := &scheduling.DefaultSchedulingEngine{
		Bookings:    bookRepo,
		Schedules:   schedRepo,
		Facilities:  facRepo,
		Cache:       utils.GetScheduleCacheClient(),
		Tasks:       taskClient,
		DayOpen:     config.AppConfig.DefaultOpenTime,
		DayClose:    config.AppConfig.DefaultCloseTime,
		SlotMinutes: config.AppConfig.SlotMinutes,
	}

	tokenService := entrypass.New(
		config.AppConfig.EntryTokenSecret,
		entrypass.WithExpiryMinutes(config.AppConfig.EntryTokenExpiryMin),
	)

	// Background worker: repair reconciles and the completion sweep.
	cron.InitReconcileWorker(schedulingEngine, bookRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking:   handlers.NewBookingHandler(schedulingEngine, bookRepo, logger),
		Schedule:  handlers.NewScheduleHandler(schedulingEngine, schedRepo, logger),
		Facility:  handlers.NewFacilityHandler(facilityService, logger),
		EntryPass: handlers.NewEntryPassHandler(tokenService, bookRepo, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
