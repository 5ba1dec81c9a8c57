package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"smarthome/config"
	"smarthome/cron"
	"smarthome/database"
	bookingRepo "smarthome/database/repository/booking"
	decoratorRepo "smarthome/database/repository/decorator"
	serviceRepo "smarthome/database/repository/service"
	userRepoPkg "smarthome/database/repository/user"
	"smarthome/handlers"
	"smarthome/middleware"
	"smarthome/routes"
	booking "smarthome/services/booking"
	"smarthome/services/catalog"
	"smarthome/services/user"
	"smarthome/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// The store must be reachable before any handler is wired; requests can
	// never race initialization.
	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	usrRepo := userRepoPkg.NewMongoUserRepo()
	svcRepo := serviceRepo.NewMongoServiceRepo()
	decRepo := decoratorRepo.NewMongoDecoratorRepo()
	bkRepo := bookingRepo.NewMongoBookingRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo:   usrRepo,
		Logger: logger,
	}
	catalogService := &catalog.DefaultCatalogService{
		Services:   svcRepo,
		Decorators: decRepo,
		Cache:      utils.GetCacheClient(),
		CacheTTL:   time.Duration(config.AppConfig.CatalogCacheTTLMins) * time.Minute,
		Logger:     logger,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:        bkRepo,
		ServiceRepo: svcRepo,
		Logger:      logger,
	}

	// Background expiry of stale unpaid bookings.
	cron.InitExpiryWorker(bookingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		User:    handlers.NewUserHandler(userService, logger),
		Catalog: handlers.NewCatalogHandler(catalogService, logger),
		Booking: handlers.NewBookingHandler(bookingService, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "3000"
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
