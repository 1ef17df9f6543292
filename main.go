package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pulselink/config"
	"pulselink/directory"
	"pulselink/handlers"
	"pulselink/middleware"
	"pulselink/routes"
	"pulselink/services/booking"
	"pulselink/services/chat"
	"pulselink/services/notification"
	"pulselink/services/search"
	"pulselink/services/user"
	"pulselink/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	doctorDirectory, err := directory.LoadSeed()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load doctor directory: %v", err)
	}
	logger.Sugar().Infof("Loaded %d doctors into the directory", len(doctorDirectory.ListDoctors()))

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	scheduler := utils.RealScheduler{}

	// services.
	notificationService := notification.NewDefaultNotificationService()
	userService := user.NewDefaultUserService()
	chatService := chat.NewDefaultChatService(scheduler)

	searchService := &search.DefaultSearchService{
		Directory: doctorDirectory,
		Cache:     utils.GetSearchCacheClient(),
	}

	bookingService := &booking.DefaultBookingSessionService{
		Directory: doctorDirectory,
		Notifier:  notificationService,
		Scheduler: scheduler,
		Cache:     utils.GetBookingCacheClient(),
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		User:         handlers.NewUserHandler(userService),
		Doctor:       handlers.NewDoctorHandler(doctorDirectory),
		Search:       handlers.NewSearchHandler(searchService),
		Booking:      handlers.NewBookingHandler(bookingService),
		Chat:         handlers.NewChatHandler(chatService),
		Notification: handlers.NewNotificationHandler(notificationService),
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
