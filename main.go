// File: pawhub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pawhub/config"
	"pawhub/cron"
	"pawhub/database"
	bookingRepoPkg "pawhub/database/repository/booking"
	donationRepoPkg "pawhub/database/repository/donation"
	providerRepoPkg "pawhub/database/repository/provider"
	userRepoPkg "pawhub/database/repository/user"
	"pawhub/handlers"
	"pawhub/routes"
	"pawhub/services/booking"
	"pawhub/services/donation"
	"pawhub/services/provider"
	"pawhub/services/user"
	"pawhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	provRepo := providerRepoPkg.NewMongoProviderRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	donationRepo := donationRepoPkg.NewMongoDonationRepo()

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	providerService := &provider.DefaultProviderService{Repo: provRepo}
	bookingService := &booking.DefaultBookingService{
		Repo:         bookingRepo,
		ProviderRepo: provRepo,
		UserRepo:     userRepo,
		Payments:     booking.NewPaymentHandler(logger),
		Reminders:    booking.NewReminderScheduler(),
	}
	donationService := &donation.DefaultDonationService{Repo: donationRepo}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:     userRepo,
		ProviderRepo: provRepo,
		Users:        handlers.NewUserHandler(userService),
		Providers:    handlers.NewProviderHandler(providerService),
		Bookings:     handlers.NewBookingHandler(bookingService, logger),
		Donations:    handlers.NewDonationHandler(donationService),
		Admin:        handlers.NewAdminHandler(userService, providerService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background worker that fires appointment reminders.
	cron.InitReminderWorker()

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
