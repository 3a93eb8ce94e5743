package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"hotel-booking-backend/config"
	"hotel-booking-backend/controllers"
	"hotel-booking-backend/routes"
	"hotel-booking-backend/services"
)

func connect() *gorm.DB {
	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	return db
}

func buildRouter(db *gorm.DB) *gin.Engine {
	availabilityService := services.NewAvailabilityService(db)
	pricingService := services.NewPricingService(db)
	notificationService := services.NewNotificationService(db)
	bookingService := services.NewBookingService(db, availabilityService, pricingService, notificationService)
	promoService := services.NewPromoService(db)
	paymentService := services.NewPaymentService(db, promoService, notificationService)
	roomService := services.NewRoomService(db)
	roomTypeService := services.NewRoomTypeService(db, availabilityService)
	reportService := services.NewReportService(db)
	authService := services.NewAuthService(db)

	ctrl := routes.Controllers{
		Auth:          controllers.NewAuthController(authService),
		RoomTypes:     controllers.NewRoomTypeController(roomTypeService),
		Rooms:         controllers.NewRoomController(roomService),
		Bookings:      controllers.NewBookingController(bookingService, pricingService, availabilityService),
		Promos:        controllers.NewPromoController(promoService),
		Payments:      controllers.NewPaymentController(paymentService),
		Notifications: controllers.NewNotificationController(notificationService),
		Reports:       controllers.NewReportController(reportService),
	}

	return routes.SetupRouter(ctrl, authService)
}

func serve() {
	db := connect()
	router := buildRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped gracefully")
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	root := &cobra.Command{
		Use:   "hotel-booking-backend",
		Short: "Hotel booking backend server",
		Run: func(cmd *cobra.Command, args []string) {
			serve()
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Run: func(cmd *cobra.Command, args []string) {
			serve()
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations and exit",
		Run: func(cmd *cobra.Command, args []string) {
			connect()
			log.Println("migrations applied")
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Seed the database with starter data",
		Run: func(cmd *cobra.Command, args []string) {
			config.SeedDatabase(connect())
			log.Println("seed complete")
		},
	})

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
