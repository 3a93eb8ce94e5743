package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"hotel-booking-backend/controllers"
	"hotel-booking-backend/middleware"
	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// registerValidators adds the "bookdate" rule (ISO YYYY-MM-DD) to gin's
// validator engine.
func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("bookdate", func(fl validator.FieldLevel) bool {
			_, err := utils.ParseDate(fl.Field().String())
			return err == nil
		})
	}
}

type Controllers struct {
	Auth          *controllers.AuthController
	RoomTypes     *controllers.RoomTypeController
	Rooms         *controllers.RoomController
	Bookings      *controllers.BookingController
	Promos        *controllers.PromoController
	Payments      *controllers.PaymentController
	Notifications *controllers.NotificationController
	Reports       *controllers.ReportController
}

func SetupRouter(ctrl Controllers, auth *services.AuthService) *gin.Engine {
	registerValidators()

	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", ctrl.Auth.Register)
			authRoutes.POST("/login", ctrl.Auth.Login)
			authRoutes.GET("/me", middleware.RequireAuth(auth), ctrl.Auth.Me)
		}

		// Public catalog + quoting.
		api.GET("/search", ctrl.RoomTypes.Search)
		roomTypes := api.Group("/room-types")
		{
			roomTypes.GET("", ctrl.RoomTypes.List)
			roomTypes.GET("/:id", ctrl.RoomTypes.Get)
			roomTypes.GET("/:id/availability", ctrl.Bookings.CheckAvailability)
			roomTypes.GET("/:id/price", ctrl.Bookings.CalculatePrice)
			roomTypes.GET("/:id/seasonal-pricing", ctrl.RoomTypes.ListSeasonalRules)

			admin := roomTypes.Group("", middleware.RequireAuth(auth), middleware.RequireAdmin())
			{
				admin.POST("", ctrl.RoomTypes.Create)
				admin.PATCH("/:id", ctrl.RoomTypes.Update)
				admin.DELETE("/:id", ctrl.RoomTypes.Deactivate)
				admin.POST("/:id/seasonal-pricing", ctrl.RoomTypes.AddSeasonalRule)
				admin.DELETE("/:id/seasonal-pricing/:ruleID", ctrl.RoomTypes.DeactivateSeasonalRule)
			}
		}

		rooms := api.Group("/rooms", middleware.RequireAuth(auth), middleware.RequireAdmin())
		{
			rooms.GET("", ctrl.Rooms.List)
			rooms.GET("/:id", ctrl.Rooms.Get)
			rooms.POST("", ctrl.Rooms.Create)
			rooms.PATCH("/:id", ctrl.Rooms.Update)
			rooms.PUT("/:id/availability", ctrl.Rooms.SetAvailability)
			rooms.DELETE("/:id", ctrl.Rooms.Delete)
		}

		bookings := api.Group("/bookings", middleware.RequireAuth(auth))
		{
			bookings.GET("", ctrl.Bookings.ListBookings)
			bookings.POST("", ctrl.Bookings.CreateBooking)
			bookings.GET("/:id", ctrl.Bookings.GetBooking)
			bookings.PATCH("/:id", ctrl.Bookings.UpdateBooking)
			bookings.POST("/:id/cancel", ctrl.Bookings.CancelBooking)
			bookings.GET("/:id/payments", ctrl.Payments.ListForBooking)

			staff := bookings.Group("", middleware.RequireAdmin())
			{
				staff.POST("/:id/check-in", ctrl.Bookings.CheckIn)
				staff.POST("/:id/check-out", ctrl.Bookings.CheckOut)
				staff.POST("/:id/complete", ctrl.Bookings.Complete)
			}
		}

		promos := api.Group("/promos")
		{
			promos.POST("/validate", ctrl.Promos.Validate)
			promos.POST("/use", middleware.RequireAuth(auth), ctrl.Promos.Use)

			admin := promos.Group("", middleware.RequireAuth(auth), middleware.RequireAdmin())
			{
				admin.GET("", ctrl.Promos.List)
				admin.POST("", ctrl.Promos.Create)
				admin.DELETE("/:id", ctrl.Promos.Deactivate)
			}
		}

		payments := api.Group("/payments", middleware.RequireAuth(auth))
		{
			payments.POST("", ctrl.Payments.Create)
			payments.POST("/:id/complete", ctrl.Payments.Complete)
			payments.POST("/:id/fail", ctrl.Payments.Fail)
			payments.POST("/:id/refund", middleware.RequireAdmin(), ctrl.Payments.Refund)
		}

		notifications := api.Group("/notifications", middleware.RequireAuth(auth))
		{
			notifications.GET("", ctrl.Notifications.ListMine)
			notifications.POST("/:id/sent", middleware.RequireAdmin(), ctrl.Notifications.MarkSent)
		}

		reports := api.Group("/reports", middleware.RequireAuth(auth), middleware.RequireAdmin())
		{
			reports.GET("/dashboard", ctrl.Reports.Dashboard)
			reports.GET("/revenue", ctrl.Reports.Revenue)
			reports.GET("/occupancy", ctrl.Reports.Occupancy)
		}
	}

	return r
}
