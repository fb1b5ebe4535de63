package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ironfit-labs/gym-platform/internal/audit"
	"github.com/ironfit-labs/gym-platform/internal/config"
	"github.com/ironfit-labs/gym-platform/internal/handlers"
	infraRepo "github.com/ironfit-labs/gym-platform/internal/infra/repository"
	"github.com/ironfit-labs/gym-platform/internal/infra/storage"
	"github.com/ironfit-labs/gym-platform/internal/middleware"
	"github.com/ironfit-labs/gym-platform/internal/notification"
	ucBooking "github.com/ironfit-labs/gym-platform/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	notifier *notification.Dispatcher,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	uploader := storage.NewUploader(cfg)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		notifier,
		auditDispatcher,
	)

	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)

	updateStatusUC := ucBooking.NewUpdateStatus(
		bookingRepo,
		notifier,
		auditDispatcher,
	)

	updateBookingUC := ucBooking.NewUpdateBooking(
		bookingRepo,
		auditDispatcher,
	)

	deleteBookingUC := ucBooking.NewDeleteBooking(
		bookingRepo,
		auditDispatcher,
	)

	listBookingsUC := ucBooking.NewListBookings(bookingRepo)
	bookingReportUC := ucBooking.NewBookingReport(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, notifier)
	meHandler := handlers.NewMeHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		availabilityUC,
		updateStatusUC,
		updateBookingUC,
		deleteBookingUC,
		listBookingsUC,
		bookingReportUC,
	)

	trainerHandler := handlers.NewTrainerHandler(db)
	productHandler := handlers.NewProductHandler(db, uploader)
	feedbackHandler := handlers.NewFeedbackHandler(db)
	trackerHandler := handlers.NewTrackerHandler(db)
	paymentHandler := handlers.NewPaymentHandler(db, cfg)
	coachHandler := handlers.NewCoachHandler(cfg)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/trainers", trainerHandler.List)
		api.GET("/trainers/:id", trainerHandler.Get)
		api.GET("/products", productHandler.List)

		api.POST("/bookings", bookingHandler.Create)
		api.GET("/bookings/availability/:trainerId/:date/:timeSlot", bookingHandler.Availability)
		api.POST("/feedback", feedbackHandler.Create)
		api.POST("/coach/chat", coachHandler.Chat)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/bookings", bookingHandler.List)
			secured.PUT("/bookings/:id", bookingHandler.Update)

			secured.POST("/payments/checkout", paymentHandler.Checkout)
			secured.GET("/payments", paymentHandler.History)

			secured.POST("/tracker/workouts", trackerHandler.CreateWorkout)
			secured.GET("/tracker/workouts", trackerHandler.ListWorkouts)
			secured.DELETE("/tracker/workouts/:id", trackerHandler.DeleteWorkout)

			secured.POST("/tracker/meals", trackerHandler.CreateMeal)
			secured.GET("/tracker/meals", trackerHandler.ListMeals)
			secured.DELETE("/tracker/meals/:id", trackerHandler.DeleteMeal)

			secured.POST("/tracker/progress", trackerHandler.CreateProgress)
			secured.GET("/tracker/progress", trackerHandler.ListProgress)
			secured.DELETE("/tracker/progress/:id", trackerHandler.DeleteProgress)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireAdmin())
			{
				admin.PUT("/bookings/:id/status", bookingHandler.UpdateStatus)
				admin.DELETE("/bookings/:id", bookingHandler.Delete)
				admin.GET("/bookings/report", bookingHandler.Report)

				admin.POST("/trainers", trainerHandler.Create)
				admin.PUT("/trainers/:id", trainerHandler.Update)
				admin.DELETE("/trainers/:id", trainerHandler.Delete)

				admin.POST("/products", productHandler.Create)
				admin.PUT("/products/:id", productHandler.Update)
				admin.DELETE("/products/:id", productHandler.Delete)
				admin.POST("/products/:id/image", productHandler.UploadImage)

				admin.GET("/feedback", feedbackHandler.List)
				admin.GET("/feedback/stats", feedbackHandler.Stats)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
