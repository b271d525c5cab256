package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/spicevilla/table-booking-api/internal/audit"
	"github.com/spicevilla/table-booking-api/internal/config"
	"github.com/spicevilla/table-booking-api/internal/handlers"
	infraRepo "github.com/spicevilla/table-booking-api/internal/infra/repository"
	"github.com/spicevilla/table-booking-api/internal/middleware"
	ucBooking "github.com/spicevilla/table-booking-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createPublicUC := ucBooking.NewCreatePublicBooking(
		bookingRepo,
		auditDispatcher,
		cfg.Timezone,
	)

	createManualUC := ucBooking.NewCreateManualBooking(
		bookingRepo,
		auditDispatcher,
	)

	updateUC := ucBooking.NewUpdateBooking(
		bookingRepo,
		auditDispatcher,
	)

	deleteUC := ucBooking.NewDeleteBooking(
		bookingRepo,
		auditDispatcher,
	)

	listUC := ucBooking.NewListBookings(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	bookingHandler := handlers.NewBookingHandler(
		createPublicUC,
		updateUC,
		deleteUC,
	)

	ownerHandler := handlers.NewOwnerHandler(
		listUC,
		createManualUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.DBReady(db))
	{
		// ------------------------------
		// PUBLIC BOOKINGS
		// ------------------------------
		api.POST("/bookings", bookingHandler.Create)
		api.PUT("/bookings/:id", bookingHandler.Update)
		api.DELETE("/bookings/:id", bookingHandler.Delete)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// OWNER DASHBOARD
		// ------------------------------
		owner := api.Group("/owner")
		owner.Use(middleware.AuthMiddleware(cfg))
		{
			owner.GET("/bookings", ownerHandler.List)
			owner.POST("/bookings", ownerHandler.Create)
		}
	}
}
