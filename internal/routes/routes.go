package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/cache"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	log *zap.Logger,
	availabilityCache *cache.AvailabilityCache,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db, log)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES
	// ======================================================
	createUC := ucBooking.NewCreateAppointment(
		bookingRepo,
		auditDispatcher,
		availabilityCache,
	)

	updateStatusUC := ucBooking.NewUpdateStatus(
		bookingRepo,
		auditDispatcher,
		availabilityCache,
	)

	availabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		availabilityCache,
	)

	listByDateUC := ucBooking.NewListAppointmentsByDate(
		bookingRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	publicHandler := handlers.NewPublicHandler(db, availabilityUC, createUC)
	appointmentHandler := handlers.NewAppointmentHandler(db, updateStatusUC, listByDateUC)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db)

	// ======================================================
	// ROUTES — PUBLIC
	// ======================================================
	r.POST("/auth/login", authHandler.Login)

	public := r.Group("/public/:slug")
	{
		public.GET("/services", publicHandler.ListServices)
		public.GET("/barbers", publicHandler.ListBarbers)
		public.GET("/availability", publicHandler.Availability)
		public.POST("/appointments", publicHandler.CreateAppointment)
	}

	// ======================================================
	// ROUTES — STAFF (JWT)
	// ======================================================
	staff := r.Group("/")
	staff.Use(middleware.AuthMiddleware(cfg))
	{
		staff.GET("/appointments", appointmentHandler.ListByDate)
		staff.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)

		staff.GET("/barbers/:barberId/working-hours", workingHoursHandler.Get)
		staff.PUT("/barbers/:barberId/working-hours", workingHoursHandler.Update)
	}
}
