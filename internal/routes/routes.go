package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-site/internal/config"
	"github.com/BruksfildServices01/barbershop-site/internal/followup"
	"github.com/BruksfildServices01/barbershop-site/internal/handlers"
	"github.com/BruksfildServices01/barbershop-site/internal/middleware"
	"github.com/BruksfildServices01/barbershop-site/internal/notify"
	"github.com/BruksfildServices01/barbershop-site/internal/sheetstore"
	"github.com/BruksfildServices01/barbershop-site/internal/uploader"
	ucAppointment "github.com/BruksfildServices01/barbershop-site/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, store *sheetstore.Store, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	mailer := notify.NewService(cfg)
	worker := followup.NewWorker(store, mailer)
	imageUploader := uploader.New(cfg)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	bookUC := ucAppointment.NewBook(worker)
	availabilityUC := ucAppointment.NewGetAvailability(store)
	setStatusUC := ucAppointment.NewSetStatus(store)
	deleteUC := ucAppointment.NewDelete(store)
	reconcileUC := ucAppointment.NewReconcilePast(store, cfg.ReconcileDelay)
	repairUC := ucAppointment.NewRepairIDs(store)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(store, bookUC, availabilityUC, cfg.Timezone)
	contactHandler := handlers.NewContactHandler(store, mailer)
	adminHandler := handlers.NewAdminHandler(cfg, store, setStatusUC, deleteUC, reconcileUC, repairUC)
	contentHandler := handlers.NewContentHandler(store, imageUploader)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	if cfg.Env != "development" {
		limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		api.Use(middleware.RateLimitMiddleware(limiter))
	}
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.POST("/appointments/book", publicHandler.Book)
		api.GET("/appointments/available-times", publicHandler.AvailableTimes)
		api.GET("/appointments/services", publicHandler.ListServices)
		api.GET("/appointments/work", publicHandler.ListWork)
		api.POST("/contact/send", contactHandler.Send)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/admin/login", adminHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/admin")
		secured.Use(middleware.AdminAuthMiddleware(cfg))
		{
			secured.GET("/appointments", adminHandler.ListAppointments)
			secured.PUT("/appointments/:id/status", adminHandler.UpdateAppointmentStatus)
			secured.DELETE("/appointments/:id", adminHandler.DeleteAppointment)
			secured.POST("/appointments/migrate-ids", adminHandler.MigrateIDs)
			secured.POST("/appointments/reconcile", adminHandler.Reconcile)

			secured.GET("/messages", adminHandler.ListMessages)

			secured.GET("/services", contentHandler.ListServices)
			secured.POST("/services", contentHandler.AddService)
			secured.PUT("/services/:id", contentHandler.UpdateService)
			secured.DELETE("/services/:id", contentHandler.DeleteService)

			secured.GET("/work", contentHandler.ListWork)
			secured.POST("/work", contentHandler.AddWork)
			secured.PUT("/work/:id", contentHandler.UpdateWork)
			secured.DELETE("/work/:id", contentHandler.DeleteWork)
			secured.POST("/work/upload", contentHandler.UploadWork)
		}
	}
}
