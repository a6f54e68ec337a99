package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/service-scheduler/internal/audit"
	"github.com/BruksfildServices01/service-scheduler/internal/cache"
	"github.com/BruksfildServices01/service-scheduler/internal/config"
	"github.com/BruksfildServices01/service-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/service-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/service-scheduler/internal/middleware"
	"github.com/BruksfildServices01/service-scheduler/internal/schema"
	"github.com/BruksfildServices01/service-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/service-scheduler/internal/usecase/appointment"
	ucCatalog "github.com/BruksfildServices01/service-scheduler/internal/usecase/catalog"
	ucUser "github.com/BruksfildServices01/service-scheduler/internal/usecase/user"
)

// Deps are the process-wide collaborators built in main.
type Deps struct {
	DB         *gorm.DB
	Config     *config.Config
	Registry   *schema.Registry
	Clock      timezone.Clock
	Cache      cache.Cache
	Audit      *audit.Dispatcher
	Migrations handlers.LedgerReader
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware(d.Config.CORSOrigins))

	// ======================================================
	// INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	catalogRepo := infraRepo.NewCatalogGormRepository(d.DB, d.Registry)
	userRepo := infraRepo.NewUserGormRepository(d.DB)

	// ======================================================
	// USE CASES
	// ======================================================
	jobs := ucCatalog.NewJobs(catalogRepo, d.Registry, d.Cache)
	persons := ucCatalog.NewPersons(catalogRepo, d.Registry, d.Cache)
	services := ucCatalog.NewServices(catalogRepo, d.Registry)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(
		ucUser.NewRegister(userRepo, d.Registry),
		ucUser.NewLogin(userRepo, ucUser.NewTokens(d.Config.JWTSecret)),
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		ucAppointment.NewListAppointments(appointmentRepo, d.Clock),
		ucAppointment.NewGetAppointment(appointmentRepo),
		ucAppointment.NewCreateAppointment(appointmentRepo, d.Registry, d.Clock, d.Audit),
		ucAppointment.NewUpdateAppointment(appointmentRepo, d.Registry, d.Clock, d.Audit),
		ucAppointment.NewDeleteAppointment(appointmentRepo, d.Audit),
		ucAppointment.NewConfirmAppointment(appointmentRepo, d.Audit),
		ucAppointment.NewCancelAppointment(appointmentRepo, d.Audit),
		ucAppointment.NewCompleteAppointment(appointmentRepo, d.Audit),
	)

	jobHandler := handlers.NewJobHandler(jobs, persons)
	personHandler := handlers.NewPersonHandler(persons)
	serviceHandler := handlers.NewServiceHandler(services)
	migrationHandler := handlers.NewMigrationHandler(d.Migrations)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

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

		api.GET("/jobs", jobHandler.List)
		api.GET("/jobs/:id", jobHandler.Get)
		api.GET("/jobs/:id/persons", jobHandler.Persons)

		api.GET("/persons", personHandler.List)
		api.GET("/persons/:id", personHandler.Get)
		api.GET("/persons/:id/jobs", personHandler.Jobs)

		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Get)

		api.GET("/appointments", appointmentHandler.List)
		api.GET("/appointments/:id", appointmentHandler.Get)
		api.POST("/appointments", appointmentHandler.Create)

		api.GET("/migrations", migrationHandler.Status)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Config))
		{
			secured.POST("/jobs", jobHandler.Create)
			secured.PUT("/jobs/:id", jobHandler.Update)
			secured.DELETE("/jobs/:id", jobHandler.Delete)

			secured.POST("/persons", personHandler.Create)
			secured.PUT("/persons/:id", personHandler.Update)
			secured.DELETE("/persons/:id", personHandler.Delete)
			secured.PUT("/persons/:id/jobs/:job_id", personHandler.Grant)
			secured.DELETE("/persons/:id/jobs/:job_id", personHandler.Revoke)

			secured.POST("/services", serviceHandler.Create)
			secured.PUT("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)
			secured.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
		}
	}
}
