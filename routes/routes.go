package routes

import (
	"net/http"
	"time"

	"firstlighthrm/handlers"
	"firstlighthrm/middleware"
	"firstlighthrm/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterInterviewRoutes registers the interview calendar and appointment endpoints.
func RegisterInterviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/interviews")
	{
		// The calendar is readable without authentication so the public
		// booking page can render it.
		api.GET("/available-slots", hb.GetAvailableSlotsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthStaffMiddleware())
		protected.GET("/appointments", hb.ListAppointmentsHandler)
		protected.POST("/appointments", hb.BookAppointmentHandler)
		protected.DELETE("/appointments/:id", hb.CancelAppointmentHandler)
	}
}

// RegisterCandidateRoutes registers candidate and pipeline endpoints.
func RegisterCandidateRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/candidates")
	{
		api.Use(middleware.JWTAuthStaffMiddleware())
		api.GET("", hb.GetAllCandidatesHandler)
		api.GET("/pipeline", hb.GetPipelineHandler)
		api.GET("/:id", hb.GetCandidateByIDHandler)
		api.POST("", hb.CreateCandidateHandler)
		api.PUT("/:id", hb.UpdateCandidateHandler)
		api.DELETE("/:id", hb.DeleteCandidateHandler)
		api.PUT("/:id/interview", hb.UpsertInterviewHandler)
		api.POST("/:id/hire", hb.HireCandidateHandler)
	}
}

// RegisterCaregiverRoutes registers caregiver management endpoints.
func RegisterCaregiverRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/caregivers")
	{
		api.Use(middleware.JWTAuthStaffMiddleware())
		api.GET("", hb.GetAllCaregiversHandler)
		api.GET("/:id", hb.GetCaregiverByIDHandler)
		api.POST("", hb.RegisterCaregiverHandler)
		api.PUT("/:id", hb.UpdateCaregiverHandler)
		api.DELETE("/:id", hb.DeleteCaregiverHandler)
		api.PUT("/:id/availability", hb.SetAvailabilityHandler)
		api.GET("/:id/schedule-proposal", hb.ProposeScheduleHandler)
	}
}

// RegisterClientRoutes registers care client endpoints.
func RegisterClientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/clients")
	{
		api.Use(middleware.JWTAuthStaffMiddleware())
		api.GET("", hb.GetAllClientsHandler)
		api.GET("/:id", hb.GetClientByIDHandler)
		api.POST("", hb.CreateClientHandler)
		api.PUT("/:id", hb.UpdateClientHandler)
		api.DELETE("/:id", hb.DeleteClientHandler)
	}
}

// RegisterSettingsRoutes registers agency settings endpoints.
func RegisterSettingsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/settings")
	{
		api.Use(middleware.JWTAuthStaffMiddleware())
		api.GET("/interview-slots", hb.GetInterviewTemplateHandler)
		api.PUT("/interview-slots", hb.UpdateInterviewTemplateHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterInterviewRoutes(r, hb)
	RegisterCandidateRoutes(r, hb)
	RegisterCaregiverRoutes(r, hb)
	RegisterClientRoutes(r, hb)
	RegisterSettingsRoutes(r, hb)
	RegisterHealthRoute(r)
}
