// File: firstlighthrm/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"firstlighthrm/config"
	"firstlighthrm/cron"
	"firstlighthrm/database"
	appointmentRepo "firstlighthrm/database/repository/appointment"
	caregiverRepo "firstlighthrm/database/repository/caregiver"
	candidateRepo "firstlighthrm/database/repository/candidate"
	clientRepo "firstlighthrm/database/repository/client"
	employeeRepo "firstlighthrm/database/repository/employee"
	interviewRepo "firstlighthrm/database/repository/interview"
	settingsRepo "firstlighthrm/database/repository/settings"
	"firstlighthrm/handlers"
	"firstlighthrm/middleware"
	"firstlighthrm/routes"
	"firstlighthrm/services/candidate"
	"firstlighthrm/services/caregiver"
	"firstlighthrm/services/interview"
	"firstlighthrm/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	appointments := appointmentRepo.NewMongoAppointmentRepo()
	candidates := candidateRepo.NewMongoCandidateRepo()
	interviews := interviewRepo.NewMongoInterviewRepo()
	employees := employeeRepo.NewMongoEmployeeRepo()
	caregivers := caregiverRepo.NewMongoCaregiverRepo()
	clients := clientRepo.NewMongoClientRepo()
	settings := settingsRepo.NewMongoSettingsRepo()

	// services.
	interviewService := &interview.DefaultInterviewService{
		Appointments: appointments,
		Settings:     settings,
		Cache:        utils.GetCacheClient(),
		HorizonWeeks: config.AppConfig.InterviewHorizonWeeks,
		CacheTTL:     time.Duration(config.AppConfig.AvailabilityCacheTTLMin) * time.Minute,
	}
	candidateService := &candidate.DefaultCandidateService{
		Repo:       candidates,
		Interviews: interviews,
		Employees:  employees,
	}
	caregiverService := &caregiver.DefaultCaregiverService{
		Repo:    caregivers,
		Clients: clients,
	}

	// handlers.
	interviewHandler := handlers.NewInterviewHandler(interviewService)
	candidateHandler := handlers.NewCandidateHandler(candidateService)
	caregiverHandler := handlers.NewCaregiverHandler(caregiverService)
	clientHandler := handlers.NewClientHandler(clients)
	settingsHandler := handlers.NewSettingsHandler(settings)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Interview calendar and appointments.
		GetAvailableSlotsHandler: interviewHandler.GetAvailableSlotsHandler,
		BookAppointmentHandler:   interviewHandler.BookAppointmentHandler,
		CancelAppointmentHandler: interviewHandler.CancelAppointmentHandler,
		ListAppointmentsHandler:  interviewHandler.ListAppointmentsHandler,

		// Candidates and the hiring pipeline.
		CreateCandidateHandler:  candidateHandler.CreateCandidateHandler,
		GetCandidateByIDHandler: candidateHandler.GetCandidateByIDHandler,
		GetAllCandidatesHandler: candidateHandler.GetAllCandidatesHandler,
		UpdateCandidateHandler:  candidateHandler.UpdateCandidateHandler,
		DeleteCandidateHandler:  candidateHandler.DeleteCandidateHandler,
		UpsertInterviewHandler:  candidateHandler.UpsertInterviewHandler,
		HireCandidateHandler:    candidateHandler.HireCandidateHandler,
		GetPipelineHandler:      candidateHandler.GetPipelineHandler,

		// Caregivers and schedule proposals.
		RegisterCaregiverHandler: caregiverHandler.RegisterCaregiverHandler,
		GetCaregiverByIDHandler:  caregiverHandler.GetCaregiverByIDHandler,
		GetAllCaregiversHandler:  caregiverHandler.GetAllCaregiversHandler,
		UpdateCaregiverHandler:   caregiverHandler.UpdateCaregiverHandler,
		DeleteCaregiverHandler:   caregiverHandler.DeleteCaregiverHandler,
		SetAvailabilityHandler:   caregiverHandler.SetAvailabilityHandler,
		ProposeScheduleHandler:   caregiverHandler.ProposeScheduleHandler,

		// Care clients.
		CreateClientHandler:  clientHandler.CreateClientHandler,
		GetClientByIDHandler: clientHandler.GetClientByIDHandler,
		GetAllClientsHandler: clientHandler.GetAllClientsHandler,
		UpdateClientHandler:  clientHandler.UpdateClientHandler,
		DeleteClientHandler:  clientHandler.DeleteClientHandler,

		// Agency settings.
		GetInterviewTemplateHandler:    settingsHandler.GetInterviewTemplateHandler,
		UpdateInterviewTemplateHandler: settingsHandler.UpdateInterviewTemplateHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers and health monitoring.
	cron.InitAvailabilityWorker(interviewService)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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
