package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every route handler for registration.
type HandlerBundle struct {
	// Interview calendar and appointments.
	GetAvailableSlotsHandler gin.HandlerFunc
	BookAppointmentHandler   gin.HandlerFunc
	CancelAppointmentHandler gin.HandlerFunc
	ListAppointmentsHandler  gin.HandlerFunc

	// Candidates and the hiring pipeline.
	CreateCandidateHandler  gin.HandlerFunc
	GetCandidateByIDHandler gin.HandlerFunc
	GetAllCandidatesHandler gin.HandlerFunc
	UpdateCandidateHandler  gin.HandlerFunc
	DeleteCandidateHandler  gin.HandlerFunc
	UpsertInterviewHandler  gin.HandlerFunc
	HireCandidateHandler    gin.HandlerFunc
	GetPipelineHandler      gin.HandlerFunc

	// Caregivers and schedule proposals.
	RegisterCaregiverHandler gin.HandlerFunc
	GetCaregiverByIDHandler  gin.HandlerFunc
	GetAllCaregiversHandler  gin.HandlerFunc
	UpdateCaregiverHandler   gin.HandlerFunc
	DeleteCaregiverHandler   gin.HandlerFunc
	SetAvailabilityHandler   gin.HandlerFunc
	ProposeScheduleHandler   gin.HandlerFunc

	// Care clients.
	CreateClientHandler  gin.HandlerFunc
	GetClientByIDHandler gin.HandlerFunc
	GetAllClientsHandler gin.HandlerFunc
	UpdateClientHandler  gin.HandlerFunc
	DeleteClientHandler  gin.HandlerFunc

	// Agency settings.
	GetInterviewTemplateHandler    gin.HandlerFunc
	UpdateInterviewTemplateHandler gin.HandlerFunc
}
