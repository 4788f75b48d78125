package caregiver

import (
	caregiverRepo "firstlighthrm/database/repository/caregiver"
	clientRepo "firstlighthrm/database/repository/client"
	"firstlighthrm/models"
)

// CaregiverService manages caregiver profiles, their weekly availability
// and schedule proposals for clients.
type CaregiverService interface {
	RegisterCaregiver(caregiver *models.Caregiver) (*models.Caregiver, error)
	GetCaregiverByID(id string) (*models.Caregiver, error)
	GetAllCaregivers() ([]models.Caregiver, error)
	UpdateCaregiver(caregiver *models.Caregiver) (*models.Caregiver, error)
	DeleteCaregiver(id string) error

	// SetAvailability replaces a caregiver's weekly availability grid.
	SetAvailability(id string, grid models.WeeklyAvailabilityGrid) (*models.Caregiver, error)
	// ProposeScheduleForClient drafts a weekly shift schedule for the
	// caregiver against a client's estimated care hours.
	ProposeScheduleForClient(caregiverID, clientID string) (models.ProposedSchedule, error)
	// ProposeSchedule drafts a weekly shift schedule from a raw estimate text.
	ProposeSchedule(caregiverID, estimateText string) (models.ProposedSchedule, error)
}

// DefaultCaregiverService is the production implementation.
type DefaultCaregiverService struct {
	Repo    caregiverRepo.CaregiverRepository
	Clients clientRepo.ClientRepository
}
