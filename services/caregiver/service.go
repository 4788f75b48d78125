package caregiver

import (
	"fmt"

	"firstlighthrm/models"
	"firstlighthrm/services/scheduling"
	"firstlighthrm/utils"

	"go.uber.org/zap"
)

// RegisterCaregiver creates a new caregiver profile.
func (s *DefaultCaregiverService) RegisterCaregiver(caregiver *models.Caregiver) (*models.Caregiver, error) {
	if caregiver.Email == "" {
		return nil, fmt.Errorf("caregiver email is required")
	}
	if err := s.Repo.Create(caregiver); err != nil {
		return nil, fmt.Errorf("failed to register caregiver: %w", err)
	}
	return caregiver, nil
}

// GetCaregiverByID retrieves a caregiver profile.
func (s *DefaultCaregiverService) GetCaregiverByID(id string) (*models.Caregiver, error) {
	return s.Repo.GetByID(id)
}

// GetAllCaregivers retrieves all caregiver profiles.
func (s *DefaultCaregiverService) GetAllCaregivers() ([]models.Caregiver, error) {
	return s.Repo.GetAll()
}

// UpdateCaregiver modifies a caregiver profile.
func (s *DefaultCaregiverService) UpdateCaregiver(caregiver *models.Caregiver) (*models.Caregiver, error) {
	if err := s.Repo.Update(caregiver); err != nil {
		return nil, fmt.Errorf("failed to update caregiver: %w", err)
	}
	return s.Repo.GetByID(caregiver.ID)
}

// DeleteCaregiver removes a caregiver profile.
func (s *DefaultCaregiverService) DeleteCaregiver(id string) error {
	return s.Repo.Delete(id)
}

// SetAvailability replaces a caregiver's weekly availability grid.
func (s *DefaultCaregiverService) SetAvailability(id string, grid models.WeeklyAvailabilityGrid) (*models.Caregiver, error) {
	if err := s.Repo.UpdateAvailability(id, grid); err != nil {
		return nil, fmt.Errorf("failed to set availability: %w", err)
	}
	return s.Repo.GetByID(id)
}

// ProposeScheduleForClient drafts a weekly shift schedule for the caregiver
// against the client's free-text estimated care hours.
func (s *DefaultCaregiverService) ProposeScheduleForClient(caregiverID, clientID string) (models.ProposedSchedule, error) {
	client, err := s.Clients.GetByID(clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load client %s: %w", clientID, err)
	}
	return s.ProposeSchedule(caregiverID, client.EstimatedHours)
}

// ProposeSchedule drafts a weekly shift schedule from a raw estimate text.
// The proposal generator itself never fails; unusable input comes back as
// an explanatory message the UI shows in place of a schedule.
func (s *DefaultCaregiverService) ProposeSchedule(caregiverID, estimateText string) (models.ProposedSchedule, error) {
	cg, err := s.Repo.GetByID(caregiverID)
	if err != nil {
		return nil, fmt.Errorf("failed to load caregiver %s: %w", caregiverID, err)
	}

	proposal := scheduling.ProposeSchedule(estimateText, cg.Availability)
	if msg, ok := proposal[scheduling.MessageKey]; ok {
		utils.GetLogger().Debug("Schedule proposal degraded to placeholder",
			zap.String("caregiverId", caregiverID),
			zap.String("message", msg),
		)
	}
	return proposal, nil
}
