package caregiverRepo

import "firstlighthrm/models"

// CaregiverRepository defines methods for caregiver data access.
type CaregiverRepository interface {
	// GetByID retrieves a caregiver by its unique ID.
	GetByID(id string) (*models.Caregiver, error)
	// GetAll retrieves all caregivers.
	GetAll() ([]models.Caregiver, error)
	// Create inserts a new caregiver record.
	Create(caregiver *models.Caregiver) error
	// Update modifies an existing caregiver record.
	Update(caregiver *models.Caregiver) error
	// Delete removes a caregiver record by its ID.
	Delete(id string) error
	// UpdateAvailability replaces a caregiver's weekly availability grid.
	UpdateAvailability(id string, grid models.WeeklyAvailabilityGrid) error
}
