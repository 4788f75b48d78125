package appointmentRepo

import (
	"time"

	"firstlighthrm/models"
)

// AppointmentRepository defines methods for interview appointment data access.
type AppointmentRepository interface {
	// GetByID retrieves an appointment by its unique ID.
	GetByID(id string) (*models.Appointment, error)
	// ListUpcoming retrieves all appointments starting at or after from,
	// ordered by start time.
	ListUpcoming(from time.Time) ([]models.Appointment, error)
	// ListByCandidate retrieves a candidate's appointments.
	ListByCandidate(candidateID string) ([]models.Appointment, error)
	// Create inserts a new appointment record.
	Create(appt *models.Appointment) error
	// Delete removes an appointment record by its ID.
	Delete(id string) error
}
