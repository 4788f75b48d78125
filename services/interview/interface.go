package interview

import (
	"time"

	appointmentRepo "firstlighthrm/database/repository/appointment"
	settingsRepo "firstlighthrm/database/repository/settings"
	"firstlighthrm/models"

	"github.com/go-redis/redis/v8"
)

// InterviewService exposes the interview calendar and appointment booking.
type InterviewService interface {
	// GetAvailableSlots returns the bookable interview calendar over the
	// configured horizon, evaluated at now.
	GetAvailableSlots(now time.Time) ([]models.AvailableDay, error)
	// RefreshAvailability recomputes the calendar and rewrites the cache.
	RefreshAvailability(now time.Time) ([]models.AvailableDay, error)
	// BookAppointment claims a slot for a candidate.
	BookAppointment(req models.BookAppointmentRequest) (*models.Appointment, error)
	// CancelAppointment releases a booked slot.
	CancelAppointment(id string) error
	// ListAppointments returns appointments starting at or after from.
	ListAppointments(from time.Time) ([]models.Appointment, error)
}

// DefaultInterviewService is the production implementation.
type DefaultInterviewService struct {
	Appointments appointmentRepo.AppointmentRepository
	Settings     settingsRepo.SettingsRepository
	Cache        *redis.Client
	HorizonWeeks int
	CacheTTL     time.Duration
}
