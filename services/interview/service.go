package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"firstlighthrm/models"
	"firstlighthrm/services/scheduling"
	"firstlighthrm/utils"

	"go.uber.org/zap"
)

// availabilityCacheKey stores the most recently computed calendar.
const availabilityCacheKey = "interview:availability"

// GetAvailableSlots returns the bookable interview calendar, serving the
// cached copy when one is fresh.
func (s *DefaultInterviewService) GetAvailableSlots(now time.Time) ([]models.AvailableDay, error) {
	if days, ok := s.cachedAvailability(); ok {
		return days, nil
	}
	return s.RefreshAvailability(now)
}

// RefreshAvailability recomputes the calendar from the settings template
// and the booked appointments, then rewrites the cache.
func (s *DefaultInterviewService) RefreshAvailability(now time.Time) ([]models.AvailableDay, error) {
	logger := utils.GetLogger()

	template := s.loadTemplate()

	booked, err := s.Appointments.ListUpcoming(now)
	if err != nil {
		return nil, fmt.Errorf("failed to load booked appointments: %w", err)
	}

	days := scheduling.ComputeAvailableSlots(template, booked, s.HorizonWeeks, now)
	s.storeAvailability(days)

	logger.Debug("Interview availability refreshed",
		zap.Int("days", len(days)),
		zap.Int("bookedAppointments", len(booked)),
	)
	return days, nil
}

// loadTemplate reads the interview slot template from the agency settings
// document. A fetch failure or an empty template is masked by the
// hard-coded default: template availability is never an error.
func (s *DefaultInterviewService) loadTemplate() scheduling.WeekdayTemplate {
	logger := utils.GetLogger()

	doc, err := s.Settings.GetInterviewTemplate()
	if err != nil {
		logger.Warn("Failed to load interview slot settings, using default template", zap.Error(err))
		return scheduling.DefaultTemplate()
	}

	template := scheduling.ParseTemplateDocument(doc)
	if len(template) == 0 {
		logger.Warn("Interview slot settings contained no usable entries, using default template")
		return scheduling.DefaultTemplate()
	}
	return template
}

// BookAppointment claims an interview slot for a candidate. The start
// time is truncated to the minute so it compares exactly against
// generated slots.
func (s *DefaultInterviewService) BookAppointment(req models.BookAppointmentRequest) (*models.Appointment, error) {
	start := req.StartTime.Truncate(time.Minute)
	end := req.EndTime
	if end.IsZero() {
		end = start.Add(time.Hour)
	}
	if !end.After(start) {
		return nil, fmt.Errorf("appointment end %s must be after start %s", end, start)
	}

	appt := &models.Appointment{
		CandidateID: req.CandidateID,
		StartTime:   start,
		EndTime:     end,
	}
	if err := s.Appointments.Create(appt); err != nil {
		return nil, fmt.Errorf("failed to book appointment: %w", err)
	}

	s.invalidateAvailability()
	return appt, nil
}

// CancelAppointment releases a booked slot.
func (s *DefaultInterviewService) CancelAppointment(id string) error {
	if err := s.Appointments.Delete(id); err != nil {
		return fmt.Errorf("failed to cancel appointment: %w", err)
	}
	s.invalidateAvailability()
	return nil
}

// ListAppointments returns appointments starting at or after from.
func (s *DefaultInterviewService) ListAppointments(from time.Time) ([]models.Appointment, error) {
	return s.Appointments.ListUpcoming(from)
}

// --- availability cache helpers ---

func (s *DefaultInterviewService) cachedAvailability() ([]models.AvailableDay, bool) {
	if s.Cache == nil {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	raw, err := s.Cache.Get(ctx, availabilityCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var days []models.AvailableDay
	if err := json.Unmarshal(raw, &days); err != nil {
		return nil, false
	}
	return days, true
}

func (s *DefaultInterviewService) storeAvailability(days []models.AvailableDay) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(days)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Set(ctx, availabilityCacheKey, raw, s.CacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("Failed to cache interview availability", zap.Error(err))
	}
}

func (s *DefaultInterviewService) invalidateAvailability() {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Del(ctx, availabilityCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("Failed to invalidate interview availability cache", zap.Error(err))
	}
}
