package interview

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firstlighthrm/models"
)

type fakeAppointmentRepo struct {
	appointments []models.Appointment
}

func (f *fakeAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			return &f.appointments[i], nil
		}
	}
	return nil, fmt.Errorf("appointment with id %s not found", id)
}

func (f *fakeAppointmentRepo) ListUpcoming(from time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if !a.StartTime.Before(from) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) ListByCandidate(candidateID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.CandidateID == candidateID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) Create(appt *models.Appointment) error {
	appt.ID = fmt.Sprintf("appt-%d", len(f.appointments)+1)
	f.appointments = append(f.appointments, *appt)
	return nil
}

func (f *fakeAppointmentRepo) Delete(id string) error {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			f.appointments = append(f.appointments[:i], f.appointments[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("appointment with id %s not found", id)
}

type fakeSettingsRepo struct {
	doc map[string]string
	err error
}

func (f *fakeSettingsRepo) GetInterviewTemplate() (map[string]string, error) {
	return f.doc, f.err
}

func (f *fakeSettingsRepo) UpdateInterviewTemplate(doc map[string]string) (*models.AgencySettings, error) {
	f.doc = doc
	return &models.AgencySettings{InterviewSlots: doc}, nil
}

// Monday.
var testNow = time.Date(2026, time.March, 2, 7, 0, 0, 0, time.UTC)

func newTestService(settings *fakeSettingsRepo) (*DefaultInterviewService, *fakeAppointmentRepo) {
	appts := &fakeAppointmentRepo{}
	return &DefaultInterviewService{
		Appointments: appts,
		Settings:     settings,
		HorizonWeeks: 2,
	}, appts
}

func TestRefreshAvailability_UsesConfiguredTemplate(t *testing.T) {
	svc, _ := newTestService(&fakeSettingsRepo{doc: map[string]string{
		"monday_slots": "09:00,10:00",
	}})

	days, err := svc.RefreshAvailability(testNow)
	require.NoError(t, err)
	require.Len(t, days, 2) // two Mondays in a two-week horizon

	for _, day := range days {
		assert.Equal(t, time.Monday, day.Date.Weekday())
		require.Len(t, day.Slots, 2)
		assert.Equal(t, 9, day.Slots[0].Hour())
		assert.Equal(t, 10, day.Slots[1].Hour())
	}
}

func TestRefreshAvailability_FallsBackToDefaultTemplate(t *testing.T) {
	broken, _ := newTestService(&fakeSettingsRepo{err: fmt.Errorf("settings unavailable")})
	empty, _ := newTestService(&fakeSettingsRepo{doc: map[string]string{}})

	for name, svc := range map[string]*DefaultInterviewService{"fetch error": broken, "empty doc": empty} {
		days, err := svc.RefreshAvailability(testNow)
		require.NoError(t, err, name)
		assert.NotEmpty(t, days, name)
	}
}

func TestBookAppointment_RemovesSlotFromCalendar(t *testing.T) {
	svc, appts := newTestService(&fakeSettingsRepo{doc: map[string]string{
		"monday_slots": "09:00",
	}})

	days, err := svc.GetAvailableSlots(testNow)
	require.NoError(t, err)
	require.Len(t, days, 2)

	booked, err := svc.BookAppointment(models.BookAppointmentRequest{
		CandidateID: "c1",
		StartTime:   days[0].Slots[0],
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", booked.CandidateID)
	assert.Equal(t, booked.StartTime.Add(time.Hour), booked.EndTime)

	days, err = svc.GetAvailableSlots(testNow)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.NotEqual(t, booked.StartTime, days[0].Slots[0])

	require.NoError(t, svc.CancelAppointment(booked.ID))
	days, err = svc.GetAvailableSlots(testNow)
	require.NoError(t, err)
	assert.Len(t, days, 2)

	assert.Empty(t, appts.appointments)
}

func TestBookAppointment_RejectsInvertedRange(t *testing.T) {
	svc, _ := newTestService(&fakeSettingsRepo{})

	_, err := svc.BookAppointment(models.BookAppointmentRequest{
		CandidateID: "c1",
		StartTime:   testNow,
		EndTime:     testNow.Add(-time.Hour),
	})
	assert.Error(t, err)
}
