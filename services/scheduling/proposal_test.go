package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firstlighthrm/models"
)

func TestProposeSchedule_HoursPerDay(t *testing.T) {
	grid := models.WeeklyAvailabilityGrid{
		"monday": {"08:00 - 16:00"},
	}

	proposal := ProposeSchedule("6 hours per day", grid)

	assert.Equal(t, models.ProposedSchedule{"monday": "8AM - 2PM"}, proposal)
}

func TestProposeSchedule_HoursPerDayAppliesEveryAvailableDay(t *testing.T) {
	grid := models.WeeklyAvailabilityGrid{
		"monday":   {"09:00 - 17:00"},
		"thursday": {"10:00 - 18:00"},
		"sunday":   {"12:00 - 20:00"},
	}

	proposal := ProposeSchedule("3 Hours Per Day", grid)

	assert.Equal(t, models.ProposedSchedule{
		"monday":   "9AM - 12PM",
		"thursday": "10AM - 1PM",
		"sunday":   "12PM - 3PM",
	}, proposal)
}

func TestProposeSchedule_BareIntegerIsWeekly(t *testing.T) {
	grid := models.WeeklyAvailabilityGrid{
		"monday":    {"09:00 - 17:00"},
		"wednesday": {"09:00 - 17:00"},
		"friday":    {"09:00 - 17:00"},
	}

	proposal := ProposeSchedule("20", grid)

	// Greedy 4-hour chunks Monday through Sunday: three available days
	// each take 4 hours, the remaining 8 stay unallocated.
	assert.Equal(t, models.ProposedSchedule{
		"monday":    "9AM - 1PM",
		"wednesday": "9AM - 1PM",
		"friday":    "9AM - 1PM",
	}, proposal)
}

func TestProposeSchedule_WeeklyHoursExhaust(t *testing.T) {
	grid := models.WeeklyAvailabilityGrid{
		"monday":  {"08:00 - 12:00"},
		"tuesday": {"08:00 - 12:00"},
	}

	proposal := ProposeSchedule("6 hours per week", grid)

	// 4 hours Monday, the remaining 2 Tuesday.
	assert.Equal(t, models.ProposedSchedule{
		"monday":  "8AM - 12PM",
		"tuesday": "8AM - 10AM",
	}, proposal)
}

func TestProposeSchedule_FirstRangeOnly(t *testing.T) {
	grid := models.WeeklyAvailabilityGrid{
		"monday": {"14:00 - 18:00", "08:00 - 12:00"},
	}

	proposal := ProposeSchedule("4 hours weekly", grid)

	assert.Equal(t, models.ProposedSchedule{"monday": "2PM - 6PM"}, proposal)
}

func TestProposeSchedule_MalformedRangeSkipsDayOnly(t *testing.T) {
	grid := models.WeeklyAvailabilityGrid{
		"monday":  {"whenever works"},
		"tuesday": {"09:00 - 13:00"},
	}

	proposal := ProposeSchedule("8 hours per week", grid)

	require.NotContains(t, proposal, "monday")
	assert.Equal(t, "9AM - 1PM", proposal["tuesday"])
}

func TestProposeSchedule_IndeterminateHours(t *testing.T) {
	grid := models.WeeklyAvailabilityGrid{"monday": {"08:00 - 16:00"}}

	proposal := ProposeSchedule("bogus", grid)

	assert.Equal(t, models.ProposedSchedule{
		MessageKey: "Could not determine required hours from input.",
	}, proposal)
}

func TestProposeSchedule_NoAvailability(t *testing.T) {
	proposal := ProposeSchedule("10 hours per week", models.WeeklyAvailabilityGrid{})
	assert.Equal(t, models.ProposedSchedule{
		MessageKey: "Caregiver has no availability defined.",
	}, proposal)

	allEmpty := models.WeeklyAvailabilityGrid{"monday": {}, "friday": nil}
	proposal = ProposeSchedule("10 hours per week", allEmpty)
	assert.Equal(t, models.ProposedSchedule{
		MessageKey: "Caregiver has no availability defined.",
	}, proposal)
}

func TestParseHoursEstimate_Precedence(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   hoursEstimate
		wantOK bool
	}{
		{"per day", "4 hours per day", hoursEstimate{perDay: true, hoursPerDay: 4}, true},
		{"per day outranks per week wording", "4 hours per day, 28 per week total", hoursEstimate{perDay: true, hoursPerDay: 4}, true},
		{"per week", "20 hours per week", hoursEstimate{weeklyHours: 20}, true},
		{"weekly", "12 hours weekly", hoursEstimate{weeklyHours: 12}, true},
		{"unlabeled hours default to weekly", "15 hours", hoursEstimate{weeklyHours: 15}, true},
		{"singular hour", "1 hour per day", hoursEstimate{perDay: true, hoursPerDay: 1}, true},
		{"bare integer", "20", hoursEstimate{weeklyHours: 20}, true},
		{"bare integer padded", "  8  ", hoursEstimate{weeklyHours: 8}, true},
		{"indeterminate", "as needed", hoursEstimate{}, false},
		{"empty", "", hoursEstimate{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseHoursEstimate(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatHour12(t *testing.T) {
	assert.Equal(t, "12AM", formatHour12(0))
	assert.Equal(t, "8AM", formatHour12(8))
	assert.Equal(t, "12PM", formatHour12(12))
	assert.Equal(t, "2PM", formatHour12(14))
	assert.Equal(t, "11PM", formatHour12(23))
}
