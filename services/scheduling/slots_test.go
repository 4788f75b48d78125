package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firstlighthrm/models"
)

// fixedNow is a Monday at 10:00 UTC.
var fixedNow = time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

func TestDefaultTemplate(t *testing.T) {
	template := DefaultTemplate()

	for _, wd := range []time.Weekday{time.Sunday, time.Monday, time.Tuesday, time.Wednesday} {
		require.Len(t, template[wd], 7, "weekday %s", wd)
		assert.Equal(t, TimeOfDay{Hour: 11}, template[wd][0])
		assert.Equal(t, TimeOfDay{Hour: 17}, template[wd][6])
	}
	for _, wd := range []time.Weekday{time.Thursday, time.Friday, time.Saturday} {
		assert.Empty(t, template[wd], "weekday %s", wd)
	}
}

func TestStaticTemplate(t *testing.T) {
	template := StaticTemplate()

	assert.Equal(t, []TimeOfDay{{8, 30}, {9, 30}, {10, 30}}, template[time.Monday])
	assert.Equal(t, []TimeOfDay{{8, 30}, {9, 30}, {10, 30}}, template[time.Wednesday])
	assert.Equal(t, []TimeOfDay{{13, 30}, {14, 30}, {15, 30}}, template[time.Thursday])
	assert.Equal(t, []TimeOfDay{{13, 30}, {14, 30}, {15, 30}}, template[time.Friday])
	assert.Empty(t, template[time.Saturday])
	assert.Empty(t, template[time.Sunday])
}

func TestParseTemplateDocument(t *testing.T) {
	doc := map[string]string{
		"monday_slots":  "09:00,10:00, 11:30",
		"tuesday_slots": "bogus,25:00,09:61,14:00",
		"friday_slots":  "",
	}

	template := ParseTemplateDocument(doc)

	assert.Equal(t, []TimeOfDay{{9, 0}, {10, 0}, {11, 30}}, template[time.Monday])
	// Unparseable entries are dropped silently; the valid one survives.
	assert.Equal(t, []TimeOfDay{{14, 0}}, template[time.Tuesday])
	assert.NotContains(t, template, time.Friday)
	assert.NotContains(t, template, time.Sunday)
}

func TestComputeAvailableSlots_ExcludesPastAndBooked(t *testing.T) {
	template := WeekdayTemplate{
		time.Monday: {{Hour: 9}, {Hour: 11}, {Hour: 14}},
	}
	// 11:00 on the current Monday is booked; 09:00 is already past.
	booked := []models.Appointment{
		{StartTime: time.Date(2026, time.March, 2, 11, 0, 0, 0, time.UTC)},
	}

	days := ComputeAvailableSlots(template, booked, 1, fixedNow)

	require.Len(t, days, 1)
	assert.Equal(t, time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC), days[0].Date)
	require.Len(t, days[0].Slots, 1)
	assert.Equal(t, time.Date(2026, time.March, 2, 14, 0, 0, 0, time.UTC), days[0].Slots[0])
}

func TestComputeAvailableSlots_NeverReturnsPastOrBooked(t *testing.T) {
	template := StaticTemplate()
	booked := []models.Appointment{
		{StartTime: time.Date(2026, time.March, 3, 8, 30, 0, 0, time.UTC)},
		{StartTime: time.Date(2026, time.March, 5, 13, 30, 0, 0, time.UTC)},
	}

	days := ComputeAvailableSlots(template, booked, 4, fixedNow)

	bookedSet := map[int64]struct{}{}
	for _, b := range booked {
		bookedSet[b.StartTime.Unix()] = struct{}{}
	}
	for _, day := range days {
		require.NotEmpty(t, day.Slots)
		for _, slot := range day.Slots {
			assert.True(t, slot.After(fixedNow), "slot %s not strictly future", slot)
			_, taken := bookedSet[slot.Unix()]
			assert.False(t, taken, "slot %s is booked", slot)
		}
	}
}

func TestComputeAvailableSlots_DayBounds(t *testing.T) {
	template := StaticTemplate() // five weekdays populated
	for _, weeks := range []int{0, 1, 2, 3} {
		days := ComputeAvailableSlots(template, nil, weeks, fixedNow)
		assert.LessOrEqual(t, len(days), weeks*7)
		assert.LessOrEqual(t, len(days), weeks*5)
	}
}

func TestComputeAvailableSlots_SkipsEmptyDaysEntirely(t *testing.T) {
	template := WeekdayTemplate{time.Wednesday: {{Hour: 10}}}

	days := ComputeAvailableSlots(template, nil, 2, fixedNow)

	require.Len(t, days, 2)
	for _, day := range days {
		assert.Equal(t, time.Wednesday, day.Date.Weekday())
	}
}

func TestComputeAvailableSlots_EmptyTemplate(t *testing.T) {
	assert.Empty(t, ComputeAvailableSlots(WeekdayTemplate{}, nil, 3, fixedNow))
	assert.Empty(t, ComputeAvailableSlots(nil, nil, 3, fixedNow))
}

func TestComputeAvailableSlots_Idempotent(t *testing.T) {
	template := DefaultTemplate()
	booked := []models.Appointment{
		{StartTime: time.Date(2026, time.March, 3, 11, 0, 0, 0, time.UTC)},
	}

	first := ComputeAvailableSlots(template, booked, 3, fixedNow)
	second := ComputeAvailableSlots(template, booked, 3, fixedNow)

	assert.Equal(t, first, second)
}

func TestComputeAvailableSlots_PreservesTemplateOrder(t *testing.T) {
	template := WeekdayTemplate{
		time.Tuesday: {{Hour: 15}, {Hour: 9}, {Hour: 12}},
	}

	days := ComputeAvailableSlots(template, nil, 1, fixedNow)

	require.Len(t, days, 1)
	require.Len(t, days[0].Slots, 3)
	assert.Equal(t, 15, days[0].Slots[0].Hour())
	assert.Equal(t, 9, days[0].Slots[1].Hour())
	assert.Equal(t, 12, days[0].Slots[2].Hour())
}
