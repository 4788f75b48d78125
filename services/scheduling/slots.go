// File: services/scheduling/slots.go
package scheduling

import (
	"strconv"
	"strings"
	"time"

	"firstlighthrm/models"
)

// TimeOfDay is a clock time with no date attached. Template entries are
// re-anchored onto concrete calendar days before any comparison.
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// WeekdayTemplate maps a weekday to the interview slot start times offered
// on that weekday.
type WeekdayTemplate map[time.Weekday][]TimeOfDay

// DefaultTemplate is the fallback used when the agency settings document
// is missing or unreadable: Sunday through Wednesday, hourly from 11:00 to
// 17:00, nothing Thursday through Saturday.
func DefaultTemplate() WeekdayTemplate {
	var hourly []TimeOfDay
	for h := 11; h <= 17; h++ {
		hourly = append(hourly, TimeOfDay{Hour: h})
	}
	return WeekdayTemplate{
		time.Sunday:    hourly,
		time.Monday:    hourly,
		time.Tuesday:   hourly,
		time.Wednesday: hourly,
	}
}

// StaticTemplate is the fixed in-code variant: morning slots Monday through
// Wednesday, afternoon slots Thursday and Friday, weekends closed.
func StaticTemplate() WeekdayTemplate {
	morning := []TimeOfDay{{Hour: 8, Minute: 30}, {Hour: 9, Minute: 30}, {Hour: 10, Minute: 30}}
	afternoon := []TimeOfDay{{Hour: 13, Minute: 30}, {Hour: 14, Minute: 30}, {Hour: 15, Minute: 30}}
	return WeekdayTemplate{
		time.Monday:    morning,
		time.Tuesday:   morning,
		time.Wednesday: morning,
		time.Thursday:  afternoon,
		time.Friday:    afternoon,
	}
}

var weekdayKeys = map[time.Weekday]string{
	time.Sunday:    "sunday",
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
}

// ParseTemplateDocument builds a template from the agency settings
// document, whose keys are "<weekday>_slots" and whose values are
// comma-separated "HH:MM" start times. Unparseable entries are dropped
// silently; a weekday with no valid entries contributes nothing.
func ParseTemplateDocument(doc map[string]string) WeekdayTemplate {
	template := WeekdayTemplate{}
	for weekday, name := range weekdayKeys {
		raw, ok := doc[name+"_slots"]
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		var times []TimeOfDay
		for _, entry := range strings.Split(raw, ",") {
			if td, ok := parseClock(strings.TrimSpace(entry)); ok {
				times = append(times, td)
			}
		}
		if len(times) > 0 {
			template[weekday] = times
		}
	}
	return template
}

// parseClock parses a 24-hour "HH:MM" string.
func parseClock(s string) (TimeOfDay, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return TimeOfDay{}, false
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return TimeOfDay{}, false
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return TimeOfDay{}, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, false
	}
	return TimeOfDay{Hour: hour, Minute: minute}, true
}

// ComputeAvailableSlots expands the weekday template over a rolling horizon
// of horizonWeeks*7 calendar days starting at now, drops every slot that is
// not strictly in the future or whose instant exactly matches a booked
// appointment's start time, and returns the remaining days in ascending
// order. Days left with no eligible slot produce no entry at all.
func ComputeAvailableSlots(template WeekdayTemplate, booked []models.Appointment, horizonWeeks int, now time.Time) []models.AvailableDay {
	taken := make(map[int64]struct{}, len(booked))
	for _, appt := range booked {
		taken[appt.StartTime.Unix()] = struct{}{}
	}

	var days []models.AvailableDay
	for i := 0; i < horizonWeeks*7; i++ {
		day := now.AddDate(0, 0, i)
		times := template[day.Weekday()]
		if len(times) == 0 {
			continue
		}

		var slots []time.Time
		for _, td := range times {
			// Re-anchor the clock time onto this calendar day with
			// seconds and nanoseconds zeroed, so exact-match booking
			// comparisons behave predictably.
			slot := time.Date(day.Year(), day.Month(), day.Day(), td.Hour, td.Minute, 0, 0, now.Location())
			if !slot.After(now) {
				continue
			}
			if _, ok := taken[slot.Unix()]; ok {
				continue
			}
			slots = append(slots, slot)
		}

		if len(slots) > 0 {
			days = append(days, models.AvailableDay{
				Date:  time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location()),
				Slots: slots,
			})
		}
	}
	return days
}
