// File: services/scheduling/proposal.go
package scheduling

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"firstlighthrm/models"
)

// MessageKey is the sentinel key under which a non-schedule explanatory
// message is returned instead of weekday entries.
const MessageKey = "schedule"

const (
	msgIndeterminateHours = "Could not determine required hours from input."
	msgNoAvailability     = "Caregiver has no availability defined."
)

// defaultChunkHours is the shift length used per day when breaking a
// weekly hours total into daily shifts.
const defaultChunkHours = 4

var (
	perDayPattern  = regexp.MustCompile(`(?i)(\d+)\s*hours?\s*per\s*day`)
	perWeekPattern = regexp.MustCompile(`(?i)(\d+)\s*hours?(\s*(per\s*week|weekly))?`)
)

// allocation order is fixed Monday through Sunday regardless of map order.
var weekdayOrder = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// hoursEstimate is the parsed form of the intake coordinator's free-text
// hours statement: either a fixed daily amount or a weekly total.
type hoursEstimate struct {
	perDay      bool
	hoursPerDay int
	weeklyHours int
}

// parseHoursEstimate interprets free text in strict precedence order:
// "<N> hours per day", then "<N> hours [per week|weekly]", then a bare
// integer (treated as weekly hours). Anything else is indeterminate.
func parseHoursEstimate(text string) (hoursEstimate, bool) {
	if m := perDayPattern.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		return hoursEstimate{perDay: true, hoursPerDay: n}, true
	}
	if m := perWeekPattern.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		return hoursEstimate{weeklyHours: n}, true
	}
	if n, err := strconv.Atoi(strings.TrimSpace(text)); err == nil {
		return hoursEstimate{weeklyHours: n}, true
	}
	return hoursEstimate{}, false
}

// ProposeSchedule turns a free-text hours estimate and a caregiver's weekly
// availability grid into a first-draft, single-shift-per-day schedule. It
// greedily consumes availability Monday through Sunday and never fails:
// unusable input degrades to a message under MessageKey.
func ProposeSchedule(estimateText string, availability models.WeeklyAvailabilityGrid) models.ProposedSchedule {
	estimate, ok := parseHoursEstimate(estimateText)
	if !ok {
		return models.ProposedSchedule{MessageKey: msgIndeterminateHours}
	}

	if !hasAnyAvailability(availability) {
		return models.ProposedSchedule{MessageKey: msgNoAvailability}
	}

	proposal := models.ProposedSchedule{}
	remaining := estimate.weeklyHours
	for _, day := range weekdayOrder {
		ranges := availability[day]
		if len(ranges) == 0 {
			continue
		}

		// Only the first listed range is considered: proposals are
		// single-shift-per-day. A malformed range skips the day.
		startHour, ok := parseRangeStartHour(ranges[0])
		if !ok {
			continue
		}

		hours := 0
		if estimate.perDay {
			hours = estimate.hoursPerDay
		} else if remaining > 0 {
			hours = remaining
			if hours > defaultChunkHours {
				hours = defaultChunkHours
			}
			remaining -= hours
		}

		if hours > 0 {
			proposal[day] = fmt.Sprintf("%s - %s", formatHour12(startHour), formatHour12(startHour+hours))
		}
	}
	return proposal
}

func hasAnyAvailability(grid models.WeeklyAvailabilityGrid) bool {
	for _, ranges := range grid {
		if len(ranges) > 0 {
			return true
		}
	}
	return false
}

// parseRangeStartHour extracts the start hour from a "HH:MM - HH:MM"
// range. Minutes are parsed but not carried into the proposal, which is
// hour-granular.
func parseRangeStartHour(r string) (int, bool) {
	parts := strings.Split(r, " - ")
	if len(parts) != 2 {
		return 0, false
	}
	start, ok := parseClock(strings.TrimSpace(parts[0]))
	if !ok {
		return 0, false
	}
	return start.Hour, true
}

// formatHour12 renders an hour on the 12-hour clock: 0 displays as 12AM,
// hours past 12 subtract 12.
func formatHour12(hour int) string {
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	display := hour
	if hour > 12 {
		display = hour - 12
	}
	if hour == 0 {
		display = 12
	}
	return fmt.Sprintf("%d%s", display, suffix)
}
