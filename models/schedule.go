// models/schedule.go
package models

// ProposedSchedule maps a lowercase weekday name to a human-readable shift
// string such as "9AM - 1PM". When no schedule could be derived the map
// instead holds a single explanatory message under the "schedule" key;
// consumers must treat that key as a placeholder, not a weekday.
type ProposedSchedule map[string]string
