// models/settings.go
package models

import "time"

// AgencySettings is the singleton configuration document for the agency.
// InterviewSlots keys are "<weekday>_slots" (e.g. "monday_slots") and the
// values are comma-separated "HH:MM" start times. A missing or unreadable
// document is masked downstream by a hard-coded default template.
type AgencySettings struct {
	ID             string            `bson:"id" json:"id"`
	InterviewSlots map[string]string `bson:"interviewSlots" json:"interviewSlots"`
	UpdatedAt      time.Time         `bson:"updatedAt" json:"updatedAt"`
}
