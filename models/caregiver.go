// models/caregiver.go
package models

import "time"

// WeeklyAvailabilityGrid maps a lowercase weekday name ("monday".."sunday")
// to the time ranges a caregiver can work that day, each formatted
// "HH:MM - HH:MM". An absent or empty day means unavailable.
type WeeklyAvailabilityGrid map[string][]string

// Caregiver is an employed caregiver's working profile.
type Caregiver struct {
	ID           string                 `bson:"id" json:"id"`
	FirstName    string                 `bson:"firstName" json:"firstName"`
	LastName     string                 `bson:"lastName" json:"lastName"`
	Email        string                 `bson:"email" json:"email"`
	Phone        string                 `bson:"phone" json:"phone,omitempty"`
	Availability WeeklyAvailabilityGrid `bson:"availability" json:"availability,omitempty"`
	CreatedAt    time.Time              `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time              `bson:"updatedAt" json:"updatedAt"`
}
