// models/appointment.go
package models

import "time"

// Appointment is a booked interview appointment. StartTime is the exact
// instant a calendar slot was claimed; the availability calculator treats
// a slot as taken only on an exact StartTime match.
type Appointment struct {
	ID          string    `bson:"id" json:"id"`
	CandidateID string    `bson:"candidateId" json:"candidateId"`
	StartTime   time.Time `bson:"startTime" json:"startTime"`
	EndTime     time.Time `bson:"endTime" json:"endTime"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BookAppointmentRequest is the payload for claiming an interview slot.
type BookAppointmentRequest struct {
	CandidateID string    `json:"candidateId" binding:"required"`
	StartTime   time.Time `json:"startTime" binding:"required"`
	EndTime     time.Time `json:"endTime"`
}

// AvailableDay is one calendar day that still has bookable interview
// slots. Days without any eligible slot produce no entry at all.
type AvailableDay struct {
	Date  time.Time   `json:"date"`
	Slots []time.Time `json:"slots"`
}
