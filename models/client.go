// models/client.go
package models

import "time"

// Client is a care recipient managed by the agency.
type Client struct {
	ID             string    `bson:"id" json:"id"`
	FirstName      string    `bson:"firstName" json:"firstName"`
	LastName       string    `bson:"lastName" json:"lastName"`
	Phone          string    `bson:"phone" json:"phone,omitempty"`
	Address        string    `bson:"address" json:"address,omitempty"`
	CareNotes      string    `bson:"careNotes" json:"careNotes,omitempty"`
	EstimatedHours string    `bson:"estimatedHours" json:"estimatedHours,omitempty"` // free text from intake, e.g. "4 hours per day"
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}
