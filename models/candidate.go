// models/candidate.go
package models

import "time"

// Candidate is a caregiver applicant's intake profile. The profile itself
// carries no pipeline state; status is derived on every read from the
// interview and employee records keyed by this ID.
type Candidate struct {
	ID        string    `bson:"id" json:"id"`
	FirstName string    `bson:"firstName" json:"firstName"`
	LastName  string    `bson:"lastName" json:"lastName"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone,omitempty"`
	Address   string    `bson:"address" json:"address,omitempty"`
	Source    string    `bson:"source" json:"source,omitempty"` // e.g. "Indeed", "Referral"
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Interview is the single interview record for a candidate. At most one
// exists per candidate ID.
type Interview struct {
	ID                   string     `bson:"id" json:"id"`
	CandidateID          string     `bson:"candidateId" json:"candidateId"`
	PhoneScreenPassed    string     `bson:"phoneScreenPassed" json:"phoneScreenPassed,omitempty"`       // "Yes" / "No"
	FinalInterviewStatus string     `bson:"finalInterviewStatus" json:"finalInterviewStatus,omitempty"` // "Passed" / "Failed" / "Rejected after Orientation"
	OrientationScheduled *time.Time `bson:"orientationScheduled,omitempty" json:"orientationScheduled,omitempty"`
	Notes                string     `bson:"notes" json:"notes,omitempty"`
	CreatedAt            time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// Employee marks a candidate as hired. Presence of this record alone is
// what the pipeline resolver checks.
type Employee struct {
	ID          string    `bson:"id" json:"id"`
	CandidateID string    `bson:"candidateId" json:"candidateId"`
	HireDate    time.Time `bson:"hireDate" json:"hireDate"`
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
