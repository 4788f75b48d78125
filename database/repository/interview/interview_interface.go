package interviewRepo

import "firstlighthrm/models"

// InterviewRepository defines methods for interview record data access.
// At most one interview record exists per candidate.
type InterviewRepository interface {
	// GetByCandidateID retrieves a candidate's interview record, or
	// (nil, nil) when none exists.
	GetByCandidateID(candidateID string) (*models.Interview, error)
	// Upsert creates or replaces the interview record for its candidate.
	Upsert(interview *models.Interview) error
	// DeleteByCandidateID removes a candidate's interview record.
	DeleteByCandidateID(candidateID string) error
}
