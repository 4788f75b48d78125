package candidateRepo

import "firstlighthrm/models"

// CandidateRepository defines methods for candidate profile data access.
type CandidateRepository interface {
	// GetByID retrieves a candidate by its unique ID.
	GetByID(id string) (*models.Candidate, error)
	// GetAll retrieves all candidates.
	GetAll() ([]models.Candidate, error)
	// Create inserts a new candidate record.
	Create(candidate *models.Candidate) error
	// Update modifies an existing candidate record.
	Update(candidate *models.Candidate) error
	// Delete removes a candidate record by its ID.
	Delete(id string) error
}
