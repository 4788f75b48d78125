package employeeRepo

import "firstlighthrm/models"

// EmployeeRepository defines methods for employment record data access.
type EmployeeRepository interface {
	// GetByCandidateID retrieves the employment record for a candidate,
	// or (nil, nil) when none exists.
	GetByCandidateID(candidateID string) (*models.Employee, error)
	// ExistsByCandidateID reports whether a candidate has been hired.
	ExistsByCandidateID(candidateID string) (bool, error)
	// Create inserts a new employment record.
	Create(employee *models.Employee) error
	// Delete removes an employment record by its ID.
	Delete(id string) error
}
