package candidate

import (
	candidateRepo "firstlighthrm/database/repository/candidate"
	employeeRepo "firstlighthrm/database/repository/employee"
	interviewRepo "firstlighthrm/database/repository/interview"
	"firstlighthrm/models"
	"firstlighthrm/services/scheduling"
)

// PipelineEntry is one row of the hiring pipeline view: a candidate with
// its freshly derived status. Never persisted.
type PipelineEntry struct {
	Candidate  models.Candidate           `json:"candidate"`
	Interview  *models.Interview          `json:"interview,omitempty"`
	Status     scheduling.CandidateStatus `json:"status"`
	Actionable bool                       `json:"actionable"`
}

// CandidateService manages candidate profiles, their interview records and
// the derived hiring pipeline.
type CandidateService interface {
	CreateCandidate(candidate *models.Candidate) (*models.Candidate, error)
	GetCandidateByID(id string) (*models.Candidate, error)
	GetAllCandidates() ([]models.Candidate, error)
	UpdateCandidate(candidate *models.Candidate) (*models.Candidate, error)
	DeleteCandidate(id string) error

	// UpsertInterview creates or replaces a candidate's interview record.
	UpsertInterview(interview *models.Interview) (*models.Interview, error)
	// GetInterview returns a candidate's interview record, nil when absent.
	GetInterview(candidateID string) (*models.Interview, error)
	// HireCandidate records an employment record for a candidate.
	HireCandidate(candidateID string) (*models.Employee, error)

	// GetPipeline joins candidates, interviews and employees into the
	// pipeline view, deriving each status on the fly.
	GetPipeline() ([]PipelineEntry, error)
}

// DefaultCandidateService is the production implementation.
type DefaultCandidateService struct {
	Repo       candidateRepo.CandidateRepository
	Interviews interviewRepo.InterviewRepository
	Employees  employeeRepo.EmployeeRepository
}
