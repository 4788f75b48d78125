package candidate

import (
	"fmt"
	"time"

	"firstlighthrm/models"
	"firstlighthrm/services/scheduling"
	"firstlighthrm/utils"

	"go.uber.org/zap"
)

// CreateCandidate creates a new candidate profile.
func (s *DefaultCandidateService) CreateCandidate(candidate *models.Candidate) (*models.Candidate, error) {
	if candidate.FirstName == "" && candidate.LastName == "" {
		return nil, fmt.Errorf("candidate name is required")
	}
	if err := s.Repo.Create(candidate); err != nil {
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}
	return candidate, nil
}

// GetCandidateByID retrieves a candidate profile.
func (s *DefaultCandidateService) GetCandidateByID(id string) (*models.Candidate, error) {
	return s.Repo.GetByID(id)
}

// GetAllCandidates retrieves all candidate profiles.
func (s *DefaultCandidateService) GetAllCandidates() ([]models.Candidate, error) {
	return s.Repo.GetAll()
}

// UpdateCandidate modifies a candidate profile.
func (s *DefaultCandidateService) UpdateCandidate(candidate *models.Candidate) (*models.Candidate, error) {
	if err := s.Repo.Update(candidate); err != nil {
		return nil, fmt.Errorf("failed to update candidate: %w", err)
	}
	return s.Repo.GetByID(candidate.ID)
}

// DeleteCandidate removes a candidate profile along with its interview record.
func (s *DefaultCandidateService) DeleteCandidate(id string) error {
	// Interview record is optional; removing a candidate that never had
	// one should still succeed.
	if iv, err := s.Interviews.GetByCandidateID(id); err == nil && iv != nil {
		if err := s.Interviews.DeleteByCandidateID(id); err != nil {
			return fmt.Errorf("failed to delete interview for candidate %s: %w", id, err)
		}
	}
	return s.Repo.Delete(id)
}

// UpsertInterview creates or replaces a candidate's interview record.
func (s *DefaultCandidateService) UpsertInterview(interview *models.Interview) (*models.Interview, error) {
	if interview.CandidateID == "" {
		return nil, fmt.Errorf("interview candidateId is required")
	}
	if _, err := s.Repo.GetByID(interview.CandidateID); err != nil {
		return nil, fmt.Errorf("candidate %s not found: %w", interview.CandidateID, err)
	}
	if err := s.Interviews.Upsert(interview); err != nil {
		return nil, fmt.Errorf("failed to save interview: %w", err)
	}
	return interview, nil
}

// GetInterview returns a candidate's interview record, nil when absent.
func (s *DefaultCandidateService) GetInterview(candidateID string) (*models.Interview, error) {
	return s.Interviews.GetByCandidateID(candidateID)
}

// HireCandidate records an employment record for a candidate, which moves
// the derived pipeline status to Hired on the next read.
func (s *DefaultCandidateService) HireCandidate(candidateID string) (*models.Employee, error) {
	if _, err := s.Repo.GetByID(candidateID); err != nil {
		return nil, fmt.Errorf("candidate %s not found: %w", candidateID, err)
	}
	hired, err := s.Employees.ExistsByCandidateID(candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to check employment for candidate %s: %w", candidateID, err)
	}
	if hired {
		return nil, fmt.Errorf("candidate %s is already hired", candidateID)
	}

	employee := &models.Employee{
		CandidateID: candidateID,
		HireDate:    time.Now(),
		Active:      true,
	}
	if err := s.Employees.Create(employee); err != nil {
		return nil, fmt.Errorf("failed to hire candidate %s: %w", candidateID, err)
	}
	return employee, nil
}

// GetPipeline joins candidates, interviews and employees into the pipeline
// view. Statuses are rederived from the raw records on every call rather
// than stored, so concurrent reads over the same snapshot always agree.
func (s *DefaultCandidateService) GetPipeline() ([]PipelineEntry, error) {
	logger := utils.GetLogger()

	candidates, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}

	entries := make([]PipelineEntry, 0, len(candidates))
	for _, cand := range candidates {
		iv, err := s.Interviews.GetByCandidateID(cand.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load interview for candidate %s: %w", cand.ID, err)
		}
		hired, err := s.Employees.ExistsByCandidateID(cand.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check employment for candidate %s: %w", cand.ID, err)
		}

		status := scheduling.ResolveStatus(iv, hired)
		entries = append(entries, PipelineEntry{
			Candidate:  cand,
			Interview:  iv,
			Status:     status,
			Actionable: scheduling.IsActionable(status),
		})
	}

	logger.Debug("Pipeline assembled", zap.Int("candidates", len(entries)))
	return entries, nil
}
