package candidate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firstlighthrm/models"
	"firstlighthrm/services/scheduling"
)

type fakeCandidateRepo struct {
	candidates []models.Candidate
}

func (f *fakeCandidateRepo) GetByID(id string) (*models.Candidate, error) {
	for i := range f.candidates {
		if f.candidates[i].ID == id {
			return &f.candidates[i], nil
		}
	}
	return nil, fmt.Errorf("candidate with id %s not found", id)
}
func (f *fakeCandidateRepo) GetAll() ([]models.Candidate, error) { return f.candidates, nil }

func (f *fakeCandidateRepo) Create(c *models.Candidate) error {
	f.candidates = append(f.candidates, *c)
	return nil
}

func (f *fakeCandidateRepo) Update(c *models.Candidate) error { return nil }
func (f *fakeCandidateRepo) Delete(id string) error           { return nil }

type fakeInterviewRepo struct {
	byCandidate map[string]*models.Interview
}

func (f *fakeInterviewRepo) GetByCandidateID(id string) (*models.Interview, error) {
	return f.byCandidate[id], nil
}
func (f *fakeInterviewRepo) Upsert(iv *models.Interview) error {
	f.byCandidate[iv.CandidateID] = iv
	return nil
}
func (f *fakeInterviewRepo) DeleteByCandidateID(id string) error {
	delete(f.byCandidate, id)
	return nil
}

type fakeEmployeeRepo struct {
	hired map[string]bool
}

func (f *fakeEmployeeRepo) GetByCandidateID(id string) (*models.Employee, error) {
	if f.hired[id] {
		return &models.Employee{CandidateID: id}, nil
	}
	return nil, nil
}
func (f *fakeEmployeeRepo) ExistsByCandidateID(id string) (bool, error) { return f.hired[id], nil }
func (f *fakeEmployeeRepo) Create(e *models.Employee) error {
	f.hired[e.CandidateID] = true
	return nil
}
func (f *fakeEmployeeRepo) Delete(id string) error { return nil }

func newPipelineFixture() *DefaultCandidateService {
	return &DefaultCandidateService{
		Repo: &fakeCandidateRepo{candidates: []models.Candidate{
			{ID: "c1", FirstName: "Ada"},
			{ID: "c2", FirstName: "Grace"},
			{ID: "c3", FirstName: "Mary"},
		}},
		Interviews: &fakeInterviewRepo{byCandidate: map[string]*models.Interview{
			"c2": {CandidateID: "c2", PhoneScreenPassed: "No"},
		}},
		Employees: &fakeEmployeeRepo{hired: map[string]bool{"c3": true}},
	}
}

func TestGetPipeline_DerivesStatusPerCandidate(t *testing.T) {
	svc := newPipelineFixture()

	entries, err := svc.GetPipeline()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	byID := map[string]PipelineEntry{}
	for _, e := range entries {
		byID[e.Candidate.ID] = e
	}

	assert.Equal(t, scheduling.StatusApplied, byID["c1"].Status)
	assert.True(t, byID["c1"].Actionable)

	assert.Equal(t, scheduling.StatusPhoneScreenFailed, byID["c2"].Status)
	assert.False(t, byID["c2"].Actionable)

	assert.Equal(t, scheduling.StatusHired, byID["c3"].Status)
	assert.False(t, byID["c3"].Actionable)
}

func TestHireCandidate(t *testing.T) {
	svc := newPipelineFixture()

	employee, err := svc.HireCandidate("c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", employee.CandidateID)
	assert.True(t, employee.Active)

	// Hiring twice is rejected.
	_, err = svc.HireCandidate("c1")
	assert.Error(t, err)

	// Unknown candidates are rejected.
	_, err = svc.HireCandidate("nope")
	assert.Error(t, err)
}

func TestUpsertInterview_RequiresExistingCandidate(t *testing.T) {
	svc := newPipelineFixture()

	_, err := svc.UpsertInterview(&models.Interview{CandidateID: "ghost"})
	assert.Error(t, err)

	iv, err := svc.UpsertInterview(&models.Interview{CandidateID: "c1", PhoneScreenPassed: "Yes"})
	require.NoError(t, err)

	got, err := svc.GetInterview("c1")
	require.NoError(t, err)
	assert.Equal(t, iv, got)
}
