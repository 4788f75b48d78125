// File: services/scheduling/status.go
package scheduling

import "firstlighthrm/models"

// CandidateStatus is a candidate's discrete hiring-pipeline stage. It is
// derived on every read from the interview and employee records and is
// never stored.
type CandidateStatus string

const (
	StatusApplied                  CandidateStatus = "Applied"
	StatusPhoneScreenFailed        CandidateStatus = "Phone Screen Failed"
	StatusOrientationScheduled     CandidateStatus = "Orientation Scheduled"
	StatusFinalInterviewPassed     CandidateStatus = "Final Interview Passed"
	StatusFinalInterviewFailed     CandidateStatus = "Final Interview Failed"
	StatusFinalInterviewPending    CandidateStatus = "Final Interview Pending"
	StatusRejectedAfterOrientation CandidateStatus = "Rejected after Orientation"
	StatusHired                    CandidateStatus = "Hired"
)

// AllStatuses lists every pipeline status.
var AllStatuses = []CandidateStatus{
	StatusApplied,
	StatusPhoneScreenFailed,
	StatusOrientationScheduled,
	StatusFinalInterviewPassed,
	StatusFinalInterviewFailed,
	StatusFinalInterviewPending,
	StatusRejectedAfterOrientation,
	StatusHired,
}

// ResolveStatus derives a candidate's pipeline status from the optional
// interview record and employment flag. This is a strict decision list:
// guards are evaluated top to bottom and the first match wins.
func ResolveStatus(interview *models.Interview, isEmployee bool) CandidateStatus {
	if isEmployee {
		return StatusHired
	}
	if interview == nil {
		return StatusApplied
	}
	if interview.PhoneScreenPassed == "No" {
		return StatusPhoneScreenFailed
	}
	if interview.FinalInterviewStatus == string(StatusRejectedAfterOrientation) {
		return StatusRejectedAfterOrientation
	}
	if interview.OrientationScheduled != nil {
		return StatusOrientationScheduled
	}
	if interview.FinalInterviewStatus == "Passed" {
		return StatusFinalInterviewPassed
	}
	if interview.FinalInterviewStatus == "Failed" {
		return StatusFinalInterviewFailed
	}
	return StatusFinalInterviewPending
}

// IsActionable reports whether a "manage interview" action should be
// offered for a candidate in the given status. The four terminal statuses
// are not actionable.
func IsActionable(status CandidateStatus) bool {
	switch status {
	case StatusHired, StatusFinalInterviewFailed, StatusPhoneScreenFailed, StatusRejectedAfterOrientation:
		return false
	}
	return true
}
