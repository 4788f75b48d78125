package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"firstlighthrm/models"
)

func TestResolveStatus_DecisionList(t *testing.T) {
	orientation := time.Date(2026, time.April, 6, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		interview  *models.Interview
		isEmployee bool
		want       CandidateStatus
	}{
		{"employee wins over everything", &models.Interview{PhoneScreenPassed: "No"}, true, StatusHired},
		{"employee without interview", nil, true, StatusHired},
		{"no interview record", nil, false, StatusApplied},
		{"phone screen failed", &models.Interview{PhoneScreenPassed: "No"}, false, StatusPhoneScreenFailed},
		{
			// Rule order governs: the failed phone screen outranks the
			// scheduled orientation.
			"phone screen failed outranks orientation",
			&models.Interview{PhoneScreenPassed: "No", OrientationScheduled: &orientation},
			false,
			StatusPhoneScreenFailed,
		},
		{
			"rejected after orientation",
			&models.Interview{PhoneScreenPassed: "Yes", FinalInterviewStatus: "Rejected after Orientation", OrientationScheduled: &orientation},
			false,
			StatusRejectedAfterOrientation,
		},
		{
			"orientation scheduled outranks final passed",
			&models.Interview{PhoneScreenPassed: "Yes", FinalInterviewStatus: "Passed", OrientationScheduled: &orientation},
			false,
			StatusOrientationScheduled,
		},
		{"final passed", &models.Interview{PhoneScreenPassed: "Yes", FinalInterviewStatus: "Passed"}, false, StatusFinalInterviewPassed},
		{"final failed", &models.Interview{PhoneScreenPassed: "Yes", FinalInterviewStatus: "Failed"}, false, StatusFinalInterviewFailed},
		{"interview with nothing decided yet", &models.Interview{PhoneScreenPassed: "Yes"}, false, StatusFinalInterviewPending},
		{"empty interview record", &models.Interview{}, false, StatusFinalInterviewPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveStatus(tt.interview, tt.isEmployee))
		})
	}
}

func TestIsActionable(t *testing.T) {
	terminal := map[CandidateStatus]bool{
		StatusHired:                    true,
		StatusFinalInterviewFailed:     true,
		StatusPhoneScreenFailed:        true,
		StatusRejectedAfterOrientation: true,
	}

	for _, status := range AllStatuses {
		assert.Equal(t, !terminal[status], IsActionable(status), "status %q", status)
	}
}
