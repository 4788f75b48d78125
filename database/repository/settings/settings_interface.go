package settingsRepo

import "firstlighthrm/models"

// SettingsRepository defines methods for the agency settings document.
type SettingsRepository interface {
	// GetInterviewTemplate retrieves the raw interview slot template
	// document ("<weekday>_slots" keys, comma-separated "HH:MM" values).
	GetInterviewTemplate() (map[string]string, error)
	// UpdateInterviewTemplate replaces the interview slot template.
	UpdateInterviewTemplate(doc map[string]string) (*models.AgencySettings, error)
}
