package driving

import "github.com/medreport/medreport-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, filling defaults for
	// anything unset or invalid.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set parses and stores a single setting by its config key.
	Set(key, value string) error

	// Unset removes a setting so its default applies again.
	Unset(key string) error

	// Keys returns all recognised config keys, sorted.
	Keys() []string

	// Validate checks the stored settings.
	Validate() error

	// GetDefaults returns the default settings.
	GetDefaults() domain.AppSettings
}
