package driving

import "github.com/medreport/medreport-cli/internal/core/domain"

// PatternService manages the active pattern registry.
type PatternService interface {
	// Current returns a copy of the active registry.
	Current() domain.PatternRegistry

	// SetPattern replaces one category's pattern without validating it.
	// An invalid pattern surfaces as domain.ErrInvalidPattern when a file is processed.
	SetPattern(category domain.Category, pattern string) error

	// Load parses and validates a pattern configuration document and makes
	// it active. On error the active registry is unchanged.
	Load(data []byte) error

	// Save serialises the active registry as a configuration document.
	Save() ([]byte, error)

	// Validate compiles every pattern of the active registry.
	Validate() error

	// ResetDefaults restores the built-in registry.
	ResetDefaults() error
}
