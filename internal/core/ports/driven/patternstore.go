package driven

import "github.com/medreport/medreport-cli/internal/core/domain"

// PatternStore persists the pattern configuration document.
// Implementations fall back to domain.DefaultPatterns when nothing is stored.
type PatternStore interface {
	// Load returns the stored registry.
	Load() (domain.PatternRegistry, error)

	// Save persists the registry.
	Save(registry domain.PatternRegistry) error

	// Path returns where the configuration is stored.
	Path() string
}
