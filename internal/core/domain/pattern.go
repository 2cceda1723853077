package domain

// PatternConfigVersion is the version tag written when saving a registry
// that does not carry its own.
const PatternConfigVersion = "1.1.0"

// PatternRegistry maps each category to the regular expression used to
// extract its findings. Every pattern must capture exactly one group
// holding the finding text. A missing or empty pattern disables the
// category.
//
// PatternRegistry is passed by value into each extraction; use Clone
// before mutating a registry that is shared.
type PatternRegistry struct {
	// Version tags the registry so records can state which patterns produced them.
	Version string `json:"version"`

	// Patterns holds the pattern source per category.
	Patterns map[Category]string `json:"patterns"`
}

// DefaultPatterns returns the built-in registry.
func DefaultPatterns() PatternRegistry {
	return PatternRegistry{
		Version: PatternConfigVersion,
		Patterns: map[Category]string{
			CategoryDiagnoses:       `(?:diagnosis|assessment|impression|diagnosed with)[:\s](.*?)(?:\n|$)`,
			CategoryMedications:     `(?:medication|drug|prescription|prescribed)[:\s](.*?)(?:\n|$)`,
			CategoryVitals:          `(?:vital|measurement|blood pressure|temperature|pulse|height|weight)[:\s](.*?)(?:\n|$)`,
			CategoryLabResults:      `(?:lab|laboratory|test|result|blood work)[:\s](.*?)(?:\n|$)`,
			CategoryRecommendations: `(?:recommendation|plan|follow up|advised)[:\s](.*?)(?:\n|$)`,
		},
	}
}

// Pattern returns the pattern for a category, or "" when none is set.
func (r PatternRegistry) Pattern(c Category) string {
	if r.Patterns == nil {
		return ""
	}
	return r.Patterns[c]
}

// Clone returns an independent copy of the registry.
func (r PatternRegistry) Clone() PatternRegistry {
	out := PatternRegistry{
		Version:  r.Version,
		Patterns: make(map[Category]string, len(r.Patterns)),
	}
	for c, p := range r.Patterns {
		out.Patterns[c] = p
	}
	return out
}

// With returns a copy of the registry with one category's pattern replaced.
func (r PatternRegistry) With(c Category, pattern string) PatternRegistry {
	out := r.Clone()
	out.Patterns[c] = pattern
	return out
}

// IsEmpty returns true if no category has a pattern.
func (r PatternRegistry) IsEmpty() bool {
	for _, p := range r.Patterns {
		if p != "" {
			return false
		}
	}
	return true
}
