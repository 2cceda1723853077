package domain

// Category is one of the fixed finding classes.
type Category string

const (
	// CategoryDiagnoses holds diagnoses, assessments and impressions.
	CategoryDiagnoses Category = "diagnoses"

	// CategoryMedications holds medications and prescriptions.
	CategoryMedications Category = "medications"

	// CategoryVitals holds vital signs and body measurements.
	CategoryVitals Category = "vitals"

	// CategoryLabResults holds laboratory and test results.
	CategoryLabResults Category = "lab_results"

	// CategoryRecommendations holds plans, follow-ups and advice.
	CategoryRecommendations Category = "recommendations"
)

// categories is the canonical ordering used for extraction and rendering.
var categories = []Category{
	CategoryDiagnoses,
	CategoryMedications,
	CategoryVitals,
	CategoryLabResults,
	CategoryRecommendations,
}

// Categories returns the five categories in canonical order.
// The returned slice is a copy and may be modified by the caller.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// IsValid returns true if c is one of the five fixed categories.
func (c Category) IsValid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// Title returns the heading used for the category in rendered reports.
func (c Category) Title() string {
	switch c {
	case CategoryDiagnoses:
		return "Diagnoses"
	case CategoryMedications:
		return "Medications"
	case CategoryVitals:
		return "Vital Signs"
	case CategoryLabResults:
		return "Lab Results"
	case CategoryRecommendations:
		return "Recommendations"
	default:
		return string(c)
	}
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}
