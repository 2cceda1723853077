package extractors

import (
	"github.com/medreport/medreport-cli/internal/extractors/docx"
	"github.com/medreport/medreport-cli/internal/extractors/pdf"
	"github.com/medreport/medreport-cli/internal/extractors/plaintext"
)

// RegisterDefaults registers the PDF, plain text and Word extractors.
// Call this during application initialisation.
func RegisterDefaults(r *Registry) {
	r.Register(pdf.New())
	r.Register(plaintext.New())
	r.Register(docx.New())
}

// NewDefaultRegistry returns a registry with all built-in extractors.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}
