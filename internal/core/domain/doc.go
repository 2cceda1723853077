// Package domain defines the core business entities for medreport.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Record: One processed medical document with its findings
//   - Findings: Extracted text fragments keyed by Category
//   - PatternRegistry: The category -> regular expression mapping
//   - Summary: The cross-document aggregation of records
//   - BatchReport: Per-file outcome of processing several uploads
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
