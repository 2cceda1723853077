// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - TextExtractor: Turns the bytes of one format into plain text
//   - ExtractorRegistry: Selects the extractor for a format
//   - RecordStore: Owns the list of processed records
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - SentenceCounter: Sentence segmentation. Falls back to punctuation splitting.
//   - PatternStore: Persisted pattern configuration. Without it, defaults are used.
//   - ConfigStore: Application configuration. Without it, defaults are used.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or extractor package
package driven
