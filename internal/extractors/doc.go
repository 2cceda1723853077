// Package extractors provides implementations of the TextExtractor
// interface for the supported document formats, and the Registry that
// dispatches to them. Each extractor knows how to turn the bytes of one
// format into plain text.
//
// Extractors are registered with the Registry at startup; see RegisterDefaults.
package extractors
