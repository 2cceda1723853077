// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The pipeline is strictly one-way:
//
//	raw bytes -> extracted text -> normalised text -> findings -> record
//	records -> summary -> formatted report / JSON export
//
// Services are pure Go with no CGO.
package services
