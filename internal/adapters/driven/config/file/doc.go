// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data under the medreport config directory
// (~/.medreport by default, or $MEDREPORT_HOME).
//
// Adapters:
//   - ConfigStore: TOML-based settings storage (config.toml)
//   - PatternStore: JSON pattern registry (patterns.json)
package file
