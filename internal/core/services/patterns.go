package services

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/medreport/medreport-cli/internal/core/domain"
	"github.com/medreport/medreport-cli/internal/core/ports/driven"
	"github.com/medreport/medreport-cli/internal/core/ports/driving"
	"github.com/medreport/medreport-cli/internal/logger"
)

// patternConfig is the on-disk shape of a pattern configuration document.
type patternConfig struct {
	Version  string             `json:"version"`
	Patterns *map[string]string `json:"patterns"`
}

// LoadPatternConfig parses and validates a pattern configuration document.
//
// The document must carry a "patterns" object keyed by category name.
// Categories it omits have no pattern. Any unknown category or any
// pattern that fails to compile rejects the whole document with
// domain.ErrInvalidConfig.
func LoadPatternConfig(data []byte, extractor *FindingExtractor) (domain.PatternRegistry, error) {
	var cfg patternConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return domain.PatternRegistry{}, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	if cfg.Patterns == nil {
		return domain.PatternRegistry{}, fmt.Errorf("%w: missing \"patterns\" key", domain.ErrInvalidConfig)
	}

	registry := domain.PatternRegistry{
		Version:  cfg.Version,
		Patterns: make(map[domain.Category]string, len(*cfg.Patterns)),
	}
	for name, pattern := range *cfg.Patterns {
		category := domain.Category(name)
		if !category.IsValid() {
			return domain.PatternRegistry{}, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidConfig, name)
		}
		registry.Patterns[category] = pattern
	}

	if extractor == nil {
		extractor = NewFindingExtractor()
	}
	if _, err := extractor.Compile(registry); err != nil {
		return domain.PatternRegistry{}, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}

	return registry, nil
}

// SavePatternConfig serialises a registry as a configuration document.
// All five categories are written; the version defaults to
// domain.PatternConfigVersion.
func SavePatternConfig(registry domain.PatternRegistry) ([]byte, error) {
	patterns := make(map[string]string, len(domain.Categories()))
	for _, category := range domain.Categories() {
		patterns[string(category)] = registry.Pattern(category)
	}

	version := registry.Version
	if version == "" {
		version = domain.PatternConfigVersion
	}

	data, err := json.MarshalIndent(patternConfig{
		Version:  version,
		Patterns: &patterns,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling pattern config: %w", err)
	}
	return data, nil
}

// Ensure PatternService implements the interface.
var _ driving.PatternService = (*PatternService)(nil)

// PatternService holds the active pattern registry.
// Every extraction receives a copy, so later edits never touch
// records that were already processed.
type PatternService struct {
	mu        sync.RWMutex
	registry  domain.PatternRegistry
	store     driven.PatternStore
	extractor *FindingExtractor
}

// NewPatternService creates a pattern service.
// If store is non-nil the stored registry becomes active and every change
// is persisted; otherwise the built-in defaults are used in memory.
func NewPatternService(store driven.PatternStore, extractor *FindingExtractor) (*PatternService, error) {
	if extractor == nil {
		extractor = NewFindingExtractor()
	}
	s := &PatternService{
		registry:  domain.DefaultPatterns(),
		store:     store,
		extractor: extractor,
	}

	if store != nil {
		registry, err := store.Load()
		if err != nil {
			return nil, fmt.Errorf("loading patterns from %s: %w", store.Path(), err)
		}
		s.registry = registry
	}
	return s, nil
}

// Current returns a copy of the active registry.
func (s *PatternService) Current() domain.PatternRegistry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry.Clone()
}

// SetPattern replaces one category's pattern without validating it.
func (s *PatternService) SetPattern(category domain.Category, pattern string) error {
	if !category.IsValid() {
		return fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, category)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.registry.With(category, pattern)
	if err := s.persist(next); err != nil {
		return err
	}
	s.registry = next
	logger.Debug("Pattern for %s updated", category)
	return nil
}

// Load parses a configuration document and makes it active.
func (s *PatternService) Load(data []byte) error {
	registry, err := LoadPatternConfig(data, s.extractor)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(registry); err != nil {
		return err
	}
	s.registry = registry
	logger.Info("Loaded pattern config version %q", registry.Version)
	return nil
}

// Save serialises the active registry.
func (s *PatternService) Save() ([]byte, error) {
	return SavePatternConfig(s.Current())
}

// Validate compiles every pattern of the active registry.
func (s *PatternService) Validate() error {
	_, err := s.extractor.Compile(s.Current())
	return err
}

// ResetDefaults restores the built-in registry.
func (s *PatternService) ResetDefaults() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	defaults := domain.DefaultPatterns()
	if err := s.persist(defaults); err != nil {
		return err
	}
	s.registry = defaults
	return nil
}

// persist writes the registry to the store (caller must hold lock).
func (s *PatternService) persist(registry domain.PatternRegistry) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Save(registry); err != nil {
		return fmt.Errorf("saving patterns: %w", err)
	}
	return nil
}
