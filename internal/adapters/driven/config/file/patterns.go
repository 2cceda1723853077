package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/medreport/medreport-cli/internal/core/domain"
	"github.com/medreport/medreport-cli/internal/core/ports/driven"
)

// Ensure PatternStore implements the interface.
var _ driven.PatternStore = (*PatternStore)(nil)

// patternsFile is the default file name inside the config directory.
const patternsFile = "patterns.json"

// PatternStore keeps the pattern registry in a user-editable JSON file.
//
// The store uses lazy initialisation: the file is only written when first
// loaded, not in the constructor. Stored patterns are not compiled here;
// an invalid pattern is reported when a file is processed.
type PatternStore struct {
	mu       sync.Mutex
	path     string
	initOnce sync.Once
	initErr  error
}

// NewPatternStore creates a pattern store at path.
// If path is empty, defaults to <DefaultDir>/patterns.json.
func NewPatternStore(path string) (*PatternStore, error) {
	if path == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, patternsFile)
	}
	return &PatternStore{path: path}, nil
}

// Load returns the stored registry.
// On first call, writes the built-in defaults if no file exists yet.
// If that write fails the defaults are still returned.
func (s *PatternStore) Load() (domain.PatternRegistry, error) {
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		return domain.DefaultPatterns(), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.DefaultPatterns(), nil
	}
	if err != nil {
		return domain.PatternRegistry{}, fmt.Errorf("reading patterns: %w", err)
	}

	var registry domain.PatternRegistry
	if err := json.Unmarshal(data, &registry); err != nil {
		return domain.PatternRegistry{}, fmt.Errorf("%w: parsing %s: %v", domain.ErrInvalidConfig, s.path, err)
	}
	if registry.Patterns == nil {
		return domain.PatternRegistry{}, fmt.Errorf("%w: %s has no \"patterns\" object", domain.ErrInvalidConfig, s.path)
	}
	for category := range registry.Patterns {
		if !category.IsValid() {
			return domain.PatternRegistry{}, fmt.Errorf("%w: %s: unknown category %q",
				domain.ErrInvalidConfig, s.path, category)
		}
	}
	return registry, nil
}

// Save writes the registry, replacing the file atomically.
func (s *PatternStore) Save(registry domain.PatternRegistry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(registry)
}

// Path returns the pattern file path.
func (s *PatternStore) Path() string {
	return s.path
}

// initialise creates the directory and default file.
// Called once via sync.Once on first Load().
func (s *PatternStore) initialise() {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		s.initErr = fmt.Errorf("create pattern directory: %w", err)
		return
	}

	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if err := s.write(domain.DefaultPatterns()); err != nil {
			s.initErr = err
		}
	}
}

// write serialises the registry (caller must hold lock).
func (s *PatternStore) write(registry domain.PatternRegistry) error {
	if registry.Version == "" {
		registry.Version = domain.PatternConfigVersion
	}
	if registry.Patterns == nil {
		registry.Patterns = map[domain.Category]string{}
	}

	data, err := json.MarshalIndent(registry, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding patterns: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create pattern directory: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("writing patterns: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing patterns: %w", err)
	}
	return nil
}
