// Command medreport extracts key findings from medical reports.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/medreport/medreport-cli/internal/adapters/driven/config/file"
	"github.com/medreport/medreport-cli/internal/adapters/driven/nlp/punkt"
	"github.com/medreport/medreport-cli/internal/adapters/driven/storage/memory"
	"github.com/medreport/medreport-cli/internal/adapters/driven/storage/sqlite"
	"github.com/medreport/medreport-cli/internal/adapters/driving/cli"
	"github.com/medreport/medreport-cli/internal/core/domain"
	"github.com/medreport/medreport-cli/internal/core/ports/driven"
	"github.com/medreport/medreport-cli/internal/core/services"
	"github.com/medreport/medreport-cli/internal/extractors"
	"github.com/medreport/medreport-cli/internal/logger"
)

// version is set via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetServiceFactory(buildServices)

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

// buildServices wires the driven adapters into the core services
// according to config.toml.
func buildServices(opts cli.Options) (*cli.Services, error) {
	configDir := opts.ConfigDir
	if configDir == "" {
		dir, err := file.DefaultDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, err
	}
	if err := settingsService.Validate(); err != nil {
		logger.Warn("%v; using defaults for invalid values", err)
	}
	if settings.Verbose && !opts.Verbose {
		logger.SetVerbose(true)
	}

	store, closeStore, err := openRecordStore(configDir, settings.Storage)
	if err != nil {
		return nil, err
	}

	patternsPath := settings.Patterns.File
	if patternsPath == "" {
		patternsPath = filepath.Join(configDir, "patterns.json")
	}
	patternStore, err := file.NewPatternStore(patternsPath)
	if err != nil {
		return nil, errors.Join(err, closeStore())
	}

	findings := services.NewFindingExtractor(
		services.WithMaxPatternLength(settings.Limits.MaxPatternLength),
	)
	patternService, err := services.NewPatternService(patternStore, findings)
	if err != nil {
		return nil, errors.Join(err, closeStore())
	}

	analyzerOpts := []services.AnalyzerOption{
		services.WithFindingExtractor(findings),
		services.WithPreserveLines(settings.Extraction.PreserveLines),
		services.WithUnicodeNFC(settings.Extraction.UnicodeNFC),
		services.WithMaxFileBytes(settings.Limits.MaxFileBytes),
	}
	if counter, err := punkt.New(); err != nil {
		logger.Warn("sentence tokenizer unavailable, using punctuation count: %v", err)
	} else {
		analyzerOpts = append(analyzerOpts, services.WithSentenceCounter(counter))
	}

	analyzer := services.NewAnalyzer(store, extractors.NewDefaultRegistry(), patternService, analyzerOpts...)

	return &cli.Services{
		Analyzer: analyzer,
		Patterns: patternService,
		Settings: settingsService,
		Close:    closeStore,
	}, nil
}

// openRecordStore opens the configured record store and returns its closer.
func openRecordStore(configDir string, cfg domain.StorageSettings) (driven.RecordStore, func() error, error) {
	if cfg.Backend == domain.StorageMemory {
		logger.Debug("Using in-memory record store")
		return memory.NewRecordStore(), func() error { return nil }, nil
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = filepath.Join(configDir, "data")
	}
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening record store: %w", err)
	}
	logger.Debug("Using SQLite record store at %s", store.Path())
	return store, store.Close, nil
}
