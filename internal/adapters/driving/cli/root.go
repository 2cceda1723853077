// Package cli provides the cobra command tree for medreport.
// It is a driving adapter: commands translate flags and files into calls
// on the core services and render the results.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/medreport/medreport-cli/internal/core/ports/driving"
	"github.com/medreport/medreport-cli/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// skipServices marks commands that run without the core services.
const skipServices = "skip-services"

// Options carries the global flags needed to build services.
type Options struct {
	// ConfigDir overrides the config directory; empty means the default.
	ConfigDir string

	// Verbose enables diagnostic logging.
	Verbose bool
}

// Services bundles the driving ports used by the commands.
type Services struct {
	Analyzer driving.AnalyzerService
	Patterns driving.PatternService
	Settings driving.SettingsService

	// Close releases resources such as the database; may be nil.
	Close func() error
}

// ServiceFactory builds the services once global flags are parsed.
type ServiceFactory func(opts Options) (*Services, error)

// Services used by the commands. Set by the factory, or directly in tests.
var (
	analyzerService driving.AnalyzerService
	patternService  driving.PatternService
	settingsService driving.SettingsService

	serviceFactory ServiceFactory
	closeServices  func() error
)

// Global flags.
var (
	flagVerbose   bool
	flagConfigDir string
)

var rootCmd = &cobra.Command{
	Use:   "medreport",
	Short: "Extract key findings from medical reports",
	Long: `medreport reads PDF, Word and plain-text medical reports, extracts
diagnoses, medications, vital signs, lab results and recommendations, and
aggregates them into a summary report or a JSON export.

Records are kept in ~/.medreport by default so that reports processed in
one run are included in later summaries.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable diagnostic logging")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "",
		"config directory (default $MEDREPORT_HOME or ~/.medreport)")
}

// SetVersion sets the version reported by `medreport version`.
func SetVersion(v string) {
	version = v
}

// SetServiceFactory registers how services are built.
func SetServiceFactory(factory ServiceFactory) {
	serviceFactory = factory
}

// SetServices installs services directly, bypassing the factory.
func SetServices(s *Services) {
	if s == nil {
		analyzerService, patternService, settingsService, closeServices = nil, nil, nil, nil
		return
	}
	analyzerService = s.Analyzer
	patternService = s.Patterns
	settingsService = s.Settings
	closeServices = s.Close
}

// Execute runs the root command and releases services afterwards.
// Command output goes to stdout so reports and exports can be piped.
func Execute(ctx context.Context) error {
	rootCmd.SetOut(os.Stdout)
	err := rootCmd.ExecuteContext(ctx)
	if closeServices != nil {
		if cerr := closeServices(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing services: %w", cerr))
		}
		closeServices = nil
	}
	return err
}

// initServices enables logging and builds services on first use.
func initServices(cmd *cobra.Command, _ []string) error {
	if flagVerbose {
		logger.SetVerbose(true)
	}
	if cmd.Annotations[skipServices] == "true" {
		return nil
	}
	if serviceFactory == nil || analyzerService != nil {
		return nil
	}

	services, err := serviceFactory(Options{
		ConfigDir: flagConfigDir,
		Verbose:   flagVerbose,
	})
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	SetServices(services)
	return nil
}

var errNotConfigured = errors.New("analyzer service not configured")

func requireAnalyzer() error {
	if analyzerService == nil {
		return errNotConfigured
	}
	return nil
}
