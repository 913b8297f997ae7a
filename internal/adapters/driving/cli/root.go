// Package cli provides the command line interface for the AiRobo trainer.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/airobo-labs/trainer-cli/internal/core/ports/driving"
	"github.com/airobo-labs/trainer-cli/internal/logger"
)

// version is the build version, overridable at link time.
var version = "dev"

// Services injected by the bootstrap before commands run.
var (
	sessionService  driving.SessionService
	scoringService  driving.ScoringService
	settingsService driving.SettingsService
)

// setupFn wires the services once flags are parsed. Set by the bootstrap.
var setupFn func(configDir string) error

var (
	verboseFlag   bool
	configDirFlag string
)

var rootCmd = &cobra.Command{
	Use:   "airobo",
	Short: "Configure and run motor imagery training sessions",
	Long: `airobo manages the training-module list, headset settings and
leaderboard for motor imagery training sessions.

Run without arguments to launch the interactive terminal UI, or use
subcommands for scripted access.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		if setupFn != nil {
			return setupFn(configDirFlag)
		}
		return nil
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "",
		"configuration directory (default ~/.airobo)")
}

// OnSetup registers the wiring function invoked after flag parsing and
// before any command runs. The function should call SetServices.
func OnSetup(fn func(configDir string) error) {
	setupFn = fn
}

// SetServices injects the core services used by the commands.
func SetServices(session driving.SessionService, scoring driving.ScoringService,
	settings driving.SettingsService) {
	sessionService = session
	scoringService = scoring
	settingsService = settings
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// requireServices guards commands against a missing bootstrap.
func requireServices() error {
	if sessionService == nil || scoringService == nil || settingsService == nil {
		return errors.New("services not configured")
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
