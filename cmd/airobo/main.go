package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/airobo-labs/trainer-cli/internal/adapters/driven/config/file"
	"github.com/airobo-labs/trainer-cli/internal/adapters/driven/storage/memory"
	"github.com/airobo-labs/trainer-cli/internal/adapters/driven/storage/sqlite"
	"github.com/airobo-labs/trainer-cli/internal/adapters/driving/cli"
	"github.com/airobo-labs/trainer-cli/internal/core/services"
	"github.com/airobo-labs/trainer-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.OnSetup(setup)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup wires the driven adapters and core services once the persistent
// flags are parsed. configDir is empty unless --config-dir was given.
func setup(configDir string) error {
	ctx := context.Background()

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	// Reload the store when the config file is edited externally. The
	// watcher lives for the process lifetime.
	if _, err := file.NewWatcher(configStore, nil); err != nil {
		logger.Debug("config watcher unavailable: %v", err)
	}

	settingsService := services.NewSettings(configStore)

	moduleStore := memory.NewModuleStore(settingsService.ModuleSeed(ctx))
	sessionService := services.NewSession(moduleStore, settingsService.AddEnabled(ctx))

	dataDir := ""
	if configDir != "" {
		dataDir = filepath.Join(configDir, "data")
	}
	scoreStore, err := sqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("opening score store: %w", err)
	}
	scoringService := services.NewScoring(scoreStore.LeaderboardStore())

	cli.SetServices(sessionService, scoringService, settingsService)
	return nil
}
