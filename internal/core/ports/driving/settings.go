package driving

import (
	"context"

	"github.com/airobo-labs/trainer-cli/internal/core/domain"
)

// SettingsService manages headset and experiment configuration.
type SettingsService interface {
	// Headset returns the current headset settings, falling back to
	// defaults for unset or invalid values.
	Headset(ctx context.Context) (domain.HeadsetSettings, error)

	// SaveHeadset validates and persists headset settings.
	SaveHeadset(ctx context.Context, settings domain.HeadsetSettings) error

	// ExperimentAssets returns the configured experiment assets, falling
	// back to defaults for unset values.
	ExperimentAssets(ctx context.Context) (domain.ExperimentAssets, error)

	// SaveExperimentAssets persists experiment assets.
	SaveExperimentAssets(ctx context.Context, assets domain.ExperimentAssets) error

	// ModuleSeed returns the configured training-module seed list,
	// normalized, falling back to the factory seed when unset.
	ModuleSeed(ctx context.Context) []string

	// AddEnabled reports whether module insertion is enabled.
	AddEnabled(ctx context.Context) bool
}
