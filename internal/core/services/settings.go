package services

import (
	"context"
	"fmt"

	"github.com/airobo-labs/trainer-cli/internal/core/domain"
	"github.com/airobo-labs/trainer-cli/internal/core/ports/driven"
	"github.com/airobo-labs/trainer-cli/internal/core/ports/driving"
)

// Ensure Settings implements the interface.
var _ driving.SettingsService = (*Settings)(nil)

// Config keys for settings storage.
const (
	keySamplingRate = "headset.sampling_rate_hz"
	keyBandpass     = "headset.bandpass_filter"
	keyNotch        = "headset.notch_filter"
	keyGain         = "headset.gain"
	keyElectrodes   = "headset.electrodes"
	keyOutputPath   = "headset.output_path"

	keyLeftText    = "experiment.left.text"
	keyLeftAvatar  = "experiment.left.avatar"
	keyLeftVideo   = "experiment.left.video"
	keyRightText   = "experiment.right.text"
	keyRightAvatar = "experiment.right.avatar"
	keyRightVideo  = "experiment.right.video"
	keyRelaxText   = "experiment.relax.text"
	keyRelaxAvatar = "experiment.relax.avatar"
	keyRelaxVideo  = "experiment.relax.video"

	keyModuleSeed = "modules.seed"
	keyAllowAdd   = "modules.allow_add"
)

// Settings manages headset and experiment configuration on top of the
// config store. Unset or invalid values fall back to the factory defaults
// field by field.
type Settings struct {
	configStore driven.ConfigStore
}

// NewSettings creates a settings service.
func NewSettings(configStore driven.ConfigStore) *Settings {
	return &Settings{configStore: configStore}
}

// Headset returns the current headset settings.
func (s *Settings) Headset(_ context.Context) (domain.HeadsetSettings, error) {
	defaults := domain.DefaultHeadsetSettings()

	settings := domain.HeadsetSettings{
		SamplingRateHz: s.getSamplingRate(defaults.SamplingRateHz),
		BandpassFilter: s.getString(keyBandpass, defaults.BandpassFilter),
		NotchFilter:    s.getNotch(defaults.NotchFilter),
		Gain:           s.getGain(defaults.Gain),
		Electrodes:     s.getElectrodes(defaults.Electrodes),
		OutputPath:     s.getString(keyOutputPath, defaults.OutputPath),
	}

	return settings, nil
}

// SaveHeadset validates and persists headset settings.
func (s *Settings) SaveHeadset(_ context.Context, settings domain.HeadsetSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(keySamplingRate, settings.SamplingRateHz); err != nil {
		return fmt.Errorf("save sampling rate: %w", err)
	}
	if err := s.configStore.Set(keyBandpass, settings.BandpassFilter); err != nil {
		return fmt.Errorf("save bandpass filter: %w", err)
	}
	if err := s.configStore.Set(keyNotch, settings.NotchFilter); err != nil {
		return fmt.Errorf("save notch filter: %w", err)
	}
	if err := s.configStore.Set(keyGain, settings.Gain); err != nil {
		return fmt.Errorf("save gain: %w", err)
	}
	if err := s.configStore.Set(keyElectrodes, settings.Electrodes); err != nil {
		return fmt.Errorf("save electrodes: %w", err)
	}
	if err := s.configStore.Set(keyOutputPath, settings.OutputPath); err != nil {
		return fmt.Errorf("save output path: %w", err)
	}

	return nil
}

// ExperimentAssets returns the configured experiment assets.
func (s *Settings) ExperimentAssets(_ context.Context) (domain.ExperimentAssets, error) {
	defaults := domain.DefaultExperimentAssets()

	assets := domain.ExperimentAssets{
		Left: domain.ModeAssets{
			Text:   s.getString(keyLeftText, defaults.Left.Text),
			Avatar: s.getString(keyLeftAvatar, defaults.Left.Avatar),
			Video:  s.getString(keyLeftVideo, defaults.Left.Video),
		},
		Right: domain.ModeAssets{
			Text:   s.getString(keyRightText, defaults.Right.Text),
			Avatar: s.getString(keyRightAvatar, defaults.Right.Avatar),
			Video:  s.getString(keyRightVideo, defaults.Right.Video),
		},
		Relax: domain.ModeAssets{
			Text:   s.getString(keyRelaxText, defaults.Relax.Text),
			Avatar: s.configStore.GetString(keyRelaxAvatar), // empty is valid for relax
			Video:  s.configStore.GetString(keyRelaxVideo),
		},
	}

	return assets, nil
}

// SaveExperimentAssets persists experiment assets.
func (s *Settings) SaveExperimentAssets(_ context.Context, assets domain.ExperimentAssets) error {
	values := map[string]string{
		keyLeftText:    assets.Left.Text,
		keyLeftAvatar:  assets.Left.Avatar,
		keyLeftVideo:   assets.Left.Video,
		keyRightText:   assets.Right.Text,
		keyRightAvatar: assets.Right.Avatar,
		keyRightVideo:  assets.Right.Video,
		keyRelaxText:   assets.Relax.Text,
		keyRelaxAvatar: assets.Relax.Avatar,
		keyRelaxVideo:  assets.Relax.Video,
	}

	for key, value := range values {
		if err := s.configStore.Set(key, value); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}
	return nil
}

// ModuleSeed returns the configured training-module seed list, normalized.
func (s *Settings) ModuleSeed(_ context.Context) []string {
	seed := s.configStore.GetStringSlice(keyModuleSeed)
	if len(seed) == 0 {
		return domain.DefaultSeed()
	}

	normalized := domain.NormalizeSeed(seed)
	if len(normalized) == 0 {
		return domain.DefaultSeed()
	}
	return normalized
}

// AddEnabled reports whether module insertion is enabled.
func (s *Settings) AddEnabled(_ context.Context) bool {
	return s.configStore.GetBool(keyAllowAdd)
}

// Helper methods for reading config with defaults.

func (s *Settings) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *Settings) getSamplingRate(defaultVal int) int {
	val := s.configStore.GetInt(keySamplingRate)
	for _, rate := range domain.SupportedSamplingRates() {
		if val == rate {
			return val
		}
	}
	return defaultVal
}

func (s *Settings) getNotch(defaultVal string) string {
	val := s.configStore.GetString(keyNotch)
	for _, name := range domain.NotchFilterNames() {
		if val == name {
			return val
		}
	}
	return defaultVal
}

func (s *Settings) getGain(defaultVal int) int {
	val := s.configStore.GetInt(keyGain)
	if val < 1 || val > 100 {
		return defaultVal
	}
	return val
}

func (s *Settings) getElectrodes(defaultVal []string) []string {
	electrodes := s.configStore.GetStringSlice(keyElectrodes)
	if len(electrodes) == 0 {
		return defaultVal
	}
	for _, e := range electrodes {
		if domain.ElectrodeIndex(e) < 0 {
			return defaultVal
		}
	}
	return electrodes
}
