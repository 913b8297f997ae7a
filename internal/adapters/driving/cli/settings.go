package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/airobo-labs/trainer-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage headset settings",
	Long: `View and configure the EEG headset used for training sessions.

Use subcommands to change individual settings, or the TUI settings view
for interactive editing.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current headset settings",
	RunE:  runSettingsShow,
}

var settingsRateCmd = &cobra.Command{
	Use:   "rate <hz>",
	Short: "Set the sampling rate",
	Long: `Set the headset sampling rate in Hz.

Changing the rate resets the bandpass and notch filters to "None",
because the selectable filters depend on the rate.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsRate,
}

var settingsGainCmd = &cobra.Command{
	Use:   "gain <value>",
	Short: "Set the amplifier gain (1-100)",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGain,
}

var settingsBandpassCmd = &cobra.Command{
	Use:   "bandpass <filter>",
	Short: "Set the bandpass filter",
	Long: `Set the bandpass filter by name, or "None" to disable filtering.

The selectable filters depend on the configured sampling rate; run
'airobo settings show' to list them.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsBandpass,
}

var settingsNotchCmd = &cobra.Command{
	Use:   "notch <filter>",
	Short: "Set the mains notch filter",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsNotch,
}

var settingsAssetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Show the experiment assets per instruction mode",
	RunE:  runSettingsAssets,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsRateCmd)
	settingsCmd.AddCommand(settingsGainCmd)
	settingsCmd.AddCommand(settingsBandpassCmd)
	settingsCmd.AddCommand(settingsNotchCmd)
	settingsCmd.AddCommand(settingsAssetsCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if err := requireServices(); err != nil {
		return err
	}

	settings, err := settingsService.Headset(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Headset Settings")
	cmd.Println("================")
	cmd.Println()
	cmd.Printf("  Sampling rate: %d Hz\n", settings.SamplingRateHz)
	cmd.Printf("  Bandpass:      %s\n", settings.BandpassFilter)
	cmd.Printf("  Notch:         %s\n", settings.NotchFilter)
	cmd.Printf("  Gain:          %d\n", settings.Gain)
	cmd.Printf("  Electrodes:    %s\n", strings.Join(settings.Electrodes, ", "))
	cmd.Printf("  Output path:   %s\n", settings.OutputPath)
	cmd.Println()

	names := domain.BandpassFilterNames(settings.SamplingRateHz)
	if len(names) > 0 {
		cmd.Printf("Bandpass filters for %d Hz: %s\n", settings.SamplingRateHz, strings.Join(names, ", "))
	} else {
		cmd.Printf("No bandpass filters are available at %d Hz.\n", settings.SamplingRateHz)
	}

	return nil
}

// updateHeadset loads the current settings, applies change, and saves.
func updateHeadset(cmd *cobra.Command, change func(*domain.HeadsetSettings)) error {
	settings, err := settingsService.Headset(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	change(&settings)

	if err := settingsService.SaveHeadset(cmd.Context(), settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Println("Settings saved.")
	return nil
}

func runSettingsRate(cmd *cobra.Command, args []string) error {
	if err := requireServices(); err != nil {
		return err
	}

	rate, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid sampling rate %q: expected a number", args[0])
	}

	return updateHeadset(cmd, func(s *domain.HeadsetSettings) {
		s.SamplingRateHz = rate
		// Filter tables differ per rate.
		s.BandpassFilter = "None"
		s.NotchFilter = "None"
	})
}

func runSettingsGain(cmd *cobra.Command, args []string) error {
	if err := requireServices(); err != nil {
		return err
	}

	gain, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid gain %q: expected a number", args[0])
	}

	return updateHeadset(cmd, func(s *domain.HeadsetSettings) {
		s.Gain = gain
	})
}

func runSettingsBandpass(cmd *cobra.Command, args []string) error {
	if err := requireServices(); err != nil {
		return err
	}

	return updateHeadset(cmd, func(s *domain.HeadsetSettings) {
		s.BandpassFilter = args[0]
	})
}

func runSettingsAssets(cmd *cobra.Command, _ []string) error {
	if err := requireServices(); err != nil {
		return err
	}

	assets, err := settingsService.ExperimentAssets(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get experiment assets: %w", err)
	}

	cmd.Println("Experiment Assets")
	cmd.Println("=================")
	for _, mode := range domain.AllInstructionModes() {
		a := assets.ForMode(mode)
		cmd.Println()
		cmd.Printf("[%s]\n", mode)
		cmd.Printf("  Text:   %s\n", a.Text)
		cmd.Printf("  Avatar: %s\n", a.Avatar)
		cmd.Printf("  Video:  %s\n", a.Video)
	}

	return nil
}

func runSettingsNotch(cmd *cobra.Command, args []string) error {
	if err := requireServices(); err != nil {
		return err
	}

	return updateHeadset(cmd, func(s *domain.HeadsetSettings) {
		s.NotchFilter = args[0]
	})
}
