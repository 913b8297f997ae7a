package domain

import (
	"fmt"
	"sort"
)

// ElectrodeNames is the electrode montage of the supported headset,
// ordered by channel index.
var ElectrodeNames = []string{
	"FP1", "FP2", "AF3", "AF4", "F7", "F3", "FZ", "F4", "F8",
	"FC5", "FC1", "FC2", "FC6", "T7", "C3", "CZ", "C4", "T8",
	"CP5", "CP1", "CP2", "CP6", "P7", "P3", "PZ", "P4", "P8",
	"PO7", "PO3", "PO4", "PO8", "OZ",
}

// ElectrodeIndex returns the channel index of an electrode name,
// or -1 if the name is not part of the montage.
func ElectrodeIndex(name string) int {
	for i, n := range ElectrodeNames {
		if n == name {
			return i
		}
	}
	return -1
}

// SupportedSamplingRates lists the sampling rates the headset accepts, in Hz.
func SupportedSamplingRates() []int {
	return []int{250, 500, 1000}
}

// NotchFilterNames lists the selectable notch filters.
func NotchFilterNames() []string {
	return []string{"None", "50Hz", "60Hz"}
}

// HeadsetSettings are the static acquisition parameters for the BCI headset.
// They configure the device; no signal acquisition happens in this tool.
type HeadsetSettings struct {
	// SamplingRateHz is the acquisition rate, one of SupportedSamplingRates.
	SamplingRateHz int

	// BandpassFilter is the display name of the bandpass filter,
	// or "None" for no filtering.
	BandpassFilter string

	// NotchFilter is the display name of the mains notch filter.
	NotchFilter string

	// Gain is the amplifier gain, 1..100.
	Gain int

	// Electrodes are the selected electrode names from ElectrodeNames.
	Electrodes []string

	// OutputPath is the directory recordings are written to.
	OutputPath string
}

// DefaultHeadsetSettings returns the factory headset configuration.
func DefaultHeadsetSettings() HeadsetSettings {
	return HeadsetSettings{
		SamplingRateHz: 250,
		BandpassFilter: "None",
		NotchFilter:    "None",
		Gain:           24,
		Electrodes:     []string{"C3", "CZ", "C4"},
		OutputPath:     "output",
	}
}

// Validate checks the settings against the device's capabilities.
func (s HeadsetSettings) Validate() error {
	rateOK := false
	for _, r := range SupportedSamplingRates() {
		if s.SamplingRateHz == r {
			rateOK = true
			break
		}
	}
	if !rateOK {
		return fmt.Errorf("%w: unsupported sampling rate %d Hz", ErrInvalidInput, s.SamplingRateHz)
	}

	if s.Gain < 1 || s.Gain > 100 {
		return fmt.Errorf("%w: gain %d outside 1..100", ErrInvalidInput, s.Gain)
	}

	if len(s.Electrodes) == 0 {
		return fmt.Errorf("%w: no electrodes selected", ErrInvalidInput)
	}
	for _, e := range s.Electrodes {
		if ElectrodeIndex(e) < 0 {
			return fmt.Errorf("%w: unknown electrode %q", ErrInvalidInput, e)
		}
	}

	if s.BandpassFilter != "None" && BandpassIndex(s.SamplingRateHz, s.BandpassFilter) < 0 {
		return fmt.Errorf("%w: unknown bandpass filter %q at %d Hz",
			ErrInvalidInput, s.BandpassFilter, s.SamplingRateHz)
	}

	notchOK := false
	for _, n := range NotchFilterNames() {
		if s.NotchFilter == n {
			notchOK = true
			break
		}
	}
	if !notchOK {
		return fmt.Errorf("%w: unknown notch filter %q", ErrInvalidInput, s.NotchFilter)
	}

	return nil
}

// Filter index tables queried from the device firmware. The hardware selects
// filters by index, and the indices differ per sampling rate.

var bandpassIndices250 = map[string]int{
	"0.1 – 30 Hz Bandpass": 10,
	"0.1 – 60 Hz Bandpass": 11,
	"0.5 – 30 Hz Bandpass": 13,
	"0.5 – 60 Hz Bandpass": 14,
	"2.0 – 30 Hz Bandpass": 16,
	"2.0 – 60 Hz Bandpass": 17,
	"5.0 – 30 Hz Bandpass": 19,
	"5.0 – 60 Hz Bandpass": 20,
	"0.1 Hz Highpass":      0,
	"1.0 Hz Highpass":      1,
	"2.0 Hz Highpass":      2,
	"5.0 Hz Highpass":      3,
	"30 Hz Lowpass":        4,
	"60 Hz Lowpass":        5,
	"100 Hz Lowpass":       6,
}

var bandpassIndices500 = map[string]int{
	"0.1 – 30 Hz Bandpass":  34,
	"0.1 – 60 Hz Bandpass":  35,
	"0.1 – 100 Hz Bandpass": 36,
	"0.1 – 200 Hz Bandpass": 37,
	"0.5 – 30 Hz Bandpass":  38,
	"0.5 – 60 Hz Bandpass":  39,
	"0.5 – 100 Hz Bandpass": 40,
	"0.5 – 200 Hz Bandpass": 41,
	"2.0 – 30 Hz Bandpass":  42,
	"2.0 – 60 Hz Bandpass":  43,
	"2.0 – 100 Hz Bandpass": 44,
	"2.0 – 200 Hz Bandpass": 45,
	"5.0 – 30 Hz Bandpass":  46,
	"5.0 – 60 Hz Bandpass":  47,
	"5.0 – 100 Hz Bandpass": 48,
	"5.0 – 200 Hz Bandpass": 49,
	"0.1 Hz Highpass":       22,
	"1.0 Hz Highpass":       23,
	"2.0 Hz Highpass":       24,
	"5.0 Hz Highpass":       25,
	"30 Hz Lowpass":         26,
	"60 Hz Lowpass":         27,
	"100 Hz Lowpass":        28,
	"200 Hz Lowpass":        29,
}

// BandpassFilterNames lists the selectable bandpass filters for a sampling
// rate, "None" first. Returns nil for rates without a published filter table.
func BandpassFilterNames(samplingRateHz int) []string {
	var table map[string]int
	switch samplingRateHz {
	case 250:
		table = bandpassIndices250
	case 500:
		table = bandpassIndices500
	default:
		return nil
	}

	names := make([]string, 0, len(table)+1)
	names = append(names, "None")
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names[1:])
	return names
}

// BandpassIndex returns the device filter index for a bandpass filter name at
// the given sampling rate, or -1 when no filter should be applied.
func BandpassIndex(samplingRateHz int, filter string) int {
	switch samplingRateHz {
	case 250:
		if idx, ok := bandpassIndices250[filter]; ok {
			return idx
		}
	case 500:
		if idx, ok := bandpassIndices500[filter]; ok {
			return idx
		}
	}
	return -1
}

// NotchIndex returns the device filter index for a notch filter name at the
// given sampling rate, or -1 when no filter should be applied.
func NotchIndex(samplingRateHz int, filter string) int {
	switch filter {
	case "50Hz":
		if samplingRateHz == 250 {
			return 0
		}
		return 2
	case "60Hz":
		if samplingRateHz == 250 {
			return 1
		}
		return 3
	default:
		return -1
	}
}
