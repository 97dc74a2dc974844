package generator

import "fmt"

// Preset defines a named configuration for data generation.
type Preset string

const (
	// PresetDemo creates one organizer with a handful of published events.
	PresetDemo Preset = "demo"

	// PresetVariety creates several organizers with events across every
	// status, including past ones.
	PresetVariety Preset = "variety"

	// PresetStress creates many organizers with large guest lists for load
	// testing.
	PresetStress Preset = "stress"
)

// PresetConfig holds the generation parameters for a preset.
type PresetConfig struct {
	// Number of organizers to generate events for
	Organizers int

	// Events per organizer (min, max)
	EventsMin int
	EventsMax int

	// Guest responses per event (min, max)
	GuestsMin int
	GuestsMax int

	// Broadcasts per event (min, max)
	MessagesMin int
	MessagesMax int

	// Whether to cycle event statuses beyond published
	VaryStatuses bool

	// Whether some published events already ended
	IncludePastEvents bool
}

// GetPresetConfig returns the configuration for a preset.
func GetPresetConfig(preset Preset) PresetConfig {
	switch preset {
	case PresetDemo:
		return PresetConfig{
			Organizers:  1,
			EventsMin:   5,
			EventsMax:   5,
			GuestsMin:   8,
			GuestsMax:   20,
			MessagesMin: 1,
			MessagesMax: 3,
		}

	case PresetVariety:
		return PresetConfig{
			Organizers:        3,
			EventsMin:         4,
			EventsMax:         8,
			GuestsMin:         0,
			GuestsMax:         25,
			MessagesMin:       0,
			MessagesMax:       4,
			VaryStatuses:      true,
			IncludePastEvents: true,
		}

	case PresetStress:
		return PresetConfig{
			Organizers:        10,
			EventsMin:         15,
			EventsMax:         25,
			GuestsMin:         5,
			GuestsMax:         40,
			MessagesMin:       1,
			MessagesMax:       5,
			VaryStatuses:      true,
			IncludePastEvents: true,
		}

	default:
		return GetPresetConfig(PresetDemo)
	}
}

// ValidatePreset reports an error naming the valid presets when the given
// preset is unknown.
func ValidatePreset(preset Preset) error {
	switch preset {
	case PresetDemo, PresetVariety, PresetStress:
		return nil
	default:
		return fmt.Errorf("unknown preset %q (valid presets: %s, %s, %s)", preset, PresetDemo, PresetVariety, PresetStress)
	}
}
