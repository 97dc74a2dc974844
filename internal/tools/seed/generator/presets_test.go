package generator

import "testing"

func TestGetPresetConfigRanges(t *testing.T) {
	for _, preset := range []Preset{PresetDemo, PresetVariety, PresetStress} {
		cfg := GetPresetConfig(preset)
		if cfg.Organizers <= 0 {
			t.Errorf("%s: organizers = %d, want positive", preset, cfg.Organizers)
		}
		if cfg.EventsMin <= 0 || cfg.EventsMax < cfg.EventsMin {
			t.Errorf("%s: events range %d..%d invalid", preset, cfg.EventsMin, cfg.EventsMax)
		}
		if cfg.GuestsMin < 0 || cfg.GuestsMax < cfg.GuestsMin {
			t.Errorf("%s: guests range %d..%d invalid", preset, cfg.GuestsMin, cfg.GuestsMax)
		}
		if cfg.MessagesMin < 0 || cfg.MessagesMax < cfg.MessagesMin {
			t.Errorf("%s: messages range %d..%d invalid", preset, cfg.MessagesMin, cfg.MessagesMax)
		}
	}
}

func TestGetPresetConfigUnknownFallsBackToDemo(t *testing.T) {
	if got, want := GetPresetConfig("bogus"), GetPresetConfig(PresetDemo); got != want {
		t.Fatalf("unknown preset config = %+v, want demo %+v", got, want)
	}
}

func TestValidatePreset(t *testing.T) {
	for _, preset := range []Preset{PresetDemo, PresetVariety, PresetStress} {
		if err := ValidatePreset(preset); err != nil {
			t.Errorf("ValidatePreset(%s) error = %v", preset, err)
		}
	}
	if err := ValidatePreset("bogus"); err == nil {
		t.Fatal("expected error for unknown preset")
	}
}
