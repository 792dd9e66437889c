package config

import (
	"fmt"
	"sort"
)

var Presets = map[string]*Config{
	"sparse": {
		Points: 3, Radius: 1,
		View: ViewConfig{RotX: DefaultRotX, RotY: DefaultRotY, Zoom: 1.2},
	},
	"default": {
		Points: DefaultPoints, Radius: DefaultRadius,
		View: ViewConfig{RotX: DefaultRotX, RotY: DefaultRotY, Zoom: DefaultZoom},
	},
	"medium": {
		Points: 24, Radius: 1,
		View: ViewConfig{RotX: 0.5, RotY: 0.3, Zoom: DefaultZoom},
	},
	"dense": {
		Points: 100, Radius: 1,
		View: ViewConfig{RotX: 0.2, RotY: 0.8, Zoom: DefaultZoom, Theme: "minimal"},
	},
	"spin": {
		Points: 32, Randomize: true, Radius: 1,
		View: ViewConfig{RotX: DefaultRotX, RotY: DefaultRotY, Zoom: DefaultZoom, Theme: "ocean"},
	},
	"earth": {
		Points: 60, Radius: 6371,
		View: ViewConfig{RotX: 0.4, RotY: 0.2, Zoom: DefaultZoom, Theme: "retro"},
	},
}

// GetPreset returns a normalized copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Normalize()
	return &cfg
}

// MustPreset is GetPreset with an error for unknown names.
func MustPreset(name string) (*Config, error) {
	cfg := GetPreset(name)
	if cfg == nil {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
