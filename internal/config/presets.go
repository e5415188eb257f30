package config

import "sort"

// Presets are named launches. Gravity values are surface gravity in m/s².
var Presets = map[string]LaunchConfig{
	"default":   {Velocity: 50, Angle: 75, Gravity: 9.8, Samples: 200},
	"lob":       {Velocity: 40, Angle: 80, Gravity: 9.8, Samples: 200},
	"flat":      {Velocity: 60, Angle: 15, Gravity: 9.8, Samples: 200},
	"max-range": {Velocity: 50, Angle: 45, Gravity: 9.8, Samples: 200},
	"moon":      {Velocity: 50, Angle: 75, Gravity: 1.62, Samples: 300},
	"mars":      {Velocity: 50, Angle: 75, Gravity: 3.71, Samples: 250},
	"jupiter":   {Velocity: 50, Angle: 75, Gravity: 24.79, Samples: 120},
}

func GetPreset(name string) *LaunchConfig {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return &p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
