package config

import "sort"

// Presets are classic members of the hypotrochoid family. Every entry
// satisfies the curve package's validation.
var Presets = map[string]*Config{
	"deltoid": {
		Fixed: 3, Rolling: 1, Offset: 1,
		Steps: DefaultSteps, TickMS: DefaultTickMS, Theme: DefaultTheme,
	},
	"astroid": {
		Fixed: 4, Rolling: 1, Offset: 1,
		Steps: DefaultSteps, TickMS: DefaultTickMS, Theme: DefaultTheme,
	},
	"ellipse": {
		Fixed: 2, Rolling: 1, Offset: 0.5,
		Steps: DefaultSteps, TickMS: DefaultTickMS, Theme: DefaultTheme,
	},
	// With R = 2r and d = r the trace collapses to a diameter of the
	// fixed circle.
	"diameter": {
		Fixed: 2, Rolling: 1, Offset: 1,
		Steps: DefaultSteps, TickMS: DefaultTickMS, Theme: DefaultTheme,
	},
	// R/r = 5/3 closes after three turns, so these use a longer domain
	// per revolution to keep the trace dense.
	"star": {
		Fixed: 5, Rolling: 3, Offset: 3,
		Steps: 900, TickMS: DefaultTickMS, Theme: DefaultTheme,
	},
	"rounded-star": {
		Fixed: 5, Rolling: 3, Offset: 1.5,
		Steps: 900, TickMS: DefaultTickMS, Theme: DefaultTheme,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
