package config

var Presets = map[string]*Config{
	"basic": {
		Name: "basic",
		Elements: []ElementConfig{
			{Kind: "resistor", Label: "R1", Value: 100},
			{Kind: "current_source", Label: "I1", Value: 0.1},
		},
	},
	"parallel": {
		Name: "parallel",
		Elements: []ElementConfig{
			{Kind: "resistor", Label: "R1", Value: 50},
			{Kind: "resistor", Label: "R2", Value: 50},
			{Kind: "current_source", Label: "I1", Value: 1.0},
		},
	},
	"loaded": {
		Name: "loaded",
		Elements: []ElementConfig{
			{Kind: "resistor", Label: "R1", Value: 220},
			{Kind: "capacitor", Label: "C1", Value: 1e-6},
			{Kind: "inductor", Label: "L1", Value: 1e-3},
			{Kind: "current_source", Label: "I1", Value: 0.05},
		},
	},
	"open": {
		// No resistive path: solving fails with a singular matrix.
		Name: "open",
		Elements: []ElementConfig{
			{Kind: "capacitor", Label: "C1", Value: 1e-6},
			{Kind: "current_source", Label: "I1", Value: 0.1},
		},
	},
	"ramp": {
		Name: "ramp",
		Elements: []ElementConfig{
			{Kind: "resistor", Label: "R1", Value: 100},
			{Kind: "current_source", Label: "I1", Value: 0.1},
		},
		Sweep: &SweepConfig{Element: "I1", From: 0, To: 1.0, Points: DefaultPoints},
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
