package config

// Presets are named lesson setups keyed by model then preset name.
var Presets = map[string]map[string]*Config{
	"projectile": {
		"moon": {
			Model: "projectile", Duration: 30,
			Params: map[string]float64{"gravity": 1.62, "v0": 12},
		},
		"vacuum": {
			Model: "projectile", Duration: 20,
			Params: map[string]float64{"drag": 0, "v0": 25, "angle": 45},
		},
		"headwind": {
			Model: "projectile", Duration: 20,
			Params: map[string]float64{"drag": 1, "k": 0.05, "v0": 30},
		},
	},
	"kepler": {
		"circular": {
			Model: "kepler", Duration: 60,
			Params: map[string]float64{"a": 1.5, "e": 0},
		},
		"halley": {
			Model: "kepler", Duration: 120,
			Params: map[string]float64{"a": 2.5, "e": 0.9},
		},
	},
	"snell": {
		"air-water": {
			Model: "snell",
			Params: map[string]float64{"n1": 1.00, "n2": 1.33, "theta1": 40},
		},
		"glass-air": {
			Model: "snell",
			Params: map[string]float64{"n1": 1.50, "n2": 1.00, "theta1": 50},
		},
		"diamond-air": {
			Model: "snell",
			Params: map[string]float64{"n1": 2.42, "n2": 1.00, "theta1": 30},
		},
	},
	"tide": {
		"spring": {
			Model: "tide", Duration: 60,
			Params: map[string]float64{"sun_on": 1, "sun_angle": 0, "moon_angle": 0},
		},
		"neap": {
			Model: "tide", Duration: 60,
			Params: map[string]float64{"sun_on": 1, "sun_angle": 90, "moon_angle": 0},
		},
	},
	"photosynthesis": {
		"optimal": {
			Model: "photosynthesis",
			Params: map[string]float64{"sunlight": 100, "co2": 100, "water": 100, "temp": 25},
		},
		"drought": {
			Model: "photosynthesis",
			Params: map[string]float64{"sunlight": 90, "co2": 60, "water": 10, "temp": 34},
		},
	},
	"market": {
		"high-demand": {
			Model: "market",
			Params: map[string]float64{"demand": 90, "supply": 40},
		},
		"high-supply": {
			Model: "market",
			Params: map[string]float64{"demand": 40, "supply": 90},
		},
	},
	"probability": {
		"classroom-dice": {
			Model: "probability", Duration: 40,
			Params: map[string]float64{"experiment": 1, "trials": 500, "rate": 25},
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
