package station

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/i474232898/weather-station/internal/weather"
)

// Script is the sequence of measurements a Station plays.
// Registered measurements are fed while all displays are registered,
// Detached ones after every display has been removed.
type Script struct {
	Registered []weather.Measurement `yaml:"registered"`
	Detached   []weather.Measurement `yaml:"detached"`
}

// DefaultScript returns the built-in demo sequence.
func DefaultScript() Script {
	return Script{
		Registered: []weather.Measurement{
			{Temperature: 80, Humidity: 65, Pressure: 30.4},
			{Temperature: 82, Humidity: 70, Pressure: 29.2},
			{Temperature: 78, Humidity: 90, Pressure: 29.2},
		},
		Detached: []weather.Measurement{
			{Temperature: 120, Humidity: 100, Pressure: 1000},
		},
	}
}

// LoadScript reads a YAML script from path.
func LoadScript(path string) (Script, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("read script: %w", err)
	}

	var s Script
	if err := yaml.UnmarshalStrict(f, &s); err != nil {
		return Script{}, fmt.Errorf("parse script %s: %w", path, err)
	}
	return s, nil
}
