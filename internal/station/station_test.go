package station

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/i474232898/weather-station/internal/weather"
)

const defaultOutput = `Current conditions: 80 F degrees and 65 [%] humidity and pressure 30.4
Avg/Min/Max temperature: 80.0 / 80 / 80
Avg/Min/Max humidity: 65.0 / 65 / 65
Avg/Min/Max pressure: 30.4 / 30.4 / 30.4
Forecast temperature: 93.2
Forecast humidity: 6.5
Forecast pressure: 32.0
Current conditions: 82 F degrees and 70 [%] humidity and pressure 29.2
Avg/Min/Max temperature: 81.0 / 80 / 82
Avg/Min/Max humidity: 67.5 / 65 / 70
Avg/Min/Max pressure: 29.8 / 29.2 / 30.4
Forecast temperature: 95.5
Forecast humidity: 7.0
Forecast pressure: 31.3
Current conditions: 78 F degrees and 90 [%] humidity and pressure 29.2
Avg/Min/Max temperature: 80.0 / 78 / 82
Avg/Min/Max humidity: 75.0 / 65 / 90
Avg/Min/Max pressure: 29.6 / 29.2 / 30.4
Forecast temperature: 93.7
Forecast humidity: 9.0
Forecast pressure: 30.9
`

func TestRunDefaultScript(t *testing.T) {
	var out bytes.Buffer
	s := New(&out, zaptest.NewLogger(t).Sugar())

	require.NoError(t, s.Run(DefaultScript()))

	assert.Equal(t, defaultOutput, out.String())
	assert.Equal(t, 0, s.WeatherData().Observers())
	assert.Equal(t, weather.Measurement{Temperature: 120, Humidity: 100, Pressure: 1000}, s.WeatherData().Measurements())
}

func TestRunDetachedOnlyProducesNoOutput(t *testing.T) {
	var out bytes.Buffer
	s := New(&out, zaptest.NewLogger(t).Sugar())

	script := Script{
		Detached: []weather.Measurement{
			{Temperature: 120, Humidity: 100, Pressure: 1000},
			{Temperature: -40, Humidity: 0, Pressure: 0},
		},
	}
	require.NoError(t, s.Run(script))
	assert.Empty(t, out.String())
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	content := `registered:
  - temperature: 80
    humidity: 65
    pressure: 30.4
detached:
  - {temperature: 120, humidity: 100, pressure: 1000}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	script, err := LoadScript(path)
	require.NoError(t, err)
	assert.Equal(t, []weather.Measurement{{Temperature: 80, Humidity: 65, Pressure: 30.4}}, script.Registered)
	assert.Equal(t, []weather.Measurement{{Temperature: 120, Humidity: 100, Pressure: 1000}}, script.Detached)
}

func TestLoadScriptErrors(t *testing.T) {
	_, err := LoadScript(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("registered:\n  - wind: 3\n"), 0o600))
	_, err = LoadScript(path)
	assert.Error(t, err)
}

func TestDefaultScriptMatchesLoadedEquivalent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default.yaml")
	content := `registered:
  - {temperature: 80, humidity: 65, pressure: 30.4}
  - {temperature: 82, humidity: 70, pressure: 29.2}
  - {temperature: 78, humidity: 90, pressure: 29.2}
detached:
  - {temperature: 120, humidity: 100, pressure: 1000}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	script, err := LoadScript(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultScript(), script)
}
