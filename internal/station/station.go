package station

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/i474232898/weather-station/internal/display"
	"github.com/i474232898/weather-station/internal/weather"
)

// Station wires one WeatherData to the current conditions, statistics and
// forecast displays and plays a Script through them.
type Station struct {
	data   *weather.WeatherData
	out    io.Writer
	logger *zap.SugaredLogger
}

// New creates a Station whose displays render to out.
func New(out io.Writer, logger *zap.SugaredLogger) *Station {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Station{
		data:   weather.NewWeatherData(logger),
		out:    out,
		logger: logger,
	}
}

// WeatherData returns the station's subject.
func (s *Station) WeatherData() *weather.WeatherData {
	return s.data
}

// Run registers the displays, feeds the registered measurements, removes
// every display and then feeds the detached measurements.
func (s *Station) Run(script Script) error {
	displays := []display.Display{
		display.RegisterCurrentConditions(s.data, s.out),
		display.RegisterStatistics(s.data, s.out),
		display.RegisterForecast(s.data, s.out),
	}
	for _, d := range displays {
		s.logger.Infow("display registered", "display", d.Name(), "id", d.ID())
	}

	for _, m := range script.Registered {
		s.data.SetMeasurements(m.Temperature, m.Humidity, m.Pressure)
	}

	for _, d := range displays {
		if err := s.data.RemoveObserver(d); err != nil {
			return fmt.Errorf("remove %s display: %w", d.Name(), err)
		}
		s.logger.Infow("display removed", "display", d.Name(), "id", d.ID(), "updates", d.Updates())
	}

	for _, m := range script.Detached {
		s.data.SetMeasurements(m.Temperature, m.Humidity, m.Pressure)
	}

	s.logger.Infow("script finished",
		"registered", len(script.Registered),
		"detached", len(script.Detached),
		"observers", s.data.Observers(),
	)
	return nil
}
