package display

import (
	"fmt"
	"io"

	"github.com/i474232898/weather-station/internal/common"
	"github.com/i474232898/weather-station/internal/weather"
)

// ForecastDisplay renders a forecast derived from the latest measurement only.
type ForecastDisplay struct {
	handle
	out  io.Writer
	last weather.Measurement
}

var _ Display = (*ForecastDisplay)(nil)

func NewForecastDisplay(out io.Writer) *ForecastDisplay {
	return &ForecastDisplay{
		handle: newHandle("forecast"),
		out:    out,
	}
}

// RegisterForecast creates a ForecastDisplay already registered with s.
func RegisterForecast(s weather.Subject, out io.Writer) *ForecastDisplay {
	d := NewForecastDisplay(out)
	d.attach(s, d)
	return d
}

func (d *ForecastDisplay) Update(temperature, humidity, pressure float64) {
	d.last = weather.Measurement{
		Temperature: temperature,
		Humidity:    humidity,
		Pressure:    pressure,
	}
	d.updates++
	d.display()
}

func (d *ForecastDisplay) display() {
	f := d.Forecast()
	fmt.Fprintf(d.out, "Forecast temperature: %s\n", common.FormatRounded(f.Temperature))
	fmt.Fprintf(d.out, "Forecast humidity: %s\n", common.FormatRounded(f.Humidity))
	fmt.Fprintf(d.out, "Forecast pressure: %s\n", common.FormatRounded(f.Pressure))
}

// Forecast returns the unrounded forecast for the latest measurement.
func (d *ForecastDisplay) Forecast() weather.Measurement {
	return ComputeForecast(d.last)
}

// ComputeForecast applies the fixed linear forecast transform to m.
// Products are converted explicitly so they are rounded before summing and
// never fused into a multiply-add.
func ComputeForecast(m weather.Measurement) weather.Measurement {
	t, h, p := m.Temperature, m.Humidity, m.Pressure
	return weather.Measurement{
		Temperature: t + float64(0.11*h) + float64(0.2*p),
		Humidity:    h - float64(0.9*h),
		Pressure:    p + float64(0.1*t) - float64(0.21*p),
	}
}

func (d *ForecastDisplay) Detach() error {
	return d.detach(d)
}
