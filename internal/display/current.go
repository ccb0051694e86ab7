package display

import (
	"fmt"
	"io"

	"github.com/i474232898/weather-station/internal/common"
	"github.com/i474232898/weather-station/internal/weather"
)

// CurrentConditionsDisplay renders the latest measurement as received.
type CurrentConditionsDisplay struct {
	handle
	out  io.Writer
	last weather.Measurement
}

var _ Display = (*CurrentConditionsDisplay)(nil)

func NewCurrentConditionsDisplay(out io.Writer) *CurrentConditionsDisplay {
	return &CurrentConditionsDisplay{
		handle: newHandle("current conditions"),
		out:    out,
	}
}

// RegisterCurrentConditions creates a CurrentConditionsDisplay already registered with s.
func RegisterCurrentConditions(s weather.Subject, out io.Writer) *CurrentConditionsDisplay {
	d := NewCurrentConditionsDisplay(out)
	d.attach(s, d)
	return d
}

func (d *CurrentConditionsDisplay) Update(temperature, humidity, pressure float64) {
	d.last = weather.Measurement{
		Temperature: temperature,
		Humidity:    humidity,
		Pressure:    pressure,
	}
	d.updates++
	d.display()
}

func (d *CurrentConditionsDisplay) display() {
	fmt.Fprintf(d.out, "Current conditions: %s F degrees and %s [%%] humidity and pressure %s\n",
		common.FormatValue(d.last.Temperature),
		common.FormatValue(d.last.Humidity),
		common.FormatValue(d.last.Pressure),
	)
}

// Last returns the most recent measurement received.
func (d *CurrentConditionsDisplay) Last() weather.Measurement {
	return d.last
}

func (d *CurrentConditionsDisplay) Detach() error {
	return d.detach(d)
}
