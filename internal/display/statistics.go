package display

import (
	"fmt"
	"io"

	"github.com/i474232898/weather-station/internal/common"
	"github.com/i474232898/weather-station/internal/store"
	"github.com/i474232898/weather-station/internal/weather"
)

// Statistics is the avg/min/max of every measured quantity.
type Statistics struct {
	Temperature weather.Summary
	Humidity    weather.Summary
	Pressure    weather.Summary
}

// StatisticsDisplay renders avg/min/max over every value seen since registration.
type StatisticsDisplay struct {
	handle
	out     io.Writer
	history *store.MemoryStore
}

var _ Display = (*StatisticsDisplay)(nil)

// NewStatisticsDisplay creates a StatisticsDisplay. Its history is never pruned.
func NewStatisticsDisplay(out io.Writer) *StatisticsDisplay {
	return &StatisticsDisplay{
		handle:  newHandle("statistics"),
		out:     out,
		history: store.NewMemoryStore(),
	}
}

// RegisterStatistics creates a StatisticsDisplay already registered with s.
func RegisterStatistics(s weather.Subject, out io.Writer) *StatisticsDisplay {
	d := NewStatisticsDisplay(out)
	d.attach(s, d)
	return d
}

func (d *StatisticsDisplay) Update(temperature, humidity, pressure float64) {
	d.history.Append(store.SeriesTemperature, temperature)
	d.history.Append(store.SeriesHumidity, humidity)
	d.history.Append(store.SeriesPressure, pressure)
	d.updates++
	d.display()
}

func (d *StatisticsDisplay) display() {
	stats := d.Summaries()
	printSummary(d.out, "temperature", stats.Temperature)
	printSummary(d.out, "humidity", stats.Humidity)
	printSummary(d.out, "pressure", stats.Pressure)
}

func printSummary(out io.Writer, quantity string, s weather.Summary) {
	fmt.Fprintf(out, "Avg/Min/Max %s: %s / %s / %s\n",
		quantity,
		common.FormatRounded(s.Avg),
		common.FormatValue(s.Min),
		common.FormatValue(s.Max),
	)
}

// Summaries recomputes the statistics over the full history.
func (d *StatisticsDisplay) Summaries() Statistics {
	return Statistics{
		Temperature: d.summarize(store.SeriesTemperature),
		Humidity:    d.summarize(store.SeriesHumidity),
		Pressure:    d.summarize(store.SeriesPressure),
	}
}

func (d *StatisticsDisplay) summarize(series string) weather.Summary {
	samples, err := d.history.Samples(series)
	if err != nil {
		return weather.Summary{}
	}
	return weather.Summarize(samples)
}

// Samples returns how many values of each quantity have been recorded.
func (d *StatisticsDisplay) Samples() int {
	return d.history.Len(store.SeriesTemperature)
}

func (d *StatisticsDisplay) Detach() error {
	return d.detach(d)
}
