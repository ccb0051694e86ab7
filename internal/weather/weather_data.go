package weather

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// WeatherData is the measurement source. Every SetMeasurements call is
// delivered synchronously to the observers registered at that moment.
type WeatherData struct {
	current   Measurement
	observers []Observer
	logger    *zap.SugaredLogger
}

var _ Subject = (*WeatherData)(nil)

// NewWeatherData creates a WeatherData with no observers and a zero measurement.
func NewWeatherData(logger *zap.SugaredLogger) *WeatherData {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &WeatherData{
		observers: make([]Observer, 0),
		logger:    logger,
	}
}

// RegisterObserver appends o to the notification order.
func (w *WeatherData) RegisterObserver(o Observer) {
	if !isComparable(o) {
		w.logger.Warnw("registered observer is not comparable and cannot be removed",
			"observer", fmt.Sprintf("%T", o),
		)
	}
	w.observers = append(w.observers, o)
	w.logger.Debugw("observer registered",
		"observer", fmt.Sprintf("%T", o),
		"observers", len(w.observers),
	)
}

// RemoveObserver removes the first registration of o.
func (w *WeatherData) RemoveObserver(o Observer) error {
	if !isComparable(o) {
		return fmt.Errorf("remove %T: %w", o, ErrObserverNotComparable)
	}

	for i, registered := range w.observers {
		if !isComparable(registered) || registered != o {
			continue
		}

		// Fresh slice: an in-flight NotifyObservers snapshot must not shift.
		remaining := make([]Observer, 0, len(w.observers)-1)
		remaining = append(remaining, w.observers[:i]...)
		remaining = append(remaining, w.observers[i+1:]...)
		w.observers = remaining

		w.logger.Debugw("observer removed",
			"observer", fmt.Sprintf("%T", o),
			"observers", len(w.observers),
		)
		return nil
	}

	w.logger.Warnw("remove of unregistered observer ignored", "observer", fmt.Sprintf("%T", o))
	return fmt.Errorf("remove %T: %w", o, ErrObserverNotFound)
}

// NotifyObservers pushes the current measurement to the observers registered
// when the call starts. Changes to the registration set made from inside an
// Update take effect on the next notification.
func (w *WeatherData) NotifyObservers() {
	snapshot := w.observers
	m := w.current

	w.logger.Debugw("notifying observers",
		"observers", len(snapshot),
		"temperature", m.Temperature,
		"humidity", m.Humidity,
		"pressure", m.Pressure,
	)

	for _, o := range snapshot {
		o.Update(m.Temperature, m.Humidity, m.Pressure)
	}
}

// SetMeasurements stores a new measurement and notifies all observers.
func (w *WeatherData) SetMeasurements(temperature, humidity, pressure float64) {
	w.current = Measurement{
		Temperature: temperature,
		Humidity:    humidity,
		Pressure:    pressure,
	}
	w.measurementsChanged()
}

func (w *WeatherData) measurementsChanged() {
	w.NotifyObservers()
}

// Measurements returns the most recently set measurement.
func (w *WeatherData) Measurements() Measurement {
	return w.current
}

// Observers returns the number of registrations, counting duplicates.
func (w *WeatherData) Observers() int {
	return len(w.observers)
}

// isComparable reports whether o can be used with == without panicking.
func isComparable(o Observer) bool {
	return reflect.ValueOf(o).Comparable()
}
