package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no samples exist for a series.
	ErrNotFound = errors.New("no samples for series")
)

// Series names used by the statistics display.
const (
	SeriesTemperature = "temperature"
	SeriesHumidity    = "humidity"
	SeriesPressure    = "pressure"
)

// SampleHistory holds the insertion-ordered samples of one series.
type SampleHistory struct {
	Samples []float64
}

// MemoryStore is an in-memory, append-only sample store keyed by series name.
// Samples are never pruned. It is not safe for concurrent use.
type MemoryStore struct {
	// key: series name, value: history
	data map[string]*SampleHistory
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]*SampleHistory),
	}
}

// Append adds a sample to the end of a series.
func (s *MemoryStore) Append(series string, v float64) {
	history, ok := s.data[series]
	if !ok {
		history = &SampleHistory{}
		s.data[series] = history
	}

	history.Samples = append(history.Samples, v)
}

// Samples returns the retained samples of a series, oldest first.
// The returned slice must not be modified.
func (s *MemoryStore) Samples(series string) ([]float64, error) {
	history, ok := s.data[series]
	if !ok || len(history.Samples) == 0 {
		return nil, fmt.Errorf("%s: %w", series, ErrNotFound)
	}
	return history.Samples, nil
}

// Len returns the number of retained samples of a series.
func (s *MemoryStore) Len(series string) int {
	history, ok := s.data[series]
	if !ok {
		return 0
	}
	return len(history.Samples)
}
