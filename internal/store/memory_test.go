package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendUnbounded(t *testing.T) {
	s := NewMemoryStore()
	for i := 0; i < 1000; i++ {
		s.Append(SeriesTemperature, float64(i))
	}

	samples, err := s.Samples(SeriesTemperature)
	require.NoError(t, err)
	assert.Len(t, samples, 1000)
	assert.Equal(t, 0.0, samples[0])
	assert.Equal(t, 999.0, samples[999])
}

func TestSeriesAreIndependent(t *testing.T) {
	s := NewMemoryStore()
	s.Append(SeriesTemperature, 80)
	s.Append(SeriesHumidity, 65)
	s.Append(SeriesHumidity, 70)

	assert.Equal(t, 1, s.Len(SeriesTemperature))
	assert.Equal(t, 2, s.Len(SeriesHumidity))
	assert.Equal(t, 0, s.Len(SeriesPressure))

	samples, err := s.Samples(SeriesHumidity)
	require.NoError(t, err)
	assert.Equal(t, []float64{65, 70}, samples)
}

func TestMissingSeries(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Samples(SeriesPressure)
	assert.ErrorIs(t, err, ErrNotFound)
}
