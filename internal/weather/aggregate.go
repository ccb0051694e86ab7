package weather

// Summarize computes the arithmetic mean, minimum and maximum of values.
// An empty slice yields the zero Summary.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	var sum float64
	lo, hi := values[0], values[0]
	for _, v := range values {
		sum += v
		lo = min(lo, v)
		hi = max(hi, v)
	}

	return Summary{
		Avg: sum / float64(len(values)),
		Min: lo,
		Max: hi,
	}
}
