package common

import "strconv"

// FormatValue renders a measurement verbatim, using the shortest
// representation that round-trips (80 stays "80", 30.4 stays "30.4").
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatRounded renders v rounded to one decimal place. Ties on the exact
// binary value round to even, so 0.25 becomes "0.2" and 93.23 becomes "93.2".
func FormatRounded(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
