package weather

// Measurement is a single temperature/humidity/pressure triple as pushed by a
// WeatherData to its observers. No units or ranges are enforced.
type Measurement struct {
	Temperature float64 `yaml:"temperature"`
	Humidity    float64 `yaml:"humidity"`
	Pressure    float64 `yaml:"pressure"`
}

// Summary holds the average, minimum and maximum of a series of values.
type Summary struct {
	Avg float64
	Min float64
	Max float64
}
