// internal/config/config.go
package config

type Config struct {
	Link    LinkConfig    `yaml:"link"`
	Poll    PollConfig    `yaml:"poll"`
	Vehicle VehicleConfig `yaml:"vehicle"`
}

// ---- LINK ----

// LinkConfig covers the serial link. Baud rate, framing and the per-read
// timeout are protocol-fixed and deliberately not configurable.
type LinkConfig struct {
	Port string `yaml:"port"`

	// Retries is the retry budget on top of the first attempt.
	// Pointer so an explicit 0 differs from unset.
	Retries *int `yaml:"retries"`

	// Debug enables TX/RX frame tracing.
	Debug bool `yaml:"debug"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

// ---- VEHICLE ----

type VehicleConfig struct {
	// TireDiameterIn feeds the RPM-to-MPH conversion. Inches.
	TireDiameterIn float64 `yaml:"tire_diameter_in"`
}
