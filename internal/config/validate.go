// internal/config/validate.go
package config

import "fmt"

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg.Link.Retries != nil && *cfg.Link.Retries < 0 {
		return fmt.Errorf("config: link.retries must be >= 0, got %d", *cfg.Link.Retries)
	}

	if cfg.Poll.IntervalMs < 0 {
		return fmt.Errorf("config: poll.interval_ms must be >= 0, got %d", cfg.Poll.IntervalMs)
	}

	if cfg.Vehicle.TireDiameterIn < 0 {
		return fmt.Errorf("config: vehicle.tire_diameter_in must be >= 0, got %g", cfg.Vehicle.TireDiameterIn)
	}

	return nil
}
