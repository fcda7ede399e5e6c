// internal/config/normalize.go
package config

// Defaults applied by Normalize.
const (
	DefaultRetries        = 2
	DefaultIntervalMs     = 500
	DefaultTireDiameterIn = 12
)

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Link.Retries == nil {
		r := DefaultRetries
		cfg.Link.Retries = &r
	}

	if cfg.Poll.IntervalMs == 0 {
		cfg.Poll.IntervalMs = DefaultIntervalMs
	}

	if cfg.Vehicle.TireDiameterIn == 0 {
		cfg.Vehicle.TireDiameterIn = DefaultTireDiameterIn
	}
}
