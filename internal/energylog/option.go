package energylog

import "time"

// config holds the tunables of the service.
type config struct {
	now func() time.Time
}

// Option customizes the service created by New.
type Option func(*config)

func defaultConfig() config {
	return config{now: time.Now}
}

// WithTimeSource replaces the wall clock used to stamp receipt times.
// Readings are still forced to be strictly increasing.
func WithTimeSource(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}
