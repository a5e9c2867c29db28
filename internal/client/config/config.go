package config

import "time"

// Config holds runtime settings for the dsaccounts client.
//
// Fields:
//   - StoreDriver: key-value backend, one of "sqlite", "file" or "memory".
//   - StorePath: database or JSON file backing the store (unused by memory).
//   - LandingPage: destination reached after a successful sign-up or sign-in.
//   - SignUpRedirectDelay, SignInRedirectDelay: pause between the success
//     message and the navigation.
//   - MessageClearDelay: how long a success message stays visible.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	StoreDriver         string
	StorePath           string
	LandingPage         string
	SignUpRedirectDelay time.Duration
	SignInRedirectDelay time.Duration
	MessageClearDelay   time.Duration
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StoreDriver = "sqlite"
	c.StorePath = "ds_store.db"
	c.LandingPage = "dashboard.html"
	c.SignUpRedirectDelay = 1000 * time.Millisecond
	c.SignInRedirectDelay = 800 * time.Millisecond
	c.MessageClearDelay = 2500 * time.Millisecond
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
