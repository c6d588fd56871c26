package config

import "time"

// Store drivers.
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Config holds runtime settings for the StuDeaf CLI.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	DataDir        string
	StoreDriver    string
	RedisURL       string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://gelatik-virid.vercel.app"
	c.RequestTimeout = 60 * time.Second
	c.DataDir = "~/.studeaf"
	c.StoreDriver = DriverSQLite
	c.RedisURL = ""
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON, the environment and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
