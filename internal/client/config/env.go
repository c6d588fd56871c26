package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "STUDEAF"

// parseEnv overlays Config with STUDEAF_* variables, e.g. STUDEAF_BASE_URL.
// A bare number for STUDEAF_REQUEST_TIMEOUT is read as seconds. Invalid
// values panic like the other loaders.
func parseEnv(cfg *Config) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	strs := map[string]*string{
		"base_url":     &cfg.BaseURL,
		"data_dir":     &cfg.DataDir,
		"store_driver": &cfg.StoreDriver,
		"redis_url":    &cfg.RedisURL,
		"log_level":    &cfg.LogLevel,
	}
	for key, dst := range strs {
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}

	if v.IsSet("request_timeout") {
		d, err := parseTimeout(v.GetString("request_timeout"))
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
}

func parseTimeout(s string) (time.Duration, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid request timeout %q: %w", s, err)
	}
	return d, nil
}
