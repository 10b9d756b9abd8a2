// internal/config/config.go
// Loader konfigurasi dari environment variables
package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

type Config struct {
	AppName   string
	AppEnv    string
	Host      string
	Port      string
	LogLevel  string
	LogFormat string

	Metrics struct {
		SampleInterval time.Duration
		ExportTimeout  time.Duration
	}

	ShutdownTimeout time.Duration
}

func Load() *Config {
	c := &Config{}
	c.AppName = getEnv("APP_NAME", "safenet")
	c.AppEnv = getEnv("APP_ENV", "development")
	// NODE_ENV=test masih dipakai oleh script CI lama
	if strings.EqualFold(os.Getenv("NODE_ENV"), "test") {
		c.AppEnv = "test"
	}
	c.Host = getEnv("HOST", "0.0.0.0")
	c.Port = getEnv("PORT", "3000")
	c.LogLevel = getEnv("LOG_LEVEL", "info")
	c.LogFormat = getEnv("LOG_FORMAT", "json")

	c.Metrics.SampleInterval = getEnvDuration("METRICS_SAMPLE_INTERVAL", 10*time.Second)
	c.Metrics.ExportTimeout = getEnvDuration("METRICS_EXPORT_TIMEOUT", 5*time.Second)

	c.ShutdownTimeout = getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second)

	if c.TestMode() {
		log.Println("[INFO] test mode: default runtime metrics disabled")
	}

	return c
}

// TestMode true kalau APP_ENV=test; collector runtime tidak dijalankan.
func (c *Config) TestMode() bool {
	return strings.EqualFold(c.AppEnv, "test")
}

// Addr alamat listen "host:port".
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var i int
		_, err := fmt.Sscanf(v, "%d", &i)
		if err == nil {
			return i
		}
	}
	return def
}

// getEnvDuration menerima "5s", "250ms", atau angka polos (detik).
func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if secs := getEnvInt(key, -1); secs > 0 {
		return time.Duration(secs) * time.Second
	}
	log.Printf("[WARN] invalid duration %s=%q, using %s", key, v, def)
	return def
}
