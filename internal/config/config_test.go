package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_NAME", "APP_ENV", "NODE_ENV", "HOST", "PORT", "METRICS_SAMPLE_INTERVAL", "METRICS_EXPORT_TIMEOUT", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(k, "")
	}

	c := Load()

	assert.Equal(t, "safenet", c.AppName)
	assert.Equal(t, "0.0.0.0:3000", c.Addr())
	assert.False(t, c.TestMode())
	assert.Equal(t, 10*time.Second, c.Metrics.SampleInterval)
	assert.Equal(t, 5*time.Second, c.Metrics.ExportTimeout)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("NODE_ENV", "")
	t.Setenv("PORT", "8081")
	t.Setenv("APP_ENV", "test")
	t.Setenv("METRICS_SAMPLE_INTERVAL", "250ms")
	t.Setenv("METRICS_EXPORT_TIMEOUT", "3")

	c := Load()

	assert.Equal(t, "0.0.0.0:8081", c.Addr())
	assert.True(t, c.TestMode())
	assert.Equal(t, 250*time.Millisecond, c.Metrics.SampleInterval)
	assert.Equal(t, 3*time.Second, c.Metrics.ExportTimeout)
}

func TestNodeEnvEnablesTestMode(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("NODE_ENV", "test")

	assert.True(t, Load().TestMode())
}

func TestInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	assert.Equal(t, 10*time.Second, Load().ShutdownTimeout)
}
