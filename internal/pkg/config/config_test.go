package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_STRING_KEY", "value")

	assert.Equal(t, "value", GetEnv("TEST_STRING_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("TEST_MISSING_KEY", "fallback"))
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("TEST_INT_KEY", "42")
	t.Setenv("TEST_BAD_INT_KEY", "not-a-number")

	assert.Equal(t, 42, GetEnvAsInt("TEST_INT_KEY", 7))
	assert.Equal(t, 7, GetEnvAsInt("TEST_BAD_INT_KEY", 7))
	assert.Equal(t, 7, GetEnvAsInt("TEST_MISSING_KEY", 7))
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_BOOL_KEY", "true")
	t.Setenv("TEST_BAD_BOOL_KEY", "yep")

	assert.True(t, GetEnvAsBool("TEST_BOOL_KEY", false))
	assert.False(t, GetEnvAsBool("TEST_BAD_BOOL_KEY", false))
}

func TestGetEnvAsFloat(t *testing.T) {
	t.Setenv("TEST_FLOAT_KEY", "10.5")

	assert.Equal(t, 10.5, GetEnvAsFloat("TEST_FLOAT_KEY", 1.0))
	assert.Equal(t, 1.0, GetEnvAsFloat("TEST_MISSING_KEY", 1.0))
}

func TestLoadConfigFromEnvDefaults(t *testing.T) {
	cfg := loadConfigFromEnv()

	assert.Equal(t, 10.0, cfg.Tracking.JitterFloorM)
	assert.Equal(t, 24, cfg.Tracking.LocationTTLHours)
	assert.Equal(t, "inspections", cfg.Storage.Bucket)
	assert.Equal(t, "dealerdrive", cfg.JWT.Issuer)
}
