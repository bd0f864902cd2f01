package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// env должен перекрывать значения, уже пришедшие из yaml.
func TestApplyEnvBeatsYaml(t *testing.T) {
	t.Setenv("SCAN_PAGES", "9")
	t.Setenv("KV_BACKEND", "redis")
	t.Setenv("VOL_SLOPE", "1.7")
	t.Setenv("KLINE_DAYS", "30")

	cfg := Config{
		ScanPages: 5,
		KVBackend: "postgres",
		VolSlope:  1.2,
		KlineDays: 10,
	}
	applyEnv(&cfg)

	assert.Equal(t, 9, cfg.ScanPages)
	assert.Equal(t, "redis", cfg.KVBackend)
	assert.Equal(t, 1.7, cfg.VolSlope)
	assert.Equal(t, 30, cfg.KlineDays)
}

func TestApplyEnvKeepsYamlWhenUnset(t *testing.T) {
	t.Setenv("SCAN_PAGES", "")
	t.Setenv("KV_BACKEND", "")

	cfg := Config{ScanPages: 7, KVBackend: "postgres", CacheChunkSize: 400_000}
	applyEnv(&cfg)

	assert.Equal(t, 7, cfg.ScanPages)
	assert.Equal(t, "postgres", cfg.KVBackend)
	assert.Equal(t, 400_000, cfg.CacheChunkSize)
}

func TestApplyEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("SCAN_PAGES", "many")
	t.Setenv("VOL_STDEV", "wide")

	cfg := Config{ScanPages: 5, VolStdev: 0.55}
	applyEnv(&cfg)

	assert.Equal(t, 5, cfg.ScanPages)
	assert.Equal(t, 0.55, cfg.VolStdev)
}

func TestDurationFromEnv(t *testing.T) {
	t.Setenv("LISTINGS_BUDGET", "90s")
	assert.Equal(t, 90*time.Second, durationFromEnv("LISTINGS_BUDGET", "4m"))

	t.Setenv("LISTINGS_BUDGET", "")
	assert.Equal(t, 4*time.Minute, durationFromEnv("LISTINGS_BUDGET", "4m"))
}
