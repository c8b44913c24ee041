package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/totegamma/timeline/core"
)

func writeConfig(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  dsn: "host=localhost user=postgres dbname=timeline"
  redisAddr: "localhost:6379"
  memcachedAddr: "localhost:11211"
timeline:
  cacheMaxAgeDays: 7
`)

	var config Config
	assert.NoError(t, config.Load(path))

	assert.Equal(t, "localhost:6379", config.Server.RedisAddr)
	assert.Equal(t, DataBackendPostgres, config.Server.DataBackend)
	assert.Equal(t, DefaultSweepSchedule, config.Server.SweepSchedule)
	assert.Equal(t, ":8000", config.Server.ListenAddr)

	coreConfig := config.Core()
	assert.Equal(t, 7*24*time.Hour, coreConfig.MaxAge())
	assert.Equal(t, core.DefaultMaxDataParts, coreConfig.MaxParts())
}

func TestLoadDefaultsWhenTimelineSectionIsMissing(t *testing.T) {
	path := writeConfig(t, `
server:
  dsn: "host=localhost"
`)

	var config Config
	assert.NoError(t, config.Load(path))
	assert.Equal(t, core.DefaultCacheMaxAge, config.Core().MaxAge())
}

func TestLoadDataBackend(t *testing.T) {
	var config Config
	assert.Error(t, config.Load(writeConfig(t, "server:\n  dataBackend: s3\n")))

	config = Config{}
	assert.Error(t, config.Load(writeConfig(t, "server:\n  dataBackend: pebble\n")))

	config = Config{}
	assert.NoError(t, config.Load(writeConfig(t, "server:\n  dataBackend: pebble\n  dataPath: /var/lib/timeline\n")))
	assert.Equal(t, DataBackendPebble, config.Server.DataBackend)
}

func TestLoadSweepSchedule(t *testing.T) {
	var config Config
	assert.NoError(t, config.Load(writeConfig(t, "server:\n  sweepSchedule: \"0 3 * * *\"\n")))
	assert.Equal(t, "0 3 * * *", config.Server.SweepSchedule)

	config = Config{}
	assert.Error(t, config.Load(writeConfig(t, "server:\n  sweepSchedule: \"every day\"\n")))
}

func TestLoadMissingFile(t *testing.T) {
	var config Config
	assert.Error(t, config.Load(filepath.Join(t.TempDir(), "missing.yaml")))
}
