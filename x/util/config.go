package util

import (
	"os"
	"time"

	"github.com/adhocore/gronx"
	"github.com/go-yaml/yaml"
	"github.com/pkg/errors"

	"github.com/totegamma/timeline/core"
)

const (
	DataBackendPostgres = "postgres"
	DataBackendPebble   = "pebble"

	DefaultSweepSchedule = "*/10 * * * *"
)

// Config is the timeline server configuration
type Config struct {
	Server   Server   `yaml:"server"`
	Timeline Timeline `yaml:"timeline"`
}

type Server struct {
	Dsn           string `yaml:"dsn"`
	RedisAddr     string `yaml:"redisAddr"`
	RedisDB       int    `yaml:"redisDB"`
	MemcachedAddr string `yaml:"memcachedAddr"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
	ListenAddr    string `yaml:"listenAddr"`
	DataBackend   string `yaml:"dataBackend"`
	DataPath      string `yaml:"dataPath"`
	SweepSchedule string `yaml:"sweepSchedule"`
}

type Timeline struct {
	CacheMaxAgeDays int `yaml:"cacheMaxAgeDays"`
	MaxDataParts    int `yaml:"maxDataParts"`
}

// Load loads config from given path
func (c *Config) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "failed to open configuration file")
	}
	defer f.Close()

	err = yaml.NewDecoder(f).Decode(c)
	if err != nil {
		return errors.Wrap(err, "failed to load configuration file")
	}

	switch c.Server.DataBackend {
	case "":
		c.Server.DataBackend = DataBackendPostgres
	case DataBackendPostgres, DataBackendPebble:
	default:
		return errors.Errorf("unknown data backend %q", c.Server.DataBackend)
	}

	if c.Server.DataBackend == DataBackendPebble && c.Server.DataPath == "" {
		return errors.New("dataPath is required for the pebble data backend")
	}

	if c.Server.SweepSchedule == "" {
		c.Server.SweepSchedule = DefaultSweepSchedule
	}
	if !gronx.IsValid(c.Server.SweepSchedule) {
		return errors.Errorf("invalid sweep schedule %q", c.Server.SweepSchedule)
	}

	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = ":8000"
	}

	return nil
}

// Core returns the settings the services consume
func (c Config) Core() core.Config {
	return core.Config{
		MaxDataParts: c.Timeline.MaxDataParts,
		CacheMaxAge:  time.Duration(c.Timeline.CacheMaxAgeDays) * 24 * time.Hour,
	}
}
