package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/agenticsorg/tvbrain/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:tvbrain.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Snapshot struct {
		Interval       time.Duration `yaml:"interval" json:"interval" jsonschema:"default=5m,description=Model snapshot interval"`
		ReplayInterval time.Duration `yaml:"replay_interval" json:"replay_interval" jsonschema:"default=15m,description=Experience replay consolidation interval"`
	} `yaml:"snapshot" json:"snapshot" jsonschema:"description=Auto-persistence configuration"`

	Learning domain.LearningConfig `yaml:"learning" json:"learning" jsonschema:"description=Learning engine parameters"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// Default returns a configuration with all defaults applied, used when no
// config file is given
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	// set defaults for server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:tvbrain.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// set defaults for auto-persistence
	if c.Snapshot.Interval == 0 {
		c.Snapshot.Interval = 5 * time.Minute
	}
	if c.Snapshot.ReplayInterval == 0 {
		c.Snapshot.ReplayInterval = 15 * time.Minute
	}

	// learning parameters default individually so partial configs work
	defaults := domain.DefaultLearningConfig()
	if c.Learning.LearningRate == 0 {
		c.Learning.LearningRate = defaults.LearningRate
	}
	if c.Learning.DiscountFactor == 0 {
		c.Learning.DiscountFactor = defaults.DiscountFactor
	}
	if c.Learning.ExplorationRate == 0 {
		c.Learning.ExplorationRate = defaults.ExplorationRate
	}
	if c.Learning.ExplorationMin == 0 {
		c.Learning.ExplorationMin = defaults.ExplorationMin
	}
	if c.Learning.ExplorationDecay == 0 {
		c.Learning.ExplorationDecay = defaults.ExplorationDecay
	}
	if c.Learning.BatchSize == 0 {
		c.Learning.BatchSize = defaults.BatchSize
	}
	if c.Learning.MemorySize == 0 {
		c.Learning.MemorySize = defaults.MemorySize
	}
	if c.Learning.EmbeddingDim == 0 {
		c.Learning.EmbeddingDim = defaults.EmbeddingDim
	}
	if c.Learning.SimilarityThreshold == 0 {
		c.Learning.SimilarityThreshold = defaults.SimilarityThreshold
	}
	if c.Learning.MinSessionMinutes == 0 {
		c.Learning.MinSessionMinutes = defaults.MinSessionMinutes
	}
	if c.Learning.CacheSize == 0 {
		c.Learning.CacheSize = defaults.CacheSize
	}
	if c.Learning.MaxPatterns == 0 {
		c.Learning.MaxPatterns = defaults.MaxPatterns
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// validate auto-persistence config
	if cfg.Snapshot.Interval < time.Second {
		return fmt.Errorf("snapshot interval must be at least 1 second")
	}
	if cfg.Snapshot.ReplayInterval < time.Second {
		return fmt.Errorf("snapshot replay_interval must be at least 1 second")
	}

	// learning parameters have their own validation
	if err := cfg.Learning.Validate(); err != nil {
		return fmt.Errorf("learning config: %w", err)
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetLearningConfig returns the learning engine parameters
func (c *Config) GetLearningConfig() domain.LearningConfig {
	return c.Learning
}
