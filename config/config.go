// Package config loads the YAML settings shared by the hillclimb driver and
// its HTTP service.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hillclimb/climb"
	"github.com/katalvlaran/hillclimb/heightmap"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Defaults applied by Default and by Load for fields left empty.
const (
	DefaultAddr         = ":8080"
	DefaultCacheSize    = 128
	DefaultMaxBodyBytes = 1 << 20
)

// Config is the complete hillclimb configuration.
type Config struct {
	Input   string        `yaml:"input"`
	Search  SearchConfig  `yaml:"search"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

// SearchConfig selects how queries run.
type SearchConfig struct {
	Strategy string `yaml:"strategy"` // heap, queue or scan
	Lowest   string `yaml:"lowest"`   // trailhead elevation for the multi-source query
}

// ServerConfig contains HTTP service settings.
type ServerConfig struct {
	Addr         string `yaml:"addr"`
	CacheSize    *int   `yaml:"cache_size"` // nil: DefaultCacheSize, 0: caching disabled
	MaxBodyBytes int64  `yaml:"max_body_bytes"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Quiet bool `yaml:"quiet"`
}

// Default returns a configuration with every default filled in.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads filename, fills defaults and validates the result.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML bytes, fills defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	c.Search.Strategy = strings.ToLower(strings.TrimSpace(c.Search.Strategy))
	if c.Search.Strategy == "" {
		c.Search.Strategy = climb.StrategyHeap.String()
	}
	if strings.TrimSpace(c.Search.Lowest) == "" {
		c.Search.Lowest = heightmap.Lowest.String()
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.CacheSize == nil {
		size := DefaultCacheSize
		c.Server.CacheSize = &size
	}
	if c.Server.MaxBodyBytes == 0 {
		c.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := climb.ParseStrategy(c.Search.Strategy); err != nil {
		return fmt.Errorf("%w: search.strategy: %v", ErrInvalid, err)
	}
	if _, err := heightmap.ParseElevation(c.Search.Lowest); err != nil {
		return fmt.Errorf("%w: search.lowest: %v", ErrInvalid, err)
	}
	if c.Server.CacheSize != nil && *c.Server.CacheSize < 0 {
		return fmt.Errorf("%w: server.cache_size must be >= 0, got %d", ErrInvalid, *c.Server.CacheSize)
	}
	if c.Server.MaxBodyBytes < 0 {
		return fmt.Errorf("%w: server.max_body_bytes must be >= 0, got %d", ErrInvalid, c.Server.MaxBodyBytes)
	}
	return nil
}

// CacheEntries returns the result cache bound. Zero means caching is disabled.
func (c *Config) CacheEntries() int {
	if c.Server.CacheSize == nil {
		return DefaultCacheSize
	}
	return *c.Server.CacheSize
}

// Strategy returns the parsed search strategy. Call after Validate.
func (c *Config) Strategy() climb.Strategy {
	s, _ := climb.ParseStrategy(c.Search.Strategy)
	return s
}

// LowestElevation returns the parsed trailhead elevation. Call after Validate.
func (c *Config) LowestElevation() heightmap.Elevation {
	e, err := heightmap.ParseElevation(c.Search.Lowest)
	if err != nil {
		return heightmap.Lowest
	}
	return e
}

// Print displays the configuration.
func (c *Config) Print() {
	input := c.Input
	if input == "" {
		input = "(stdin)"
	}
	fmt.Printf("Input: %s\n", input)
	fmt.Printf("Search: strategy=%s lowest=%s\n", c.Search.Strategy, c.Search.Lowest)
	fmt.Printf("Server: %s (cache=%d, max body=%d bytes)\n", c.Server.Addr, c.CacheEntries(), c.Server.MaxBodyBytes)
}
