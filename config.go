package sqlflat

import (
	"fmt"
	"os"
	"regexp"
	"runtime"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// DefaultConfigFile is read when no path is given on the command line.
const DefaultConfigFile = "sqlflat.yaml"

// Defaults
const (
	DefaultListen          = ":8080"
	DefaultMaxBodyBytes    = 1 << 20
	DefaultCacheSize       = 256
	DefaultShutdownTimeout = 10 * time.Second
	DefaultLogLevel        = "info"
)

// Config represents the sqlflat configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Flatten FlattenConfig `yaml:"flatten"`
}

// ServerConfig represents HTTP server settings
type ServerConfig struct {
	Listen       string `yaml:"listen"`
	MaxBodyBytes int64  `yaml:"max_body_bytes"`
	// CacheSize is a pointer to distinguish between unset and 0, which disables the cache
	CacheSize       *int          `yaml:"cache_size"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// CacheEntries returns the response cache size; 0 means no cache.
func (s ServerConfig) CacheEntries() int {
	if s.CacheSize == nil {
		return DefaultCacheSize
	}
	return *s.CacheSize
}

// LogConfig represents logging settings
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// ZapLevel returns the configured level.
func (l LogConfig) ZapLevel() (zapcore.Level, error) {
	return zapcore.ParseLevel(l.Level)
}

// FlattenConfig represents batch processing settings of the flatten command
type FlattenConfig struct {
	Parallel int `yaml:"parallel"`
}

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	// Check if config file exists
	if !fileExists(configPath) {
		config := getDefaultConfig()
		expandConfigEnvVars(config)

		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML with strict mode to detect unknown fields
	var config Config

	err = yaml.UnmarshalWithOptions(data, &config, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	expandConfigEnvVars(&config)

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	applyDefaults(&config)

	return &config, nil
}

// validateConfig checks explicitly set values; zero values are filled in later
func validateConfig(config *Config) error {
	if config.Server.MaxBodyBytes < 0 {
		return fmt.Errorf("%w: server.max_body_bytes must not be negative: %d", ErrConfigValidation, config.Server.MaxBodyBytes)
	}

	if config.Server.CacheSize != nil && *config.Server.CacheSize < 0 {
		return fmt.Errorf("%w: server.cache_size must not be negative: %d", ErrConfigValidation, *config.Server.CacheSize)
	}

	if config.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: server.shutdown_timeout must not be negative: %s", ErrConfigValidation, config.Server.ShutdownTimeout)
	}

	if config.Log.Level != "" {
		if _, err := config.Log.ZapLevel(); err != nil {
			return fmt.Errorf("%w: invalid log.level '%s': %w", ErrConfigValidation, config.Log.Level, err)
		}
	}

	if config.Flatten.Parallel < 0 {
		return fmt.Errorf("%w: flatten.parallel must not be negative: %d", ErrConfigValidation, config.Flatten.Parallel)
	}

	return nil
}

func getDefaultConfig() *Config {
	config := &Config{}
	applyDefaults(config)

	return config
}

func applyDefaults(config *Config) {
	if config.Server.Listen == "" {
		config.Server.Listen = DefaultListen
	}

	if config.Server.MaxBodyBytes == 0 {
		config.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}

	if config.Server.ShutdownTimeout == 0 {
		config.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if config.Log.Level == "" {
		config.Log.Level = DefaultLogLevel
	}

	if config.Flatten.Parallel == 0 {
		config.Flatten.Parallel = runtime.NumCPU()
	}
}

// loadEnvFiles loads .env and .env.local if they exist
func loadEnvFiles() error {
	for _, name := range []string{".env", ".env.local"} {
		if !fileExists(name) {
			continue
		}

		err := godotenv.Load(name)
		if err != nil {
			return fmt.Errorf("failed to load %s file: %w", name, err)
		}
	}

	return nil
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars expands environment variables in the format ${VAR}
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})
}

func expandConfigEnvVars(config *Config) {
	config.Server.Listen = expandEnvVars(config.Server.Listen)
	config.Log.Level = expandEnvVars(config.Log.Level)
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
