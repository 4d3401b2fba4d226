package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"movieflix/internal/storage"
)

// Storage backends
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Environment variables that override file values
const (
	EnvAPIKey   = "OMDB_API_KEY"
	EnvStorage  = "MOVIEFLIX_STORAGE"
	EnvRedisURL = "MOVIEFLIX_REDIS_URL"
)

// Config represents the application configuration
type Config struct {
	Version int             `toml:"version"`
	API     APISettings     `toml:"api"`
	Storage StorageSettings `toml:"storage"`
	Search  SearchSettings  `toml:"search"`
	Log     LogSettings     `toml:"log"`
}

// APISettings configures the OMDb client
type APISettings struct {
	BaseURL           string   `toml:"base_url"`
	Key               string   `toml:"key"`
	RequestsPerSecond float64  `toml:"requests_per_second"`
	Timeout           Duration `toml:"timeout"`
}

// StorageSettings selects where the watchlist snapshot lives
type StorageSettings struct {
	Backend  string `toml:"backend"`
	Dir      string `toml:"dir"`
	RedisURL string `toml:"redis_url"`
	Key      string `toml:"key"`
}

// SearchSettings tunes the search field
type SearchSettings struct {
	MinQueryLength int `toml:"min_query_length"`
}

// LogSettings configures the log file
type LogSettings struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Duration is a time.Duration stored as a string ("10s") in TOML
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service using the default location
// ($XDG_CONFIG_HOME/movieflix/config.toml)
func NewConfigService() ConfigService {
	return &configService{filePath: filepath.Join(DefaultDir(), "config.toml")}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// DefaultDir returns the per-user directory holding config, log and watchlist
func DefaultDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "movieflix")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file yields the
// defaults, which are written back so the user has something to edit.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = DefaultConfig()
		if err := cs.Save(cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	return cfg, err
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path.
// Missing keys are filled from DefaultConfig.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.normalize()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	dir := DefaultDir()
	return &Config{
		Version: 1,
		API: APISettings{
			BaseURL:           "https://www.omdbapi.com/",
			RequestsPerSecond: 5,
			Timeout:           Duration{10 * time.Second},
		},
		Storage: StorageSettings{
			Backend:  BackendFile,
			Dir:      dir,
			RedisURL: "redis://localhost:6379/0",
			Key:      "watched",
		},
		Search: SearchSettings{
			MinQueryLength: 3,
		},
		Log: LogSettings{
			Level: "info",
			File:  filepath.Join(dir, "movieflix.log"),
		},
	}
}

// ApplyEnv loads dotenv files (missing files are ignored) and lets
// environment variables override the file configuration.
func (c *Config) ApplyEnv(dotenvFiles ...string) {
	for _, f := range dotenvFiles {
		// godotenv.Load never overrides variables that are already set
		_ = godotenv.Load(f)
	}

	if v := strings.TrimSpace(os.Getenv(EnvAPIKey)); v != "" {
		c.API.Key = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvStorage)); v != "" {
		c.Storage.Backend = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvRedisURL)); v != "" {
		c.Storage.RedisURL = v
	}
	c.normalize()
}

// Validate reports configuration that cannot work
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.API.BaseURL == "" {
		return errors.New("api.base_url must not be empty")
	}
	if c.Storage.Key == "" {
		return errors.New("storage.key must not be empty")
	}
	if c.Storage.Backend == BackendFile {
		if err := storage.CheckFileKey(c.Storage.Key); err != nil {
			return fmt.Errorf("storage.key: %w", err)
		}
	}
	return nil
}

// normalize fills zero values that would break the app
func (c *Config) normalize() {
	def := DefaultConfig()
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	if c.Storage.Backend == "" {
		c.Storage.Backend = def.Storage.Backend
	}
	if c.Search.MinQueryLength <= 0 {
		c.Search.MinQueryLength = def.Search.MinQueryLength
	}
	if c.API.RequestsPerSecond <= 0 {
		c.API.RequestsPerSecond = def.API.RequestsPerSecond
	}
	if c.API.Timeout.Duration <= 0 {
		c.API.Timeout = def.API.Timeout
	}
}
