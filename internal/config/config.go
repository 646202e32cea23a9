package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"riderdir/internal/eventbus"
)

const (
	// DefaultBaseURL is used when neither the config file nor the flags name an API
	DefaultBaseURL        = "http://localhost:8000"
	DefaultTimeoutSeconds = 15
	DefaultToastSeconds   = 3
	DefaultLogFile        = "riderdir.log"

	// EnvBaseURL overrides the configured API base URL
	EnvBaseURL = "RIDERDIR_BASE_URL"
)

// Config represents the application configuration
type Config struct {
	Version        int        `toml:"version"`
	BaseURL        string     `toml:"base_url"`
	TimeoutSeconds int        `toml:"timeout_seconds"`
	LogFile        string     `toml:"log_file"`
	UISettings     UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ConfirmDelete   bool `toml:"confirm_delete"`
	ToastSeconds    int  `toml:"toast_seconds"`
	ShowImageColumn bool `toml:"show_image_column"`
}

// Timeout returns the per-request timeout
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ToastDuration returns how long notifications stay on screen
func (c *Config) ToastDuration() time.Duration {
	if c.UISettings.ToastSeconds <= 0 {
		return DefaultToastSeconds * time.Second
	}
	return time.Duration(c.UISettings.ToastSeconds) * time.Second
}

// ApplyEnv applies environment overrides
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.BaseURL = v
	}
}

// Validate checks that the configuration can be used to reach the API
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url must not be empty")
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must not be negative: %d", c.TimeoutSeconds)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadOrCreate() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service using the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "riderdir", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service bound to a specific file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// WithBus attaches an event bus so load and save are published
func WithBus(cs ConfigService, bus eventbus.EventBus) ConfigService {
	if s, ok := cs.(*configService); ok {
		s.bus = bus
	}
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		loaded, err := cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{BaseURL: cfg.BaseURL})
	}

	return cfg, nil
}

// LoadOrCreate loads the configuration, writing the defaults on first run.
// When the file cannot be loaded or created the defaults are returned along
// with the error, which is also published as an ErrorEvent.
func (cs *configService) LoadOrCreate() (*Config, error) {
	var err error
	cfg := DefaultConfig()
	if _, statErr := os.Stat(cs.filePath); os.IsNotExist(statErr) {
		log.Printf("Creating default config at %s", cs.filePath)
		err = cs.Save(cfg)
	} else {
		var loaded *Config
		if loaded, err = cs.Load(); err == nil {
			cfg = loaded
		}
	}

	if err != nil && cs.bus != nil {
		cs.bus.Publish(eventbus.ErrorEvent{Message: "Config: " + err.Error(), Err: err})
	}
	return cfg, err
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path.
// Missing keys keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
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
	return &Config{
		Version:        1,
		BaseURL:        DefaultBaseURL,
		TimeoutSeconds: DefaultTimeoutSeconds,
		LogFile:        DefaultLogFile,
		UISettings: UISettings{
			ConfirmDelete:   false,
			ToastSeconds:    DefaultToastSeconds,
			ShowImageColumn: true,
		},
	}
}
