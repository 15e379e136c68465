package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"scrollsync/internal/domain"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Version   int               `toml:"version"`
	Scrollbar ScrollbarSettings `toml:"scrollbar"`
	UI        UISettings        `toml:"ui"`
}

// ScrollbarSettings configures the scroll control
type ScrollbarSettings struct {
	Direction     string `toml:"direction"` // "horizontal" or "vertical"
	KeyboardSteps int    `toml:"keyboard_steps"`
	TrackClick    bool   `toml:"track_click"`
	AutoResize    bool   `toml:"auto_resize"`
	ResizeDelayMS int    `toml:"resize_delay_ms"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowLineNumbers bool `toml:"show_line_numbers"`
	ShowRuler       bool `toml:"show_ruler"`
	Mouse           bool `toml:"mouse"`
}

// Axis parses the configured direction
func (s ScrollbarSettings) Axis() (domain.Axis, error) {
	return domain.ParseAxis(s.Direction)
}

// ResizeDelay is the debounce window as a duration
func (s ScrollbarSettings) ResizeDelay() time.Duration {
	return time.Duration(s.ResizeDelayMS) * time.Millisecond
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	if _, err := c.Scrollbar.Axis(); err != nil {
		return fmt.Errorf("%w: scrollbar.direction: %v", ErrInvalidConfig, err)
	}
	if c.Scrollbar.KeyboardSteps <= 0 {
		return fmt.Errorf("%w: scrollbar.keyboard_steps must be positive, got %d", ErrInvalidConfig, c.Scrollbar.KeyboardSteps)
	}
	if c.Scrollbar.ResizeDelayMS < 0 {
		return fmt.Errorf("%w: scrollbar.resize_delay_ms must not be negative, got %d", ErrInvalidConfig, c.Scrollbar.ResizeDelayMS)
	}
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

// NewConfigService creates a config service for the user's config directory
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
		filePath: filepath.Join(configDir, "scrollsync", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service bound to path
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, falling back to defaults when no file exists
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
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
	return &Config{
		Version: 1,
		Scrollbar: ScrollbarSettings{
			Direction:     domain.Horizontal.String(),
			KeyboardSteps: 50,
			TrackClick:    true,
			AutoResize:    true,
			ResizeDelayMS: 100,
		},
		UI: UISettings{
			ShowLineNumbers: true,
			ShowRuler:       true,
			Mouse:           true,
		},
	}
}
