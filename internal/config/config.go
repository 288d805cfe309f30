package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/Nomadcxx/titlesink/internal/fields"
)

// Config holds all titlesink configuration
type Config struct {
	Handlers HandlerConfig `toml:"handlers"`
	Output   OutputConfig  `toml:"output"`
	Reports  ReportConfig  `toml:"reports"`
}

// HandlerConfig selects which field-handler groups get registered
type HandlerConfig struct {
	// Groups lists the enabled handler groups. Empty means all of them.
	Groups []string `toml:"groups"`
}

// OutputConfig controls how parse results are rendered
type OutputConfig struct {
	JSON      bool `toml:"json"`       // emit JSON instead of styled text
	TitleCase bool `toml:"title_case"` // re-case the cleaned title for display
}

// ReportConfig holds batch report settings
type ReportConfig struct {
	Directory string `toml:"directory"` // empty means the default data dir
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Handlers: HandlerConfig{
			Groups: []string{},
		},
		Output: OutputConfig{
			JSON:      false,
			TitleCase: false,
		},
		Reports: ReportConfig{
			Directory: "",
		},
	}
}

// EnabledGroups returns the handler groups to register, in catalog order.
// An empty selection means the whole catalog.
func (c *Config) EnabledGroups() []string {
	if len(c.Handlers.Groups) == 0 {
		return fields.GroupNames()
	}
	return c.Handlers.Groups
}

// EnableGroup adds a handler group to the enabled set
func (c *Config) EnableGroup(name string) error {
	if !validGroup(name) {
		return fmt.Errorf("unknown handler group: %s", name)
	}
	for _, g := range c.Handlers.Groups {
		if g == name {
			return fmt.Errorf("handler group already enabled: %s", name)
		}
	}
	c.Handlers.Groups = append(c.Handlers.Groups, name)
	return nil
}

// DisableGroup removes a handler group from the enabled set
func (c *Config) DisableGroup(name string) error {
	for i, g := range c.Handlers.Groups {
		if g == name {
			c.Handlers.Groups = append(c.Handlers.Groups[:i], c.Handlers.Groups[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("handler group not enabled: %s", name)
}

// ReportDir returns the directory batch reports are written to
func (c *Config) ReportDir() string {
	if c.Reports.Directory != "" {
		return c.Reports.Directory
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "/tmp/titlesink/reports"
	}
	return filepath.Join(home, ".local/share/titlesink/reports")
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	for _, name := range c.Handlers.Groups {
		if !validGroup(name) {
			return fmt.Errorf("unknown handler group: %s", name)
		}
	}
	return nil
}

func validGroup(name string) bool {
	for _, g := range fields.GroupNames() {
		if g == name {
			return true
		}
	}
	return false
}

// ConfigPath returns the path to the config file
func ConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}

	titlesinkDir := filepath.Join(configDir, "titlesink")
	configFile := filepath.Join(titlesinkDir, "config.toml")

	return configFile, nil
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	configFile, err := ConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configFile)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return nil
}

// Load reads the config file, creating it with defaults if it doesn't exist
func Load() (*Config, error) {
	configFile, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	// Create config directory if needed
	if err := EnsureConfigDir(); err != nil {
		return nil, err
	}

	// If config doesn't exist, create it with defaults
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := Save(cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}

	// Load existing config
	var cfg Config
	if _, err := toml.DecodeFile(configFile, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &cfg, nil
}

// Save writes the config to disk
func Save(cfg *Config) error {
	configFile, err := ConfigPath()
	if err != nil {
		return err
	}

	// Ensure config directory exists
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	// Open file for writing
	f, err := os.Create(configFile)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	// Encode config as TOML
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
