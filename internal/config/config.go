package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"formkit/internal/domain"
	"formkit/internal/eventbus"
)

// Field kinds
const (
	KindSelect   = "select"
	KindCheckbox = "checkbox"
)

// ErrInvalidForm is wrapped by every validation failure
var ErrInvalidForm = errors.New("invalid form definition")

// Config represents a form definition
type Config struct {
	Version    int        `toml:"version"`
	Title      string     `toml:"title"`
	Fields     []Field    `toml:"fields"`
	UISettings UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Mouse       bool `toml:"mouse"`
	ReportFocus bool `toml:"report_focus"`
	AltScreen   bool `toml:"alt_screen"`
}

// Field describes one widget of the form
type Field struct {
	Name        string          `toml:"name"`
	Kind        string          `toml:"kind"`
	Label       string          `toml:"label,omitempty"`
	Placeholder string          `toml:"placeholder,omitempty"`
	Variant     string          `toml:"variant,omitempty"`
	Value       any             `toml:"value,omitempty"`
	Width       int             `toml:"width,omitempty"`
	Height      int             `toml:"height,omitempty"`
	Disabled    bool            `toml:"disabled,omitempty"`
	Checked     bool            `toml:"checked,omitempty"`
	Options     []domain.Option `toml:"options,omitempty"`
}

// ConfigService handles form definition files
type ConfigService interface {
	Load() (*Config, error)
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

// NewConfigService creates a config service rooted in the user config dir
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
		filePath: filepath.Join(configDir, "formkit", "form.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Path returns the default form file location
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the default form file, or the sample form if there is none
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publish(eventbus.ConfigLoadedEvent{Path: "", Fields: len(cfg.Fields)})
		return cfg, nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the form to the default location
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads and validates a form from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cs.publish(eventbus.ConfigLoadedEvent{Path: path, Fields: len(cfg.Fields)})
	return &cfg, nil
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

	cs.publish(eventbus.ConfigSavedEvent{Path: path})
	return nil
}

func (cs *configService) publish(event eventbus.DomainEvent) {
	if cs.bus != nil {
		cs.bus.Publish(event)
	}
}

// Validate checks field names and kinds
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Fields))
	for i, f := range c.Fields {
		if f.Name == "" {
			return fmt.Errorf("%w: field %d has no name", ErrInvalidForm, i)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: duplicate field %q", ErrInvalidForm, f.Name)
		}
		seen[f.Name] = true

		switch f.Kind {
		case KindSelect, KindCheckbox:
		default:
			return fmt.Errorf("%w: field %q has unknown kind %q", ErrInvalidForm, f.Name, f.Kind)
		}
	}
	return nil
}

// DefaultConfig returns the sample form
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Title:   "formkit",
		Fields: []Field{
			{
				Name:    "choice",
				Kind:    KindSelect,
				Label:   "Choice",
				Variant: "primary",
				Options: []domain.Option{
					{Value: "1", Label: "Option 1"},
					{Value: "2", Label: "Option 2"},
					{Value: "3", Label: "Option 3"},
				},
			},
			{
				Name:  "agree",
				Kind:  KindCheckbox,
				Label: "Hello Label",
				Value: "Hello Value",
			},
		},
		UISettings: UISettings{
			Mouse:       true,
			ReportFocus: true,
			AltScreen:   true,
		},
	}
}
