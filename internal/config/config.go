package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	toml "github.com/pelletier/go-toml/v2"

	"todoboard/internal/board"
)

const (
	AppName               = "todoboard"
	DefaultConfigFileName = "config.toml"
	ConfigEnvVar          = "TODOBOARD_CONFIG"
)

type Keymap struct {
	Quit    string `toml:"quit"`
	Add     string `toml:"add"`
	Up      string `toml:"up"`
	Down    string `toml:"down"`
	Toggle  string `toml:"toggle"`
	Delete  string `toml:"delete"`
	Edit    string `toml:"edit"`
	Search  string `toml:"search"`
	Filter  string `toml:"filter"`
	Confirm string `toml:"confirm"`
	Cancel  string `toml:"cancel"`
	Help    string `toml:"help"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
	// File receives log lines. Empty discards them.
	File string `toml:"file"`
}

type Config struct {
	DefaultFilter string        `toml:"default_filter"`
	Keys          Keymap        `toml:"keys"`
	Logging       LoggingConfig `toml:"logging"`
}

func Default() Config {
	return Config{
		DefaultFilter: board.FilterAll.String(),
		Keys: Keymap{
			Quit:    "q",
			Add:     "a",
			Up:      "k",
			Down:    "j",
			Toggle:  "space",
			Delete:  "d",
			Edit:    "e",
			Search:  "/",
			Filter:  "f",
			Confirm: "enter",
			Cancel:  "esc",
			Help:    "?",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. A missing or empty file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if len(data) == 0 {
		return cfg, nil
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode toml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrCreate writes the defaults to path when it does not exist yet.
// created reports whether a new file was written.
func LoadOrCreate(path string) (cfg Config, created bool, err error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg = Default()
		if err := write(path, cfg); err != nil {
			return cfg, false, err
		}
		return cfg, true, nil
	}
	cfg, err = Load(path)
	return cfg, false, err
}

func (c Config) Validate() error {
	if _, err := board.ParseFilterMode(c.DefaultFilter); err != nil {
		return fmt.Errorf("invalid default_filter: %w", err)
	}
	if _, err := log.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging.level %q: %w", c.Logging.Level, err)
	}
	return nil
}

// Filter returns the configured initial filter mode.
func (c Config) Filter() board.FilterMode {
	m, err := board.ParseFilterMode(c.DefaultFilter)
	if err != nil {
		return board.FilterAll
	}
	return m
}

// ResolveConfigPath prefers $TODOBOARD_CONFIG, then the user config dir.
func ResolveConfigPath() string {
	if p := strings.TrimSpace(os.Getenv(ConfigEnvVar)); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, AppName, DefaultConfigFileName)
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode toml: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}
