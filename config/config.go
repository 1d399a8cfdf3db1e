// Package config loads and updates the mctext configuration.
//
// A Config is a plain value: copying it yields an independent snapshot, and
// Patch returns a new snapshot instead of mutating the receiver.
//
// Supported file formats are chosen by extension: .toml (default), .yaml or
// .yml, and .json. Precedence, lowest first: built-in defaults, the file,
// environment variables (MCRCON_HOST, MCRCON_PORT, MCRCON_PASS), CLI flags.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Config is the complete mctext configuration.
type Config struct {
	RCON   RCONConfig   `toml:"rcon" yaml:"rcon" json:"rcon"`
	Render RenderConfig `toml:"render" yaml:"render" json:"render"`
	Log    LogConfig    `toml:"log" yaml:"log" json:"log"`
}

// RCONConfig holds the remote console connection settings.
type RCONConfig struct {
	Host        string `toml:"host" yaml:"host" json:"host"`
	Port        string `toml:"port" yaml:"port" json:"port"`
	Password    string `toml:"password" yaml:"password" json:"password"`
	WaitSeconds uint   `toml:"wait_seconds" yaml:"wait_seconds" json:"wait_seconds"`
	TimeoutSecs int    `toml:"timeout_secs" yaml:"timeout_secs" json:"timeout_secs"`
	Retries     int    `toml:"retries" yaml:"retries" json:"retries"`
}

// RenderConfig controls how formatted text is segmented and painted.
type RenderConfig struct {
	// ColorMode is one of auto, truecolor, ansi256, ansi, none.
	ColorMode string `toml:"color_mode" yaml:"color_mode" json:"color_mode"`
	// DefaultColor is assigned to text outside any colour directive.
	// Empty means "inherit".
	DefaultColor string `toml:"default_color" yaml:"default_color" json:"default_color"`
	// StyleCodes enables the k-o decoration codes.
	StyleCodes bool `toml:"style_codes" yaml:"style_codes" json:"style_codes"`
	// Sentinel is the directive marker, a single character.
	Sentinel string `toml:"sentinel" yaml:"sentinel" json:"sentinel"`
}

// LogConfig sets the diagnostic log level.
type LogConfig struct {
	Level string `toml:"level" yaml:"level" json:"level"`
}

const (
	// MaxWaitSeconds bounds the delay between batched RCON commands.
	MaxWaitSeconds = 600

	appDir   = "mctext"
	fileName = "config.toml"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		RCON: RCONConfig{
			Host:        "localhost",
			Port:        "25575",
			TimeoutSecs: 10,
			Retries:     3,
		},
		Render: RenderConfig{
			ColorMode: "auto",
			Sentinel:  "§",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the per-user configuration file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, appDir, fileName), nil
}

// LoadFile reads path over the defaults without consulting the environment.
// A missing file is not an error.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".json":
		err = json.Unmarshal(data, &cfg)
	default:
		_, err = toml.Decode(string(data), &cfg)
	}
	if err != nil {
		return Default(), fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return cfg, nil
}

// Load reads path, applies environment overrides and validates the result.
func Load(path string) (Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return cfg, err
	}
	cfg = cfg.WithEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// WithEnv returns a copy of c with environment overrides applied.
func (c Config) WithEnv() Config {
	if v := os.Getenv("MCRCON_HOST"); v != "" {
		c.RCON.Host = v
	}
	if v := os.Getenv("MCRCON_PORT"); v != "" {
		c.RCON.Port = v
	}
	if v := os.Getenv("MCRCON_PASS"); v != "" {
		c.RCON.Password = v
	}
	if os.Getenv("NO_COLOR") != "" && strings.EqualFold(c.Render.ColorMode, "auto") {
		c.Render.ColorMode = "none"
	}
	return c
}

// Save writes c to path with owner-only permissions, in the format implied
// by the extension.
func Save(c Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	case ".json":
		data, err = json.MarshalIndent(c, "", "  ")
	default:
		var b strings.Builder
		b.WriteString("# mctext configuration file\n\n")
		err = toml.NewEncoder(&b).Encode(c)
		data = []byte(b.String())
	}
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return os.Chmod(path, 0o600)
}

// ValidationError describes one invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors collects every ValidationError found.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

var (
	colorModes = []string{"auto", "truecolor", "ansi256", "ansi", "none"}
	logLevels  = []string{"debug", "info", "warn", "error"}
)

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return true
		}
	}
	return false
}

// Validate reports every invalid field as ValidateErrors.
func (c Config) Validate() error {
	var errs ValidateErrors
	add := func(field, format string, args ...any) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if c.RCON.Host == "" {
		add("rcon.host", "must not be empty")
	}
	if port, err := strconv.Atoi(c.RCON.Port); err != nil || port < 1 || port > 65535 {
		add("rcon.port", "invalid port %q", c.RCON.Port)
	}
	if c.RCON.WaitSeconds > MaxWaitSeconds {
		add("rcon.wait_seconds", "out of range (0-%d)", MaxWaitSeconds)
	}
	if c.RCON.TimeoutSecs <= 0 {
		add("rcon.timeout_secs", "must be positive")
	}
	if c.RCON.Retries < 1 {
		add("rcon.retries", "must be at least 1")
	}

	if !oneOf(c.Render.ColorMode, colorModes) {
		add("render.color_mode", "invalid mode %q, must be one of: %s", c.Render.ColorMode, strings.Join(colorModes, ", "))
	}
	if c.Render.DefaultColor != "" {
		if _, err := colorful.Hex(c.Render.DefaultColor); err != nil {
			add("render.default_color", "invalid hex colour %q", c.Render.DefaultColor)
		}
	}
	if utf8.RuneCountInString(c.Render.Sentinel) != 1 || c.Render.Sentinel == string(utf8.RuneError) {
		add("render.sentinel", "must be a single character, got %q", c.Render.Sentinel)
	}

	if !oneOf(c.Log.Level, logLevels) {
		add("log.level", "invalid level %q, must be one of: %s", c.Log.Level, strings.Join(logLevels, ", "))
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SentinelRune returns the configured directive marker.
func (r RenderConfig) SentinelRune() rune {
	s, _ := utf8.DecodeRuneInString(r.Sentinel)
	return s
}
