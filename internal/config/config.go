// Package config resolves the watermark tool's settings from command-line
// flags and WATERMARK_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. WATERMARK_DIR.
const EnvPrefix = "WATERMARK"

// Flag and viper keys.
const (
	KeyDir         = "dir"
	KeyUI          = "ui"
	KeyStrictRange = "strict-range"
	KeyEditNaming  = "edit-naming"
	KeyExtraEdits  = "extra-edits"
	KeyLogLevel    = "log-level"
)

// UI back ends for the prompts.
const (
	UITerminal = "terminal"
	UIDialog   = "dialog"
)

// Edited-file naming conventions: "photo-brighter.jpg" or "bright-photo.jpg".
const (
	NamingSuffix = "suffix"
	NamingPrefix = "prefix"
)

// Config holds the settings for one run of the tool.
type Config struct {
	// Dir is the working directory images are read from and written to.
	Dir string
	// UI selects the prompt back end.
	UI string
	// StrictRange validates edit amounts in the flow before any transform
	// runs. When false the amount goes straight to the transform.
	StrictRange bool
	// EditNaming selects how edited intermediates are named.
	EditNaming string
	// ExtraEdits wires the grayscale and invert menu entries.
	ExtraEdits bool
	LogLevel   string
}

// Default returns the settings used when nothing is overridden.
func Default() Config {
	return Config{
		Dir:         "img",
		UI:          UITerminal,
		StrictRange: true,
		EditNaming:  NamingSuffix,
		ExtraEdits:  false,
		LogLevel:    "warn",
	}
}

// RegisterFlags adds the tool's flags to fs with their defaults.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String(KeyDir, d.Dir, "Directory holding input images and receiving results")
	fs.String(KeyUI, d.UI, "Prompt back end: terminal or dialog")
	fs.Bool(KeyStrictRange, d.StrictRange, "Reject edit amounts outside [-1, 1] before editing")
	fs.String(KeyEditNaming, d.EditNaming, "Edited file naming: suffix (photo-brighter.jpg) or prefix (bright-photo.jpg)")
	fs.Bool(KeyExtraEdits, d.ExtraEdits, "Enable the grayscale and invert edit methods")
	fs.String(KeyLogLevel, d.LogLevel, "Log level: debug, info, warn, error")
}

// NewViper returns a viper instance bound to fs and the WATERMARK_* env vars.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}
	return v, nil
}

// Load reads the configuration from v and validates it. Keys v does not
// know about keep their defaults.
func Load(v *viper.Viper) (*Config, error) {
	d := Default()
	v.SetDefault(KeyDir, d.Dir)
	v.SetDefault(KeyUI, d.UI)
	v.SetDefault(KeyStrictRange, d.StrictRange)
	v.SetDefault(KeyEditNaming, d.EditNaming)
	v.SetDefault(KeyExtraEdits, d.ExtraEdits)
	v.SetDefault(KeyLogLevel, d.LogLevel)

	cfg := &Config{
		Dir:         v.GetString(KeyDir),
		UI:          strings.ToLower(v.GetString(KeyUI)),
		StrictRange: v.GetBool(KeyStrictRange),
		EditNaming:  strings.ToLower(v.GetString(KeyEditNaming)),
		ExtraEdits:  v.GetBool(KeyExtraEdits),
		LogLevel:    strings.ToLower(v.GetString(KeyLogLevel)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("image directory must not be empty")
	}
	switch c.UI {
	case UITerminal, UIDialog:
	default:
		return fmt.Errorf("invalid ui %q: must be %q or %q", c.UI, UITerminal, UIDialog)
	}
	switch c.EditNaming {
	case NamingSuffix, NamingPrefix:
	default:
		return fmt.Errorf("invalid edit-naming %q: must be %q or %q", c.EditNaming, NamingSuffix, NamingPrefix)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log-level %q: must be debug, info, warn or error", c.LogLevel)
	}
	return nil
}
