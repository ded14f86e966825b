package configuration

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/willibrandon/botlog/core"
	"github.com/willibrandon/botlog/formatters"
	"github.com/willibrandon/botlog/sinks"
)

// Configuration keys.
const (
	KeyBotIdentifier = "bot_identifier"
	KeyRunIdentifier = "run_identifier"
	KeyLogLevel      = "log_level"
	KeyTheme         = "theme"
	KeyNoColor       = "no_color"
	KeyStripLinks    = "strip_links"
	KeyProperties    = "properties"
)

// DefaultBotIdentifier is used when BOT_IDENTIFIER is unset or empty.
const DefaultBotIdentifier = formatters.DefaultBotIdentifier

// Config holds the resolved settings for a console logger.
type Config struct {
	BotIdentifier string
	RunIdentifier string
	Level         core.LogEventLevel
	Theme         string
	NoColor       bool
	StripLinks    bool
	Properties    map[string]any

	// Output is where the console sink writes. Nil means stdout.
	Output io.Writer
}

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyBotIdentifier, DefaultBotIdentifier)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyTheme, "default")
	v.SetDefault(KeyNoColor, false)
	v.SetDefault(KeyStripLinks, false)
}

// NewViper returns a viper instance with defaults set and the environment
// variables bound:
//
//	BOT_IDENTIFIER, RUN_IDENTIFIER, LOG_LEVEL,
//	BOTLOG_THEME, BOTLOG_NO_COLOR, BOTLOG_STRIP_LINKS
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix("BOTLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The identifiers and level keep their unprefixed names.
	_ = v.BindEnv(KeyBotIdentifier, "BOT_IDENTIFIER")
	_ = v.BindEnv(KeyRunIdentifier, "RUN_IDENTIFIER")
	_ = v.BindEnv(KeyLogLevel, "LOG_LEVEL")
	return v
}

// Load reads the environment and, when path is not empty, a YAML, JSON or
// TOML config file. Environment variables override the file.
func Load(path string) (*Config, error) {
	v := NewViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return FromViper(v)
}

// FromViper resolves a Config from v. A missing run identifier is replaced
// by a new random UUID, so each call without one yields a different run.
func FromViper(v *viper.Viper) (*Config, error) {
	level, err := core.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	cfg := &Config{
		BotIdentifier: v.GetString(KeyBotIdentifier),
		RunIdentifier: v.GetString(KeyRunIdentifier),
		Level:         level,
		Theme:         v.GetString(KeyTheme),
		NoColor:       v.GetBool(KeyNoColor),
		StripLinks:    v.GetBool(KeyStripLinks),
		Properties:    v.GetStringMap(KeyProperties),
	}
	if cfg.BotIdentifier == "" {
		cfg.BotIdentifier = DefaultBotIdentifier
	}
	if cfg.RunIdentifier == "" {
		cfg.RunIdentifier = uuid.NewString()
	}
	if _, ok := sinks.ThemeByName(cfg.Theme); !ok {
		return nil, fmt.Errorf("unknown console theme: %q", cfg.Theme)
	}
	return cfg, nil
}
