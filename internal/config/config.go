package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jwebster45206/tower-client/pkg/layout"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. TOWER_REDIS_URL.
const EnvPrefix = "TOWER"

type Config struct {
	Environment string
	LogLevel    slog.Level
	LogFile     string

	// RedisURL is empty for offline play with an in-memory store.
	RedisURL   string
	SessionID  string
	SessionTTL time.Duration

	// MobileBreakpoint is the terminal width below which the drawer
	// becomes a dismissible overlay.
	MobileBreakpoint int
	Drawer           layout.DrawerConfig
	DefaultPanel     layout.PanelID

	PCFile string
}

// Load reads configuration from an optional TOML file and the environment.
// The file is $TOWER_CONFIG, or config.toml in ~/.config/tower-client.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "tower-client.log")
	v.SetDefault("redis_url", "")
	v.SetDefault("session_id", "")
	v.SetDefault("session_ttl", "168h")
	v.SetDefault("mobile_breakpoint", 80)
	v.SetDefault("drawer.collapsed_width", layout.DefaultDrawerConfig.CollapsedWidth)
	v.SetDefault("drawer.expanded_width", layout.DefaultDrawerConfig.ExpandedWidth)
	v.SetDefault("default_panel", string(layout.DefaultPanel))
	v.SetDefault("pc_file", "")

	v.SetConfigType("toml")
	if cfgPath := os.Getenv(EnvPrefix + "_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "tower-client"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	panel, err := layout.ParsePanelID(v.GetString("default_panel"))
	if err != nil {
		return nil, fmt.Errorf("invalid default_panel: %w", err)
	}
	if layout.IsModalPanel(panel) {
		return nil, fmt.Errorf("invalid default_panel: %q is a modal panel", panel)
	}

	cfg := &Config{
		Environment:      v.GetString("environment"),
		LogLevel:         parseLogLevel(v.GetString("log_level")),
		LogFile:          v.GetString("log_file"),
		RedisURL:         v.GetString("redis_url"),
		SessionID:        v.GetString("session_id"),
		SessionTTL:       v.GetDuration("session_ttl"),
		MobileBreakpoint: v.GetInt("mobile_breakpoint"),
		Drawer: layout.DrawerConfig{
			CollapsedWidth: v.GetInt("drawer.collapsed_width"),
			ExpandedWidth:  v.GetInt("drawer.expanded_width"),
		},
		DefaultPanel: panel,
		PCFile:       v.GetString("pc_file"),
	}

	if cfg.Drawer.CollapsedWidth <= 0 || cfg.Drawer.ExpandedWidth < cfg.Drawer.CollapsedWidth {
		return nil, fmt.Errorf("invalid drawer widths: collapsed=%d expanded=%d",
			cfg.Drawer.CollapsedWidth, cfg.Drawer.ExpandedWidth)
	}
	if cfg.MobileBreakpoint < 0 {
		return nil, fmt.Errorf("invalid mobile_breakpoint: %d", cfg.MobileBreakpoint)
	}
	return cfg, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
