// Package config loads pagedlist settings from file, environment and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/idilsaglam/pagedlist/internal/model"
)

// EnvPrefix prefixes every environment override, e.g. PAGEDLIST_LIST_FILTER.
const EnvPrefix = "PAGEDLIST"

// Config is the resolved configuration.
type Config struct {
	Source  string // json | sqlite | http
	Data    string // data file for json/sqlite, "" for the default location
	API     *API
	List    *List
	UI      *UI
	Gesture *Gesture
	Log     *Log
}

type API struct {
	URL     string
	Timeout time.Duration
}

type List struct {
	Filter   string
	PageSize int
	Route    string
	Sort     string
	Renderer string
}

type UI struct {
	Theme    string
	MaxWidth int
	Markdown string // glamour style for the markdown renderer
}

type Gesture struct {
	Breakpoint int
	Threshold  int
}

type Log struct {
	Level  string
	Format string
	File   string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Source:  "json",
		API:     &API{Timeout: 10 * time.Second},
		List:    &List{PageSize: model.DefaultPageSize, Route: "/", Sort: "pinned", Renderer: "plain"},
		UI:      &UI{Theme: "classic", MaxWidth: 100, Markdown: "dark"},
		Gesture: &Gesture{Breakpoint: 100, Threshold: 3},
		Log:     &Log{Level: "info", Format: "text"},
	}
}

// flagKeys maps config keys to the cobra flags that override them.
var flagKeys = map[string]string{
	"source":             "source",
	"data":               "data",
	"api.url":            "api-url",
	"list.filter":        "filter",
	"list.page_size":     "page-size",
	"list.route":         "route",
	"list.sort":          "sort",
	"list.renderer":      "renderer",
	"ui.theme":           "theme",
	"ui.max_width":       "max-width",
	"gesture.breakpoint": "breakpoint",
	"log.level":          "log-level",
	"log.file":           "log-file",
}

// New returns a viper instance reading PAGEDLIST_* environment variables.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags lets the flags in fs override their config keys. Flags missing
// from fs are skipped.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for key, name := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Dir is the per-user directory holding config, data and credentials.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".pagedlist"), nil
}

// Load reads configPath, or config.yaml from $HOME/.pagedlist or the working
// directory when configPath is empty. A missing default file is not an error.
func Load(v *viper.Viper, configPath string) (*Config, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.pagedlist")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return fromViper(v), nil
}

// Watch calls fn with the re-read configuration whenever the config file
// changes. It does nothing when no file was loaded.
func Watch(v *viper.Viper, fn func(*Config)) {
	if v.ConfigFileUsed() == "" {
		return
	}
	v.OnConfigChange(func(fsnotify.Event) {
		fn(fromViper(v))
	})
	v.WatchConfig()
}

func fromViper(v *viper.Viper) *Config {
	d := Default()
	return &Config{
		Source: strings.ToLower(getStringOrDefault(v, "source", d.Source)),
		Data:   getStringOrDefault(v, "data", d.Data),
		API: &API{
			URL:     getStringOrDefault(v, "api.url", d.API.URL),
			Timeout: getDurationOrDefault(v, "api.timeout", d.API.Timeout),
		},
		List: &List{
			Filter:   getStringOrDefault(v, "list.filter", d.List.Filter),
			PageSize: getIntOrDefault(v, "list.page_size", d.List.PageSize),
			Route:    getStringOrDefault(v, "list.route", d.List.Route),
			Sort:     getStringOrDefault(v, "list.sort", d.List.Sort),
			Renderer: getStringOrDefault(v, "list.renderer", d.List.Renderer),
		},
		UI: &UI{
			Theme:    getStringOrDefault(v, "ui.theme", d.UI.Theme),
			MaxWidth: getIntOrDefault(v, "ui.max_width", d.UI.MaxWidth),
			Markdown: getStringOrDefault(v, "ui.markdown", d.UI.Markdown),
		},
		Gesture: &Gesture{
			Breakpoint: getIntOrDefault(v, "gesture.breakpoint", d.Gesture.Breakpoint),
			Threshold:  getIntOrDefault(v, "gesture.threshold", d.Gesture.Threshold),
		},
		Log: &Log{
			Level:  getStringOrDefault(v, "log.level", d.Log.Level),
			Format: getStringOrDefault(v, "log.format", d.Log.Format),
			File:   getStringOrDefault(v, "log.file", d.Log.File),
		},
	}
}
