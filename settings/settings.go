// Package settings loads runtime configuration for the bloom binaries from
// built-in defaults, an optional TOML file and BLOOM_* environment variables,
// in that order of precedence.
package settings

import (
	"os"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	log "github.com/mgutz/logxi/v1"
	"github.com/pkg/errors"

	"github.com/phanxgames/bloom"
)

// EnvPrefix marks environment overrides. BLOOM_WINDOW_SHOW_FPS=true sets
// window.show_fps: the first underscore after the prefix separates the
// section from the key.
const EnvPrefix = "BLOOM_"

// DefaultFile is read when it exists and no explicit path is given.
const DefaultFile = "bloom.toml"

type Window struct {
	Width   int    `koanf:"width"`
	Height  int    `koanf:"height"`
	Title   string `koanf:"title"`
	ShowFPS bool   `koanf:"show_fps"`
}

type Gallery struct {
	Columns     int     `koanf:"columns"`
	CellSize    float64 `koanf:"cell_size"`
	PhaseLocked bool    `koanf:"phase_locked"`
}

type Color struct {
	// Gamut is "auto", "wide" or "standard".
	Gamut string `koanf:"gamut"`
}

type Terminal struct {
	FPS int `koanf:"fps"`
}

type Log struct {
	// Level is "debug", "info", "warn" or "error".
	Level string `koanf:"level"`
}

// Settings is the merged configuration.
type Settings struct {
	Window   Window   `koanf:"window"`
	Gallery  Gallery  `koanf:"gallery"`
	Color    Color    `koanf:"color"`
	Terminal Terminal `koanf:"terminal"`
	Log      Log      `koanf:"log"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"window.width":         960,
		"window.height":        540,
		"window.title":         "bloom",
		"window.show_fps":      false,
		"gallery.columns":      4,
		"gallery.cell_size":    12.0,
		"gallery.phase_locked": true,
		"color.gamut":          "auto",
		"terminal.fps":         60,
		"log.level":            "warn",
	}
}

// Load merges defaults, the TOML file at path and the environment. An empty
// path falls back to DefaultFile, which may be absent; an explicit path must
// exist.
func Load(path string) (*Settings, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "settings: defaults")
	}

	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "settings: loading %s", path)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, "settings: environment")
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, errors.Wrap(err, "settings: decoding")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// Validate reports the first out-of-range value.
func (s *Settings) Validate() error {
	switch {
	case s.Window.Width <= 0 || s.Window.Height <= 0:
		return errors.Errorf("settings: window size %dx%d must be positive", s.Window.Width, s.Window.Height)
	case s.Gallery.Columns < 1:
		return errors.Errorf("settings: gallery.columns %d must be at least 1", s.Gallery.Columns)
	case s.Gallery.CellSize <= 0:
		return errors.Errorf("settings: gallery.cell_size %v must be positive", s.Gallery.CellSize)
	case s.Terminal.FPS < 1 || s.Terminal.FPS > 240:
		return errors.Errorf("settings: terminal.fps %d outside 1-240", s.Terminal.FPS)
	}
	switch s.Color.Gamut {
	case "auto", "wide", "standard":
	default:
		return errors.Errorf("settings: unknown color.gamut %q", s.Color.Gamut)
	}
	if _, ok := levels[s.Log.Level]; !ok {
		return errors.Errorf("settings: unknown log.level %q", s.Log.Level)
	}
	return nil
}

// Gamut resolves color.gamut, calling probe only for "auto".
func (s *Settings) Gamut(probe func() bloom.Gamut) bloom.Gamut {
	switch s.Color.Gamut {
	case "wide":
		return bloom.GamutWide
	case "standard":
		return bloom.GamutStandard
	}
	return probe()
}

var levels = map[string]int{
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
}

// LogLevel returns log.level as a logxi level.
func (s *Settings) LogLevel() int {
	if lvl, ok := levels[s.Log.Level]; ok {
		return lvl
	}
	return log.LevelWarn
}

// ApplyLogLevel sets the configured level on the engine logger and on every
// logger passed in.
func (s *Settings) ApplyLogLevel(loggers ...log.Logger) {
	lvl := s.LogLevel()
	bloom.SetLogLevel(lvl)
	for _, l := range loggers {
		l.SetLevel(lvl)
	}
}
