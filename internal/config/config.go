package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/songrow/internal/artwork"
)

type Config struct {
	Icons          string   `koanf:"icons"`           // "nerd", "unicode", or "none"
	LibrarySources []string `koanf:"library_sources"` // paths to scan for music library
	ArtworkQuality string   `koanf:"artwork_quality"` // "low", "medium", "high", or "lossless"
	Notifications  bool     `koanf:"notifications"`   // forward notices to desktop notifications

	SongCard SongCardConfig `koanf:"song_card"`
	Log      LogConfig      `koanf:"log"`
}

// SongCardConfig holds song row preferences.
type SongCardConfig struct {
	SwipeAction        string   `koanf:"swipe_action"`         // "nothing", "play_next", "add_to_queue", "view_album"
	ContextMenuActions []string `koanf:"context_menu_actions"` // ordered menu entries
}

// LogConfig holds the rotating log file settings.
type LogConfig struct {
	Level      string `koanf:"level"`        // "debug", "info", "warn", "error"
	File       string `koanf:"file"`         // empty means the XDG state dir
	MaxSizeMB  int    `koanf:"max_size_mb"`  // rotate after this many megabytes
	MaxBackups int    `koanf:"max_backups"`  // rotated files to keep
	MaxAgeDays int    `koanf:"max_age_days"` // days to keep rotated files
}

// DefaultMenuActions lists every context menu entry in display order.
var DefaultMenuActions = []string{
	"favorite",
	"play_next",
	"add_to_queue",
	"add_to_playlist",
	"view_artist",
	"view_album_artist",
	"view_album",
	"share",
	"details",
	"delete",
}

func defaults() *Config {
	return &Config{
		Icons:          "nerd",
		ArtworkQuality: artwork.Medium.String(),
		SongCard: SongCardConfig{
			SwipeAction: SwipePlayNext.String(),
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads the user and working directory config files.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given config files in order (last wins). Missing
// files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	if len(cfg.SongCard.ContextMenuActions) == 0 {
		cfg.SongCard.ContextMenuActions = append([]string(nil), DefaultMenuActions...)
	}

	// Expand ~ in library_sources
	for i, src := range cfg.LibrarySources {
		cfg.LibrarySources[i] = expandPath(src)
	}
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/songrow/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "songrow", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

// ExistingPaths returns the config files that are present, in load order.
func ExistingPaths() []string {
	var out []string
	for _, p := range getConfigPaths() {
		if _, err := os.Stat(p); err == nil {
			out = append(out, p)
		}
	}
	return out
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
