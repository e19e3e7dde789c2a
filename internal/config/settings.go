package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/knadh/koanf/providers/file"
	"go.uber.org/zap"

	"github.com/llehouerou/songrow/internal/artwork"
	"github.com/llehouerou/songrow/internal/observable"
)

// SwipeAction is what a completed swipe on a song row does.
type SwipeAction int

const (
	SwipeNothing SwipeAction = iota
	SwipePlayNext
	SwipeAddToQueue
	SwipeViewAlbum
)

var swipeActionNames = map[SwipeAction]string{
	SwipeNothing:    "nothing",
	SwipePlayNext:   "play_next",
	SwipeAddToQueue: "add_to_queue",
	SwipeViewAlbum:  "view_album",
}

func (a SwipeAction) String() string {
	if s, ok := swipeActionNames[a]; ok {
		return s
	}
	return "nothing"
}

// ParseSwipeAction parses a swipe_action value.
func ParseSwipeAction(s string) (SwipeAction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for a, name := range swipeActionNames {
		if name == s {
			return a, nil
		}
	}
	return SwipeNothing, fmt.Errorf("unknown swipe action %q", s)
}

// Settings are the preferences song rows render with. Values are
// snapshots; never mutate MenuActions in place.
type Settings struct {
	Icons         string
	SwipeAction   SwipeAction
	MenuActions   []string
	Quality       artwork.Quality
	Notifications bool
}

// Settings derives the song row settings from the config.
func (c *Config) Settings() (Settings, error) {
	swipe, err := ParseSwipeAction(c.SongCard.SwipeAction)
	if err != nil {
		return Settings{}, err
	}
	quality, err := artwork.ParseQuality(c.ArtworkQuality)
	if err != nil {
		return Settings{}, err
	}
	actions := c.SongCard.ContextMenuActions
	if len(actions) == 0 {
		actions = DefaultMenuActions
	}
	return Settings{
		Icons:         c.Icons,
		SwipeAction:   swipe,
		MenuActions:   slices.Clone(actions),
		Quality:       quality,
		Notifications: c.Notifications,
	}, nil
}

// Watch reloads the settings into value whenever one of the config files
// changes. Invalid configs are logged and ignored. The returned function
// stops watching.
func Watch(paths []string, value *observable.Value[Settings], logger *zap.Logger) (stop func(), err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("config")

	var providers []*file.File
	stop = func() {
		for _, p := range providers {
			_ = p.Unwatch() //nolint:errcheck // best-effort shutdown
		}
	}

	for _, path := range paths {
		p := file.Provider(path)
		err := p.Watch(func(_ any, werr error) {
			if werr != nil {
				logger.Warn("config watch", zap.String("path", path), zap.Error(werr))
				return
			}
			cfg, err := LoadFrom(paths...)
			if err != nil {
				logger.Warn("reload config", zap.Error(err))
				return
			}
			s, err := cfg.Settings()
			if err != nil {
				logger.Warn("invalid settings", zap.Error(err))
				return
			}
			logger.Info("settings reloaded", zap.String("path", path))
			value.Set(s)
		})
		if err != nil {
			stop()
			return nil, err
		}
		providers = append(providers, p)
	}
	return stop, nil
}
