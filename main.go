package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/songrow/internal/app"
	"github.com/llehouerou/songrow/internal/artwork"
	"github.com/llehouerou/songrow/internal/config"
	"github.com/llehouerou/songrow/internal/errmsg"
	"github.com/llehouerou/songrow/internal/favorites"
	"github.com/llehouerou/songrow/internal/icons"
	"github.com/llehouerou/songrow/internal/library"
	"github.com/llehouerou/songrow/internal/logging"
	"github.com/llehouerou/songrow/internal/navigation"
	"github.com/llehouerou/songrow/internal/notify"
	"github.com/llehouerou/songrow/internal/observable"
	"github.com/llehouerou/songrow/internal/playlists"
	"github.com/llehouerou/songrow/internal/queue"
	"github.com/llehouerou/songrow/internal/share"
	"github.com/llehouerou/songrow/internal/state"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	settings, err := cfg.Settings()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stateMgr, err := state.Open()
	if err != nil {
		return err
	}
	defer stateMgr.Close()

	lib := library.New(stateMgr.DB())
	go func() {
		if _, err := library.NewScanner(lib, logger).Refresh(ctx, cfg.LibrarySources, nil); err != nil {
			logger.Warn(string(errmsg.OpLibraryScan), zap.Error(err))
		}
	}()

	q := queue.New(stateMgr)
	if err := q.Load(ctx); err != nil {
		logger.Warn(string(errmsg.OpQueueLoad), zap.Error(err))
	}
	favs, err := favorites.Load(ctx, stateMgr.DB())
	if err != nil {
		return err
	}

	cache, err := artwork.NewCache("")
	if err != nil {
		logger.Warn("artwork cache disabled", zap.Error(err))
	}
	loader := artwork.NewLoader(cache, logger)

	notifier, err := notify.New()
	if err != nil {
		return err
	}

	icons.Init(settings.Icons)
	settingsValue := observable.New(settings)
	stopWatch, err := config.Watch(config.ExistingPaths(), settingsValue, logger)
	if err != nil {
		logger.Warn("config watch disabled", zap.Error(err))
	} else {
		defer stopWatch()
	}

	m := app.New(ctx, app.Services{
		Library:   lib,
		Queue:     q,
		Favorites: favs,
		Playlists: playlists.New(stateMgr.DB()),
		Navigator: navigation.NewStack(navigation.Home{}),
		Sharer:    share.Default(),
		Settings:  settingsValue,
		Loader:    loader,
		Notifier:  notify.NewForwarder(notifier),
		Logger:    logger,
	})
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err = p.Run()
	if err != nil && ctx.Err() == nil {
		return err
	}

	saveCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := q.Save(saveCtx); err != nil {
		logger.Warn(string(errmsg.OpQueueSave), zap.Error(err))
	}
	return nil
}
