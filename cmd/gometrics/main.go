package main

import (
	"log"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"gometrics/internal/controllers"
	"gometrics/internal/logger"
	"gometrics/internal/models"
	"gometrics/internal/services"
	"gometrics/internal/shutdown"
	"gometrics/internal/theme"
	"gometrics/pkg/config"
)

const (
	AppName      = "Gometrics"
	AppID        = "com.gometrics.converter"
	AppVersion   = "1.0.0"
	WindowWidth  = 560
	WindowHeight = 640
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration load failed: %v", err)
	}

	appLogger := logger.NewConsoleLogger(logger.ParseLevel(cfg.App.LogLevel))
	appLogger.Info("App", "starting", map[string]interface{}{
		"version":    AppVersion,
		"go_version": runtime.Version(),
		"theme_mode": cfg.Theme.Mode,
	})

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.CenterOnScreen()

	history := models.NewHistoryRepository(cfg.History.Limit)
	prefs := models.NewPreferences(models.ParseThemeMode(cfg.Theme.Mode), cfg.Theme.CustomPath)

	conversions := services.NewConversionService(history, appLogger)
	exports := services.NewExportService(appLogger)

	controller := controllers.NewMainController(
		fyneApp, window, conversions, exports, history, prefs, appLogger)
	controller.ApplyThemeMode(prefs.ThemeMode())

	shutdownManager := shutdown.NewManager(appLogger)
	shutdownManager.Listen()
	shutdownManager.Register("window", func() {
		fyne.Do(fyneApp.Quit)
	})

	startThemeWatcher(cfg, prefs, controller, shutdownManager, appLogger)

	window.SetCloseIntercept(func() {
		shutdownManager.Shutdown()
		window.Close()
	})

	controller.Run()

	appLogger.Info("App", "terminated", nil)
}

// startThemeWatcher hot-reloads the custom palette file while the app runs.
// Only active when the configured theme is custom.
func startThemeWatcher(cfg *config.Config, prefs *models.Preferences,
	controller *controllers.MainController, shutdownManager *shutdown.Manager,
	appLogger logger.Logger) {

	if prefs.ThemeMode() != models.ThemeCustom || !cfg.Theme.WatchCustom || prefs.CustomThemePath() == "" {
		return
	}

	watcher, err := theme.NewWatcher(appLogger)
	if err != nil {
		appLogger.Error("App", err, map[string]interface{}{"step": "theme watcher init"})
		return
	}

	palettes, err := watcher.Watch(shutdownManager.Context(), prefs.CustomThemePath())
	if err != nil {
		appLogger.Error("App", err, map[string]interface{}{
			"step": "theme watcher start",
			"path": prefs.CustomThemePath(),
		})
		watcher.Close()
		return
	}

	shutdownManager.Register("theme watcher", func() {
		watcher.Close()
	})

	go func() {
		for palette := range palettes {
			controller.ApplyPalette(palette)
		}
	}()
}
