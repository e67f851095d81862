// Package controllers connects the GUI to the conversion, history, export,
// and theming services.
package controllers

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"gometrics/internal/converter"
	"gometrics/internal/logger"
	"gometrics/internal/models"
	"gometrics/internal/services"
	"gometrics/internal/theme"
	"gometrics/internal/views"
)

// MainController owns the main window's behavior. All Handle* methods are
// invoked from GUI callbacks.
type MainController struct {
	fyneApp fyne.App
	window  fyne.Window
	view    *views.MainView

	conversions *services.ConversionService
	exports     *services.ExportService
	history     *models.HistoryRepository
	prefs       *models.Preferences
	log         logger.Logger
}

func NewMainController(fyneApp fyne.App, window fyne.Window,
	conversions *services.ConversionService,
	exports *services.ExportService,
	history *models.HistoryRepository,
	prefs *models.Preferences,
	log logger.Logger) *MainController {

	c := &MainController{
		fyneApp:     fyneApp,
		window:      window,
		conversions: conversions,
		exports:     exports,
		history:     history,
		prefs:       prefs,
		log:         log,
	}

	var categories []string
	for _, category := range converter.Categories() {
		categories = append(categories, string(category))
	}

	c.view = views.NewMainView(window, categories, formatRecord, views.Callbacks{
		OnCategoryChange:  c.HandleCategoryChange,
		OnSelectionChange: c.HandleSelectionChange,
		OnConvert:         c.HandleConvert,
		OnClearHistory:    c.HandleClearHistory,
	})

	return c
}

// Run wires the menus, applies the default selection, and enters the Fyne
// event loop.
func (c *MainController) Run() {
	c.setupMenus()
	c.view.Initialize()
	c.window.ShowAndRun()
}

func (c *MainController) HandleCategoryChange(name string) {
	units, err := converter.Units(converter.Category(name))
	if err != nil {
		c.showError("Category Error", err)
		return
	}

	names := make([]string, len(units))
	for i, unit := range units {
		names[i] = string(unit)
	}

	c.view.SetUnits(names)
	c.view.ClearResult()
	c.view.SetStatus(fmt.Sprintf("Category: %s", name))
}

// HandleSelectionChange clears a stale result whenever the input or a unit
// changes.
func (c *MainController) HandleSelectionChange() {
	c.view.ClearResult()
}

func (c *MainController) HandleConvert() {
	category, from, to := c.view.Selection()
	if from == "" || to == "" {
		return
	}

	raw := c.view.InputValue()
	if raw == "" {
		c.view.ClearResult()
		return
	}

	record, err := c.conversions.Convert(
		converter.Category(category),
		converter.Unit(from),
		converter.Unit(to),
		raw,
	)
	if err != nil {
		c.showConversionError(err)
		return
	}

	c.view.SetResult(services.FormatValue(record.Output))
	c.view.SetHistory(c.history.List())
	c.view.SetStatus(fmt.Sprintf("Converted %s to %s", from, to))
}

func (c *MainController) HandleClearHistory() {
	c.history.Clear()
	c.view.SetHistory(nil)
	c.view.SetStatus("History cleared")
}

// ApplyThemeMode switches to one of the built-in palettes, or to the custom
// palette file for ThemeCustom. A broken custom palette falls back to dark.
func (c *MainController) ApplyThemeMode(mode models.ThemeMode) {
	palette := theme.DarkPalette()
	dark := true

	switch mode {
	case models.ThemeLight:
		palette = theme.LightPalette()
		dark = false
	case models.ThemeCustom:
		custom, err := theme.LoadPalette(c.prefs.CustomThemePath())
		if err != nil {
			c.log.Warning("Theme", "custom palette unavailable, using dark", map[string]interface{}{
				"path":  c.prefs.CustomThemePath(),
				"error": err.Error(),
			})
			mode = models.ThemeDark
		} else {
			palette = custom
		}
	}

	c.prefs.SetThemeMode(mode)
	c.fyneApp.Settings().SetTheme(theme.New(palette, dark))
	c.log.Info("Theme", "theme applied", map[string]interface{}{"mode": string(mode)})
}

// ApplyPalette installs a reloaded custom palette. Safe to call from any
// goroutine; used by the palette file watcher.
func (c *MainController) ApplyPalette(palette theme.Palette) {
	fyne.Do(func() {
		c.fyneApp.Settings().SetTheme(theme.New(palette, c.prefs.ThemeMode() != models.ThemeLight))
		c.view.SetStatus("Custom theme reloaded")
	})
	c.log.Info("Theme", "custom palette reloaded", nil)
}

func (c *MainController) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export History as CSV...", func() {
			c.handleExport("csv")
		}),
		fyne.NewMenuItem("Export History as Text...", func() {
			c.handleExport("txt")
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			c.fyneApp.Quit()
		}),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Dark Theme", func() {
			c.ApplyThemeMode(models.ThemeDark)
		}),
		fyne.NewMenuItem("Light Theme", func() {
			c.ApplyThemeMode(models.ThemeLight)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Custom Theme...", func() {
			c.handleCustomThemePick()
		}),
	)

	mainMenu := fyne.NewMainMenu(fileMenu, viewMenu)
	c.window.SetMainMenu(mainMenu)
}

func (c *MainController) handleExport(format string) {
	if c.history.Len() == 0 {
		dialog.ShowInformation("Export History", "No conversions to export yet.", c.window)
		return
	}

	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			c.showError("Export Error", err)
			return
		}
		if writer == nil {
			return
		}

		go func() {
			defer writer.Close()

			records := c.history.List()
			var exportErr error
			switch format {
			case "csv":
				exportErr = c.exports.WriteCSV(writer, records)
			default:
				exportErr = c.exports.WriteText(writer, records)
			}

			fyne.Do(func() {
				if exportErr != nil {
					c.showError("Export Error", exportErr)
					return
				}
				c.view.SetStatus(fmt.Sprintf("Exported %d conversions", len(records)))
			})
		}()
	}, c.window)
}

func (c *MainController) handleCustomThemePick() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			c.showError("Theme Error", err)
			return
		}
		if reader == nil {
			return
		}

		path := reader.URI().Path()
		reader.Close()

		c.prefs.SetCustomThemePath(path)
		c.ApplyThemeMode(models.ThemeCustom)
	}, c.window)
}

func (c *MainController) showConversionError(err error) {
	switch {
	case errors.Is(err, converter.ErrInvalidValue):
		dialog.ShowInformation("Invalid Input", "Please enter a valid number.", c.window)
	case errors.Is(err, converter.ErrInvalidUnit):
		dialog.ShowInformation("Invalid Units", "Both units must belong to the selected category.", c.window)
	case errors.Is(err, converter.ErrInvalidCategory):
		dialog.ShowInformation("Invalid Category", "Please choose one of the listed categories.", c.window)
	default:
		c.showError("Conversion Error", err)
	}
}

func (c *MainController) showError(title string, err error) {
	c.log.Error("UI", err, map[string]interface{}{"title": title})

	fyne.Do(func() {
		dialog.ShowError(err, c.window)
	})
}

func formatRecord(record models.Record) string {
	return fmt.Sprintf("%s: %s %s = %s %s",
		record.Category,
		services.FormatValue(record.Input), record.FromUnit,
		services.FormatValue(record.Output), record.ToUnit,
	)
}
