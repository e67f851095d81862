// Package views composes the application window from its components.
package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"gometrics/internal/models"
	"gometrics/internal/views/components"
)

// Callbacks are the user actions the view forwards to its controller.
type Callbacks struct {
	OnCategoryChange  func(string)
	OnSelectionChange func()
	OnConvert         func()
	OnClearHistory    func()
}

// MainView is the conversion screen: selectors on top, value input and
// result beneath, history filling the rest, status bar at the bottom.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container

	selector   *components.SelectorPanel
	conversion *components.ConversionPanel
	history    *components.HistoryPanel
	statusBar  *components.StatusBar
}

func NewMainView(window fyne.Window, categories []string,
	formatRecord func(models.Record) string, callbacks Callbacks) *MainView {

	view := &MainView{window: window}

	view.selector = components.NewSelectorPanel(categories,
		callbacks.OnCategoryChange, callbacks.OnSelectionChange)
	view.conversion = components.NewConversionPanel(
		callbacks.OnConvert, callbacks.OnSelectionChange)
	view.history = components.NewHistoryPanel(formatRecord, callbacks.OnClearHistory)
	view.statusBar = components.NewStatusBar()

	view.buildLayout()
	return view
}

func (mv *MainView) buildLayout() {
	topArea := container.NewVBox(
		mv.selector.GetContainer(),
		mv.conversion.GetContainer(),
	)

	mv.mainContainer = container.NewBorder(
		topArea,
		mv.statusBar.GetContainer(),
		nil,
		nil,
		mv.history.GetContainer(),
	)

	mv.window.SetContent(mv.mainContainer)
}

// Initialize applies the default category selection once every handler is
// wired up.
func (mv *MainView) Initialize() {
	mv.selector.Initialize()
}

// Selection returns the chosen category and unit names.
func (mv *MainView) Selection() (category, from, to string) {
	return mv.selector.Selection()
}

// InputValue returns the raw text of the value entry.
func (mv *MainView) InputValue() string {
	return mv.conversion.Value()
}

func (mv *MainView) SetUnits(units []string) {
	mv.selector.SetUnits(units)
}

func (mv *MainView) SetResult(text string) {
	mv.conversion.SetResult(text)
}

func (mv *MainView) ClearResult() {
	mv.conversion.ClearResult()
}

func (mv *MainView) ClearConversion() {
	mv.conversion.Clear()
}

func (mv *MainView) SetHistory(records []models.Record) {
	mv.history.SetRecords(records)
	mv.statusBar.SetHistoryCount(len(records))
}

func (mv *MainView) SetStatus(status string) {
	mv.statusBar.SetStatus(status)
}
