// Package components holds the individual widgets the main view is composed
// from. Components are passive: they render state and forward user actions
// through callbacks.
package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// SelectorPanel handles category and unit selection.
type SelectorPanel struct {
	container      *fyne.Container
	categorySelect *widget.Select
	fromSelect     *widget.Select
	toSelect       *widget.Select

	onCategoryChange  func(string)
	onSelectionChange func()
}

func NewSelectorPanel(categories []string,
	onCategoryChange func(string),
	onSelectionChange func()) *SelectorPanel {

	panel := &SelectorPanel{
		onCategoryChange:  onCategoryChange,
		onSelectionChange: onSelectionChange,
	}

	panel.setupControls(categories)
	return panel
}

func (sp *SelectorPanel) setupControls(categories []string) {
	sp.categorySelect = widget.NewSelect(categories, func(name string) {
		if sp.onCategoryChange != nil {
			sp.onCategoryChange(name)
		}
	})

	notify := func(string) {
		if sp.onSelectionChange != nil {
			sp.onSelectionChange()
		}
	}
	sp.fromSelect = widget.NewSelect(nil, notify)
	sp.toSelect = widget.NewSelect(nil, notify)

	grid := container.NewGridWithColumns(3,
		container.NewVBox(widget.NewLabel("Category"), sp.categorySelect),
		container.NewVBox(widget.NewLabel("From"), sp.fromSelect),
		container.NewVBox(widget.NewLabel("To"), sp.toSelect),
	)

	sp.container = container.NewPadded(grid)
}

func (sp *SelectorPanel) GetContainer() *fyne.Container {
	return sp.container
}

// Initialize selects the first category, which cascades into the unit lists
// through the category callback.
func (sp *SelectorPanel) Initialize() {
	if len(sp.categorySelect.Options) > 0 {
		sp.categorySelect.SetSelected(sp.categorySelect.Options[0])
	}
}

// SetUnits replaces both unit lists and resets the selection: the first unit
// on the left, the second (when present) on the right.
func (sp *SelectorPanel) SetUnits(units []string) {
	fyne.Do(func() {
		sp.fromSelect.Options = units
		sp.toSelect.Options = units
		sp.fromSelect.Refresh()
		sp.toSelect.Refresh()

		if len(units) > 0 {
			sp.fromSelect.SetSelected(units[0])
			target := units[0]
			if len(units) > 1 {
				target = units[1]
			}
			sp.toSelect.SetSelected(target)
		}
	})
}

// Selection returns the chosen category and unit names.
func (sp *SelectorPanel) Selection() (category, from, to string) {
	return sp.categorySelect.Selected, sp.fromSelect.Selected, sp.toSelect.Selected
}
