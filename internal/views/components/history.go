package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"gometrics/internal/models"
)

// HistoryPanel lists past conversions, newest first. Rendering of a record
// is delegated so the panel stays free of formatting rules.
type HistoryPanel struct {
	container   *fyne.Container
	list        *widget.List
	clearButton *widget.Button
	records     []models.Record

	format  func(models.Record) string
	onClear func()
}

func NewHistoryPanel(format func(models.Record) string, onClear func()) *HistoryPanel {
	panel := &HistoryPanel{
		format:  format,
		onClear: onClear,
	}

	panel.setupControls()
	return panel
}

func (hp *HistoryPanel) setupControls() {
	hp.list = widget.NewList(
		func() int {
			return len(hp.records)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("history entry")
		},
		func(id widget.ListItemID, object fyne.CanvasObject) {
			if id < 0 || id >= len(hp.records) {
				return
			}
			object.(*widget.Label).SetText(hp.format(hp.records[id]))
		},
	)

	hp.clearButton = widget.NewButton("Clear", func() {
		if hp.onClear != nil {
			hp.onClear()
		}
	})

	header := container.NewBorder(nil, nil,
		widget.NewLabelWithStyle("History", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		hp.clearButton,
	)

	hp.container = container.NewBorder(header, nil, nil, nil, hp.list)
}

func (hp *HistoryPanel) GetContainer() *fyne.Container {
	return hp.container
}

// SetRecords replaces the displayed history.
func (hp *HistoryPanel) SetRecords(records []models.Record) {
	fyne.Do(func() {
		hp.records = records
		hp.list.Refresh()
	})
}
