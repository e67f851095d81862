package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ConversionPanel holds the value entry, the convert action, and the result
// display.
type ConversionPanel struct {
	container     *fyne.Container
	input         *widget.Entry
	output        *widget.Entry
	convertButton *widget.Button

	onConvert     func()
	onInputChange func()
}

func NewConversionPanel(onConvert, onInputChange func()) *ConversionPanel {
	panel := &ConversionPanel{
		onConvert:     onConvert,
		onInputChange: onInputChange,
	}

	panel.setupControls()
	return panel
}

func (cp *ConversionPanel) setupControls() {
	cp.input = widget.NewEntry()
	cp.input.SetPlaceHolder("Enter value")
	cp.input.OnChanged = func(string) {
		if cp.onInputChange != nil {
			cp.onInputChange()
		}
	}
	cp.input.OnSubmitted = func(string) {
		if cp.onConvert != nil {
			cp.onConvert()
		}
	}

	cp.output = widget.NewEntry()
	cp.output.SetPlaceHolder("Result will appear here")
	cp.output.Disable()

	cp.convertButton = widget.NewButton("Convert", func() {
		if cp.onConvert != nil {
			cp.onConvert()
		}
	})
	cp.convertButton.Importance = widget.HighImportance

	cp.container = container.NewVBox(
		cp.input,
		cp.output,
		cp.convertButton,
	)
}

func (cp *ConversionPanel) GetContainer() *fyne.Container {
	return cp.container
}

// Value returns the raw input text.
func (cp *ConversionPanel) Value() string {
	return cp.input.Text
}

// SetResult displays a formatted conversion result.
func (cp *ConversionPanel) SetResult(text string) {
	fyne.Do(func() {
		cp.output.SetText(text)
	})
}

// ClearResult empties the result display, keeping the input.
func (cp *ConversionPanel) ClearResult() {
	fyne.Do(func() {
		cp.output.SetText("")
	})
}

// Clear empties both the input and the result.
func (cp *ConversionPanel) Clear() {
	fyne.Do(func() {
		cp.input.SetText("")
		cp.output.SetText("")
	})
}
