package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Calculator is the package input form: four fields, a unit column and the result.
type Calculator struct {
	container *fyne.Container

	LengthEntry *widget.Entry
	WidthEntry  *widget.Entry
	HeightEntry *widget.Entry
	WeightEntry *widget.Entry
	ResultLabel *widget.Label
	CalcButton  *widget.Button

	calculateHandler func(length, width, height, weight string)
}

func NewCalculator() *Calculator {
	c := &Calculator{}
	c.createComponents()
	c.buildLayout()
	return c
}

func (c *Calculator) createComponents() {
	c.LengthEntry = widget.NewEntry()
	c.WidthEntry = widget.NewEntry()
	c.HeightEntry = widget.NewEntry()
	c.WeightEntry = widget.NewEntry()
	c.ResultLabel = widget.NewLabel("?")
	c.CalcButton = widget.NewButton("Calculate", c.onCalculate)
	c.CalcButton.Importance = widget.HighImportance

	// Enter in the last field behaves like the button
	c.WeightEntry.OnSubmitted = func(string) { c.onCalculate() }
}

func (c *Calculator) buildLayout() {
	c.container = container.NewVBox(
		container.NewGridWithColumns(3,
			widget.NewLabel("Length:"), c.LengthEntry, widget.NewLabel("mm"),
			widget.NewLabel("Width:"), c.WidthEntry, widget.NewLabel("mm"),
			widget.NewLabel("Height:"), c.HeightEntry, widget.NewLabel("mm"),
			widget.NewLabel("Weight:"), c.WeightEntry, widget.NewLabel("g"),
			widget.NewLabel("Shipping Costs:"), c.ResultLabel, c.CalcButton,
		),
	)
}

func (c *Calculator) GetContainer() *fyne.Container {
	return c.container
}

func (c *Calculator) SetCalculateHandler(handler func(length, width, height, weight string)) {
	c.calculateHandler = handler
}

func (c *Calculator) SetResult(text string) {
	c.ResultLabel.SetText(text)
}

func (c *Calculator) onCalculate() {
	if c.calculateHandler != nil {
		c.calculateHandler(c.LengthEntry.Text, c.WidthEntry.Text, c.HeightEntry.Text, c.WeightEntry.Text)
	}
}
