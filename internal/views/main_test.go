package views

import (
	"testing"

	"package-calculator/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/require"
)

func TestMainViewWiresCalculatorAndToolbar(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	w := a.NewWindow("")
	defer w.Close()
	mv := NewMainView(w)
	require.NotNil(t, mv.mainContainer)

	var opened bool
	mv.SetToolbarHandlers(components.ToolbarHandlers{OpenProject: func() { opened = true }})
	test.Tap(mv.toolbar.OpenProjectButton)
	require.True(t, opened)

	var fields []string
	mv.SetCalculateHandler(func(l, wd, h, g string) { fields = []string{l, wd, h, g} })
	test.Type(mv.calculator.LengthEntry, "1")
	test.Type(mv.calculator.WidthEntry, "2")
	test.Type(mv.calculator.HeightEntry, "3")
	test.Type(mv.calculator.WeightEntry, "4")
	test.Tap(mv.calculator.CalcButton)
	require.Equal(t, []string{"1", "2", "3", "4"}, fields)

	mv.SetResult("5.99")
	require.Equal(t, "5.99", mv.calculator.ResultLabel.Text)
}

func TestMainViewStatusAndTitle(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	w := a.NewWindow("")
	defer w.Close()
	mv := NewMainView(w)

	mv.SetWindowTitle("PackageCalculator – /proj")
	require.Equal(t, "PackageCalculator – /proj", w.Title())

	mv.SetStatus("Project opened")
	require.True(t, hasLabel(mv.mainContainer, "Project opened"))

	mv.SetPricingMode("corrected")
	require.True(t, hasLabel(mv.mainContainer, "Pricing: corrected"))
}

func hasLabel(obj fyne.CanvasObject, text string) bool {
	switch o := obj.(type) {
	case *widget.Label:
		return o.Text == text
	case *fyne.Container:
		for _, child := range o.Objects {
			if hasLabel(child, text) {
				return true
			}
		}
	}
	return false
}

func TestMainMenuMirrorsToolbar(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	w := a.NewWindow("")
	defer w.Close()
	mv := NewMainView(w)

	var calls []string
	mv.SetToolbarHandlers(components.ToolbarHandlers{
		OpenProject: func() { calls = append(calls, "open") },
		About:       func() { calls = append(calls, "about") },
	})
	mv.SetRefreshHandler(func() { calls = append(calls, "refresh") })
	mv.SetQuitHandler(func() { calls = append(calls, "quit") })

	require.Len(t, mv.mainMenu.Items, 2)
	file, help := mv.mainMenu.Items[0], mv.mainMenu.Items[1]
	require.Equal(t, "File", file.Label)
	require.Equal(t, "Help", help.Label)

	file.Items[0].Action()
	require.Equal(t, "Refresh Explorer", file.Items[1].Label)
	file.Items[1].Action()
	help.Items[0].Action()
	last := file.Items[len(file.Items)-1]
	require.True(t, last.IsQuit)
	last.Action()

	require.Equal(t, []string{"open", "refresh", "about", "quit"}, calls)
}
