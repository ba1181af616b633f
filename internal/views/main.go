package views

import (
	"fmt"

	"package-calculator/internal/filetree"
	"package-calculator/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// MainView represents the main application window
type MainView struct {
	// UI Components
	window        fyne.Window
	mainContainer *fyne.Container
	toolbar       *components.Toolbar
	explorer      *components.Explorer
	calculator    *components.Calculator
	inspector     *components.Inspector
	messages      *components.Messages
	statusBar     *components.StatusBar

	mainMenu       *fyne.MainMenu
	refreshHandler func()
	quitHandler    func()
}

// NewMainView creates the view and installs it as the window content
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()

	return view
}

// initializeComponents creates all UI components
func (mv *MainView) initializeComponents() {
	mv.toolbar = components.NewToolbar()
	mv.explorer = components.NewExplorer()
	mv.calculator = components.NewCalculator()
	mv.inspector = components.NewInspector()
	mv.messages = components.NewMessages()
	mv.statusBar = components.NewStatusBar()
}

// buildLayout constructs the main layout: explorer left, calculator and inspector in
// the middle, messages below them, toolbar and status bar around everything.
func (mv *MainView) buildLayout() {
	editorSplit := container.NewHSplit(
		container.NewPadded(mv.calculator.GetContainer()),
		mv.inspector.GetContainer(),
	)
	editorSplit.SetOffset(0.8)

	messageSplit := container.NewVSplit(editorSplit, mv.messages.GetContainer())
	messageSplit.SetOffset(0.9)

	explorerSplit := container.NewHSplit(mv.explorer.GetContainer(), messageSplit)
	explorerSplit.SetOffset(0.2)

	mv.mainContainer = container.NewBorder(
		mv.toolbar.GetContainer(),   // top
		mv.statusBar.GetContainer(), // bottom
		nil,                         // left
		nil,                         // right
		explorerSplit,               // center
	)

	mv.window.SetContent(mv.mainContainer)
}

// Event handler setters - called by controller

// SetToolbarHandlers binds the toolbar buttons and the matching menu items
func (mv *MainView) SetToolbarHandlers(handlers components.ToolbarHandlers) {
	mv.toolbar.SetHandlers(handlers)
	mv.mainMenu = buildMainMenu(handlers, mv.onRefresh, mv.onQuit)
	mv.window.SetMainMenu(mv.mainMenu)
}

func (mv *MainView) SetCalculateHandler(handler func(length, width, height, weight string)) {
	mv.calculator.SetCalculateHandler(handler)
}

func (mv *MainView) SetNodeSelectHandler(handler func(id string)) {
	mv.explorer.SetSelectHandler(handler)
}

// UI update methods - called by controller

func (mv *MainView) SetWindowTitle(title string) {
	mv.window.SetTitle(title)
}

// RefreshTree redraws the explorer after a directory was re-listed
func (mv *MainView) RefreshTree() {
	mv.explorer.Refresh()
}

// LoadTree swaps in a new explorer tree; the previous one is dropped
func (mv *MainView) LoadTree(source components.TreeSource, rootID string) {
	mv.explorer.Load(source, rootID)
	mv.inspector.Clear()
}

func (mv *MainView) ShowNode(node *filetree.Node) {
	mv.inspector.Show(node)
}

func (mv *MainView) AppendMessage(text string) {
	mv.messages.Append(text)
}

func (mv *MainView) SetResult(text string) {
	mv.calculator.SetResult(text)
}

func (mv *MainView) SetStatus(status string) {
	mv.statusBar.SetStatus(status)
}

func (mv *MainView) SetPricingMode(mode string) {
	mv.statusBar.SetPricingMode(mode)
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(title string, err error) {
	dialog.ShowError(fmt.Errorf("%s: %w", title, err), mv.window)
}

// ShowInfo displays an information dialog
func (mv *MainView) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

// ShowFolderDialog asks for a project directory. Cancelling calls nothing.
func (mv *MainView) ShowFolderDialog(onChosen func(path string)) {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			mv.ShowError("Open Project", err)
			return
		}
		if uri == nil {
			return
		}
		onChosen(uri.Path())
	}, mv.window)
}

// ShowSettings lets the user pick a pricing mode.
func (mv *MainView) ShowSettings(current string, options []string, onSave func(mode string)) {
	modeSelect := widget.NewSelect(options, nil)
	modeSelect.SetSelected(current)

	items := []*widget.FormItem{
		widget.NewFormItem("Pricing mode", modeSelect),
	}
	dialog.ShowForm("Settings", "Save", "Cancel", items, func(confirmed bool) {
		if confirmed && modeSelect.Selected != "" {
			onSave(modeSelect.Selected)
		}
	}, mv.window)
}
