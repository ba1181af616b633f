package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ToolbarHandlers are the callbacks behind the toolbar buttons. Nil entries do nothing.
type ToolbarHandlers struct {
	OpenProject func()
	NewFile     func()
	SaveFile    func()
	SaveFileAs  func()
	Settings    func()
	About       func()
	Info        func()
}

type Toolbar struct {
	container *fyne.Container
	handlers  ToolbarHandlers

	OpenProjectButton *widget.Button
	NewFileButton     *widget.Button
	SaveFileButton    *widget.Button
	SaveFileAsButton  *widget.Button
	SettingsButton    *widget.Button
	AboutButton       *widget.Button
	InfoButton        *widget.Button
}

func NewToolbar() *Toolbar {
	tb := &Toolbar{}
	tb.OpenProjectButton = widget.NewButton("Open Project", func() { call(tb.handlers.OpenProject) })
	tb.NewFileButton = widget.NewButton("New File", func() { call(tb.handlers.NewFile) })
	tb.SaveFileButton = widget.NewButton("Save File", func() { call(tb.handlers.SaveFile) })
	tb.SaveFileAsButton = widget.NewButton("Save File as", func() { call(tb.handlers.SaveFileAs) })
	tb.SettingsButton = widget.NewButton("Settings", func() { call(tb.handlers.Settings) })
	tb.AboutButton = widget.NewButton("About", func() { call(tb.handlers.About) })
	tb.InfoButton = widget.NewButton("Info", func() { call(tb.handlers.Info) })

	tb.container = container.NewHBox(
		tb.OpenProjectButton,
		tb.NewFileButton,
		tb.SaveFileButton,
		tb.SaveFileAsButton,
		widget.NewSeparator(),
		tb.SettingsButton,
		tb.AboutButton,
		tb.InfoButton,
	)
	return tb
}

func (tb *Toolbar) SetHandlers(handlers ToolbarHandlers) {
	tb.handlers = handlers
}

func (tb *Toolbar) GetContainer() *fyne.Container {
	return tb.container
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
