package views

import (
	"package-calculator/internal/views/components"

	"fyne.io/fyne/v2"
)

// buildMainMenu mirrors the toolbar actions in the window menu.
func buildMainMenu(handlers components.ToolbarHandlers, refresh, quit func()) *fyne.MainMenu {
	quitItem := fyne.NewMenuItem("Quit", quit)
	quitItem.IsQuit = true

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Project...", handlers.OpenProject),
		fyne.NewMenuItem("Refresh Explorer", refresh),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("New File", handlers.NewFile),
		fyne.NewMenuItem("Save File", handlers.SaveFile),
		fyne.NewMenuItem("Save File as...", handlers.SaveFileAs),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings...", handlers.Settings),
		fyne.NewMenuItemSeparator(),
		quitItem,
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", handlers.About),
		fyne.NewMenuItem("Info", handlers.Info),
	)

	return fyne.NewMainMenu(fileMenu, helpMenu)
}

// SetRefreshHandler sets what the Refresh Explorer menu item does
func (mv *MainView) SetRefreshHandler(handler func()) {
	mv.refreshHandler = handler
}

func (mv *MainView) onRefresh() {
	if mv.refreshHandler != nil {
		mv.refreshHandler()
	}
}

// SetQuitHandler sets what the Quit menu item does
func (mv *MainView) SetQuitHandler(handler func()) {
	mv.quitHandler = handler
}

func (mv *MainView) onQuit() {
	if mv.quitHandler != nil {
		mv.quitHandler()
		return
	}
	mv.window.Close()
}
