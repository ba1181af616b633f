package controllers

import (
	"fmt"

	"package-calculator/internal/filetree"
	"package-calculator/internal/logger"
	"package-calculator/internal/models"
	"package-calculator/internal/pricing"
	"package-calculator/internal/session"
	"package-calculator/internal/views/components"

	"github.com/pkg/errors"
)

const (
	AppVersion = "0.3"
	Copyright  = "(c) 2020 I. Bogicevic, Max Hiller"
	component  = "MainController"

	EventProjectOpened      = "project_opened"
	EventPricingModeChanged = "pricing_mode_changed"
)

// View is what the controller drives. *views.MainView implements it.
type View interface {
	SetToolbarHandlers(handlers components.ToolbarHandlers)
	SetCalculateHandler(handler func(length, width, height, weight string))
	SetNodeSelectHandler(handler func(id string))
	SetRefreshHandler(handler func())

	SetWindowTitle(title string)
	LoadTree(source components.TreeSource, rootID string)
	RefreshTree()
	ShowNode(node *filetree.Node)
	AppendMessage(text string)
	SetResult(text string)
	SetStatus(status string)
	SetPricingMode(mode string)
	ShowError(title string, err error)
	ShowInfo(title, message string)
	ShowFolderDialog(onChosen func(path string))
	ShowSettings(current string, options []string, onSave func(mode string))
}

// EventHandler represents a function that handles application events
type EventHandler func(data interface{}) error

// MainController translates view events into session operations
type MainController struct {
	session *session.Session
	view    View
	logger  logger.Logger

	selected string

	eventHandlers map[string][]EventHandler
}

// NewMainController creates a new main controller
func NewMainController(sess *session.Session, log logger.Logger) *MainController {
	if log == nil {
		log = logger.NoOp{}
	}
	return &MainController{
		session:       sess,
		logger:        log,
		eventHandlers: make(map[string][]EventHandler),
	}
}

// SetMainView associates the view with this controller and wires its events
func (mc *MainController) SetMainView(view View) {
	mc.view = view

	view.SetToolbarHandlers(components.ToolbarHandlers{
		OpenProject: mc.OpenProject,
		NewFile:     mc.NewFile,
		SaveFile:    mc.SaveFile,
		SaveFileAs:  mc.SaveFileAs,
		Settings:    mc.Settings,
		About:       mc.About,
		Info:        mc.Info,
	})
	view.SetCalculateHandler(mc.Calculate)
	view.SetNodeSelectHandler(mc.SelectNode)
	view.SetRefreshHandler(mc.Refresh)

	for _, m := range mc.session.Messages().All() {
		view.AppendMessage(m.String())
	}
	mc.session.Messages().Subscribe(func(m session.Message) {
		view.AppendMessage(m.String())
	})

	view.SetWindowTitle(mc.session.Title())
	view.SetPricingMode(mc.session.PricingMode().String())
}

// On registers handler for a controller event
func (mc *MainController) On(event string, handler EventHandler) {
	mc.eventHandlers[event] = append(mc.eventHandlers[event], handler)
}

// OpenProject asks for a directory and opens it
func (mc *MainController) OpenProject() {
	mc.view.ShowFolderDialog(func(path string) {
		mc.OpenProjectPath(path)
	})
}

// OpenProjectPath replaces the current project with rootPath
func (mc *MainController) OpenProjectPath(rootPath string) {
	if err := mc.session.OpenProject(rootPath); err != nil {
		mc.view.SetStatus("Open project failed")
		mc.view.ShowError("Open Project", err)
		return
	}

	mc.selected = ""
	mc.view.SetWindowTitle(mc.session.Title())
	mc.view.LoadTree(mc.session, mc.session.Tree().Root().ID())
	mc.view.SetStatus("Project opened")

	mc.emitEvent(EventProjectOpened, mc.session.RootPath())
}

// SelectNode shows the selected explorer node in the inspector
func (mc *MainController) SelectNode(id string) {
	node, ok := mc.session.Node(id)
	if !ok {
		return
	}
	mc.selected = id
	mc.view.ShowNode(node)
}

// Refresh re-lists the selected directory, or the project root when nothing
// or a file is selected.
func (mc *MainController) Refresh() {
	tree := mc.session.Tree()
	if tree == nil {
		mc.view.SetStatus("No project open")
		return
	}

	id := tree.Root().ID()
	if node, ok := mc.session.Node(mc.selected); ok && node.IsDir() {
		id = node.ID()
	}

	mc.session.ExpandNode(id)
	mc.view.RefreshTree()
	if node, ok := mc.session.Node(mc.selected); ok {
		mc.view.ShowNode(node)
	}
	mc.view.SetStatus("Explorer refreshed")
}

// Calculate prices the package typed into the calculator
func (mc *MainController) Calculate(length, width, height, weight string) {
	cost, err := mc.session.CalculateInput(length, width, height, weight)
	if err != nil {
		mc.view.SetResult("?")
		if errors.Is(err, models.ErrMalformedInput) {
			mc.view.SetStatus("Please enter whole numbers")
		}
		return
	}

	mc.view.SetResult(models.FormatCost(cost))
	mc.view.SetStatus("Shipping costs calculated")
}

// NewFile, SaveFile and SaveFileAs only report that file editing is unavailable.
func (mc *MainController) NewFile()    { mc.notAvailable("New File") }
func (mc *MainController) SaveFile()   { mc.notAvailable("Save File") }
func (mc *MainController) SaveFileAs() { mc.notAvailable("Save File as") }

func (mc *MainController) notAvailable(action string) {
	mc.session.Report(session.LevelInfo, fmt.Sprintf("%s is not available yet", action))
}

// Settings lets the user switch the pricing mode
func (mc *MainController) Settings() {
	options := []string{pricing.Faithful.String(), pricing.Corrected.String()}
	mc.view.ShowSettings(mc.session.PricingMode().String(), options, mc.ChangePricingMode)
}

// ChangePricingMode applies and announces a new pricing mode
func (mc *MainController) ChangePricingMode(name string) {
	mode, err := pricing.ParseMode(name)
	if err != nil {
		mc.handleError("Settings", err)
		return
	}

	if mode == mc.session.PricingMode() {
		return
	}
	mc.session.SetPricingMode(mode)
	mc.view.SetPricingMode(mode.String())

	mc.emitEvent(EventPricingModeChanged, mode)
}

func (mc *MainController) About() {
	mc.view.ShowInfo("About",
		"Computes shipping costs of packages from their dimensions and weight\n"+
			"and browses the text files of a project directory.")
}

func (mc *MainController) Info() {
	mc.view.ShowInfo("Info", fmt.Sprintf("Package Calculator v%s\n%s", AppVersion, Copyright))
}

// Shutdown is called once when the application exits
func (mc *MainController) Shutdown() {
	mc.logger.Info(component, "shutdown", nil)
}

func (mc *MainController) emitEvent(event string, data interface{}) {
	for _, handler := range mc.eventHandlers[event] {
		if err := handler(data); err != nil {
			mc.handleError(event, err)
		}
	}
}

func (mc *MainController) handleError(title string, err error) {
	mc.logger.Error(component, err, map[string]interface{}{
		"title": title,
	})
	mc.session.Report(session.LevelError, fmt.Sprintf("%s: %v", title, err))
	mc.view.ShowError(title, err)
}
