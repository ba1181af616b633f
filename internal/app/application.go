package app

import (
	"package-calculator/internal/config"
	"package-calculator/internal/controllers"
	"package-calculator/internal/filetree"
	"package-calculator/internal/logger"
	"package-calculator/internal/pricing"
	"package-calculator/internal/session"
	"package-calculator/internal/shutdown"
	"package-calculator/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/afero"
)

const (
	AppID           = "com.packagecalculator.desktop"
	MinWindowWidth  = 800
	MinWindowHeight = 600
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	logger     logger.Logger
	config     config.Config
	session    *session.Session
	controller *controllers.MainController
	view       *views.MainView
	shutdown   *shutdown.Manager
}

// NewApplication builds the desktop application on the real filesystem.
func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	return NewWithDriver(app.NewWithID(AppID), afero.NewOsFs(), cfg, log)
}

// NewWithDriver wires every component onto the given Fyne app and filesystem.
func NewWithDriver(fyneApp fyne.App, fs afero.Fs, cfg config.Config, log logger.Logger) (*Application, error) {
	if log == nil {
		log = logger.NoOp{}
	}

	mode, err := pricing.ParseMode(cfg.Pricing.Mode)
	if err != nil {
		log.Warning("Application", "unknown pricing mode, using faithful", map[string]interface{}{
			"mode": cfg.Pricing.Mode,
		})
	}

	window := fyneApp.NewWindow(session.AppName)
	window.Resize(windowSize(cfg.Window))
	window.CenterOnScreen()
	window.SetMaster()

	sess := session.New(filetree.NewProvider(fs, log), pricing.NewEngine(mode), log)
	controller := controllers.NewMainController(sess, log)
	view := views.NewMainView(window)
	controller.SetMainView(view)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		config:     cfg,
		session:    sess,
		controller: controller,
		view:       view,
		shutdown:   shutdown.NewManager(log),
	}

	application.setupLifecycle()

	if cfg.Project.Root != "" {
		controller.OpenProjectPath(cfg.Project.Root)
	}

	log.Info("Application", "initialization complete", map[string]interface{}{
		"pricing_mode": mode.String(),
		"project_root": cfg.Project.Root,
	})
	return application, nil
}

// Run shows the window and blocks until the application quits.
func (a *Application) Run() error {
	a.window.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()
	return nil
}

func (a *Application) Session() *session.Session {
	return a.session
}

func windowSize(cfg config.WindowConfig) fyne.Size {
	width, height := cfg.Width, cfg.Height
	if width < MinWindowWidth {
		width = MinWindowWidth
	}
	if height < MinWindowHeight {
		height = MinWindowHeight
	}
	return fyne.NewSize(width, height)
}
