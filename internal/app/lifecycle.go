package app

import (
	"package-calculator/internal/config"
	"package-calculator/internal/controllers"
	"package-calculator/internal/pricing"

	"fyne.io/fyne/v2"
	"github.com/pkg/errors"
)

func (a *Application) setupLifecycle() {
	a.shutdown.Register(a.session)
	a.shutdown.Register(a.controller)

	a.controller.On(controllers.EventPricingModeChanged, a.persistPricingMode)

	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.shutdown.Shutdown()
		a.window.Close()
	})
	a.view.SetQuitHandler(a.quit)

	a.shutdown.Listen(func() {
		fyne.Do(a.quit)
	})
}

func (a *Application) quit() {
	a.logger.Info("Application", "quit requested", nil)
	a.shutdown.Shutdown()
	a.fyneApp.Quit()
}

// Shutdown runs the shutdown sequence without closing the window.
func (a *Application) Shutdown() {
	a.shutdown.Shutdown()
}

func (a *Application) persistPricingMode(data interface{}) error {
	mode, ok := data.(pricing.Mode)
	if !ok {
		return errors.Errorf("unexpected pricing mode payload %T", data)
	}

	a.config.Pricing.Mode = mode.String()
	if err := config.SavePricingMode(a.config.Pricing.Mode); err != nil {
		return errors.Wrap(err, "save settings")
	}

	a.logger.Info("Application", "settings saved", map[string]interface{}{
		"pricing_mode": a.config.Pricing.Mode,
	})
	return nil
}
