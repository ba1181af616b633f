// Package pricing maps a package's dimensions and weight onto a shipping cost tier.
package pricing

import (
	"strings"

	"package-calculator/internal/models"

	"github.com/pkg/errors"
)

// Mode selects how the tier table is evaluated.
type Mode int

const (
	// Faithful evaluates the rules in a fixed order where every matching rule overwrites
	// the previous result. The last rule always matches, so only height, width and weight
	// decide the price and the small and medium tiers are never produced.
	Faithful Mode = iota
	// Corrected evaluates the published price table first-match, including length.
	Corrected
)

var ErrUnknownMode = errors.New("unknown pricing mode")

func (m Mode) String() string {
	switch m {
	case Faithful:
		return "faithful"
	case Corrected:
		return "corrected"
	default:
		return "unknown"
	}
}

// ParseMode accepts "faithful" or "corrected", ignoring case.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "faithful":
		return Faithful, nil
	case "corrected":
		return Corrected, nil
	default:
		return Faithful, errors.Wrapf(ErrUnknownMode, "%q", name)
	}
}

// Engine computes shipping costs. It holds no state besides its mode and is safe to copy.
type Engine struct {
	mode Mode
}

func NewEngine(mode Mode) *Engine {
	return &Engine{mode: mode}
}

func (e *Engine) Mode() Mode {
	return e.mode
}

// CalcShippingCosts returns one of the models.Cost* tiers. It never fails; degenerate
// dimensions are priced like any other value.
func (e *Engine) CalcShippingCosts(pkg models.Package) float64 {
	if e.mode == Corrected {
		return correctedCost(pkg)
	}
	return faithfulCost(pkg)
}

func faithfulCost(pkg models.Package) float64 {
	var cost float64

	// up to 300x300x150 mm
	if pkg.Height() <= 300 && pkg.Width() <= 300 && pkg.Height() <= 150 {
		cost = models.CostSmall
	}
	// up to 600x300x150 mm
	if pkg.Height() <= 600 && pkg.Width() <= 300 && pkg.Height() <= 150 {
		cost = models.CostMedium
	}
	// up to 1200x600x600 mm and 5 kg, otherwise by weight alone
	if pkg.Height() <= 1200 && pkg.Width() <= 600 && pkg.Height() <= 600 && pkg.Weight() <= 5000 {
		cost = models.CostLarge
	} else if pkg.Weight() <= 10000 {
		cost = models.CostExtraLarge
	} else {
		cost = models.CostHeavyweight
	}

	return cost
}

func correctedCost(pkg models.Package) float64 {
	l, w, h, g := pkg.Length(), pkg.Width(), pkg.Height(), pkg.Weight()

	switch {
	case l <= 300 && w <= 300 && h <= 150:
		return models.CostSmall
	case l <= 600 && w <= 300 && h <= 150:
		return models.CostMedium
	case l <= 1200 && w <= 600 && h <= 600 && g <= 5000:
		return models.CostLarge
	case g <= 10000:
		return models.CostExtraLarge
	default:
		return models.CostHeavyweight
	}
}
