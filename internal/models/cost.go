package models

import "strconv"

// Cost tiers in euros. Pricing only ever returns one of these.
const (
	CostSmall       = 3.89
	CostMedium      = 4.39
	CostLarge       = 5.99
	CostExtraLarge  = 7.99
	CostHeavyweight = 14.99
)

// FormatCost renders a cost with the shortest exact decimal, e.g. "5.99".
func FormatCost(cost float64) string {
	return strconv.FormatFloat(cost, 'f', -1, 64)
}
