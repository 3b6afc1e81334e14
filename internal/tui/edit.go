package tui

import (
	"fmt"
	"strconv"

	"github.com/finplanhq/finplan/internal/model"

	"github.com/charmbracelet/huh"
)

// editValues holds the string-typed form state for the quick-edit overlay.
// Values are parsed back into the assumptions only on form completion.
type editValues struct {
	scenario      string
	creatorPrice  string
	buyerPrice    string
	creatorTarget string // end-of-year-5 creators
	buyerTarget   string
	marketingPaid string
}

func numberField(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v < 0 {
		return fmt.Errorf("must be non-negative")
	}
	return nil
}

func newEditForm(a model.Assumptions, vals *editValues) *huh.Form {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

	vals.scenario = string(a.Timeline.Scenario)
	vals.creatorPrice = f(a.CreatorMonetization.PremiumPrice)
	vals.buyerPrice = f(a.BuyerMonetization.PremiumPrice)
	vals.creatorTarget = f(a.Growth.Creators[len(a.Growth.Creators)-1])
	vals.buyerTarget = f(a.Growth.Buyers[len(a.Growth.Buyers)-1])
	vals.marketingPaid = f(a.Marketing.Paid)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Scenario").
				Options(
					huh.NewOption("Conservative", string(model.ScenarioConservative)),
					huh.NewOption("Base", string(model.ScenarioBase)),
					huh.NewOption("Aggressive", string(model.ScenarioAggressive)),
				).
				Value(&vals.scenario),
			huh.NewInput().
				Title("Creator premium price (₹/mo)").
				Validate(numberField).
				Value(&vals.creatorPrice),
			huh.NewInput().
				Title("Buyer premium price (₹/mo)").
				Validate(numberField).
				Value(&vals.buyerPrice),
			huh.NewInput().
				Title("Year-5 creator target").
				Validate(numberField).
				Value(&vals.creatorTarget),
			huh.NewInput().
				Title("Year-5 buyer target").
				Validate(numberField).
				Value(&vals.buyerTarget),
			huh.NewInput().
				Title("Paid marketing (₹/mo)").
				Validate(numberField).
				Value(&vals.marketingPaid),
		),
	)
}

// applyEditValues writes the parsed form values back into the assumptions.
// Returns true if anything actually changed.
func applyEditValues(a *model.Assumptions, vals editValues) bool {
	changed := false

	set := func(dst *float64, src string) {
		v, err := strconv.ParseFloat(src, 64)
		if err != nil || v == *dst {
			return
		}
		*dst = v
		changed = true
	}

	if sc := model.Scenario(vals.scenario); sc.Valid() && sc != a.Timeline.Scenario {
		a.Timeline.Scenario = sc
		changed = true
	}

	set(&a.CreatorMonetization.PremiumPrice, vals.creatorPrice)
	set(&a.BuyerMonetization.PremiumPrice, vals.buyerPrice)
	set(&a.Growth.Creators[len(a.Growth.Creators)-1], vals.creatorTarget)
	set(&a.Growth.Buyers[len(a.Growth.Buyers)-1], vals.buyerTarget)
	set(&a.Marketing.Paid, vals.marketingPaid)

	return changed
}
