package cmd

import (
	"fmt"
	"strconv"

	"github.com/finplanhq/finplan/internal/model"
	"github.com/finplanhq/finplan/internal/plan"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive wizard for the core plan assumptions",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	path := flagPlan
	if path == "" {
		path = plan.DefaultFileName
	}

	a := plan.Default()
	if plan.Exists(path) {
		loaded, err := plan.Load(path)
		if err != nil {
			return err
		}
		a = loaded
	}

	name := a.Name
	scenario := string(a.Timeline.Scenario)
	creatorPrice := strconv.FormatFloat(a.CreatorMonetization.PremiumPrice, 'f', -1, 64)
	buyerPrice := strconv.FormatFloat(a.BuyerMonetization.PremiumPrice, 'f', -1, 64)
	creatorTarget := strconv.FormatFloat(a.Growth.Creators[len(a.Growth.Creators)-1], 'f', -1, 64)
	buyerTarget := strconv.FormatFloat(a.Growth.Buyers[len(a.Growth.Buyers)-1], 'f', -1, 64)
	inflation := strconv.FormatFloat(a.Timeline.InflationRate, 'f', -1, 64)

	positiveNumber := func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("enter a number")
		}
		if v < 0 {
			return fmt.Errorf("must be non-negative")
		}
		return nil
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Plan name").
				Value(&name),
			huh.NewSelect[string]().
				Title("Scenario").
				Options(
					huh.NewOption("Conservative", string(model.ScenarioConservative)),
					huh.NewOption("Base", string(model.ScenarioBase)),
					huh.NewOption("Aggressive", string(model.ScenarioAggressive)),
				).
				Value(&scenario),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Creator premium price (₹/month)").
				Validate(positiveNumber).
				Value(&creatorPrice),
			huh.NewInput().
				Title("Buyer premium price (₹/month)").
				Validate(positiveNumber).
				Value(&buyerPrice),
			huh.NewInput().
				Title("Year-5 creator target").
				Validate(positiveNumber).
				Value(&creatorTarget),
			huh.NewInput().
				Title("Year-5 buyer target").
				Validate(positiveNumber).
				Value(&buyerTarget),
			huh.NewInput().
				Title("Inflation rate (%/year)").
				Validate(positiveNumber).
				Value(&inflation),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	a.Name = name
	a.Timeline.Scenario = model.Scenario(scenario)
	a.CreatorMonetization.PremiumPrice, _ = strconv.ParseFloat(creatorPrice, 64)
	a.BuyerMonetization.PremiumPrice, _ = strconv.ParseFloat(buyerPrice, 64)
	a.Growth.Creators[len(a.Growth.Creators)-1], _ = strconv.ParseFloat(creatorTarget, 64)
	a.Growth.Buyers[len(a.Growth.Buyers)-1], _ = strconv.ParseFloat(buyerTarget, 64)
	a.Timeline.InflationRate, _ = strconv.ParseFloat(inflation, 64)

	if err := a.Validate(); err != nil {
		return err
	}
	if err := plan.Save(path, a); err != nil {
		return err
	}

	fmt.Printf("  Saved %s\n", path)
	fmt.Println("  Run `finplan summary` to see the projection.")
	return nil
}
