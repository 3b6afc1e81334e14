package cmd

import (
	"fmt"

	"github.com/finplanhq/finplan/internal/cli"
	"github.com/finplanhq/finplan/internal/model"

	"github.com/spf13/cobra"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Conservative / base / aggressive comparison",
	RunE:  runScenarios,
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
}

func runScenarios(_ *cobra.Command, _ []string) error {
	_, p, err := computeProjections()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("SCENARIO COMPARISON"))
	fmt.Println()

	section := func(title string, pick func(model.ScenarioRun) [model.HorizonYears]float64) {
		t := cli.Table{
			Title:   title,
			Headers: yearHeaders("Scenario"),
		}
		for _, sc := range model.AllScenarios {
			run, ok := p.Scenarios[sc]
			if !ok {
				continue
			}
			t.Rows = append(t.Rows, moneyRow(string(sc), pick(run)))
		}
		fmt.Print(cli.RenderTable(t))
	}

	section("Revenue", func(r model.ScenarioRun) [model.HorizonYears]float64 {
		return r.Revenue.Total.Annual
	})
	section("Net Profit", func(r model.ScenarioRun) [model.HorizonYears]float64 {
		return r.PnL.NetProfit.Annual
	})
	section("Cash (EOY)", func(r model.ScenarioRun) [model.HorizonYears]float64 {
		return r.CashFlow.CumulativeCash.Annual
	})

	// Year-5 revenue spread against base
	base := p.Scenarios[model.ScenarioBase]
	y5 := model.HorizonYears - 1
	fmt.Println()
	for _, sc := range []model.Scenario{model.ScenarioConservative, model.ScenarioAggressive} {
		run, ok := p.Scenarios[sc]
		if !ok {
			continue
		}
		fmt.Println(cli.RenderKeyValue(
			fmt.Sprintf("%s vs base (Y5)", sc),
			cli.FormatDelta(run.Revenue.Total.Annual[y5], base.Revenue.Total.Annual[y5]),
			22,
		))
	}

	fmt.Println()
	return nil
}
