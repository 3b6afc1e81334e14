package cmd

import (
	"fmt"

	"github.com/finplanhq/finplan/internal/cli"
	"github.com/finplanhq/finplan/internal/model"

	"github.com/spf13/cobra"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "VC-style key metrics",
	RunE:  runMetrics,
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}

func runMetrics(_ *cobra.Command, _ []string) error {
	_, p, err := computeProjections()
	if err != nil {
		return err
	}
	k := p.KeyMetrics

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("KEY METRICS  %s", p.Scenario)))
	fmt.Println()

	pctRow := func(label string, vals [model.HorizonYears]float64) []string {
		row := []string{label}
		for _, v := range vals {
			row = append(row, cli.FormatPercentPoints(v))
		}
		return row
	}
	multRow := func(label string, vals [model.HorizonYears]float64) []string {
		row := []string{label}
		for _, v := range vals {
			row = append(row, cli.FormatMultiple(v))
		}
		return row
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: yearHeaders("Metric"),
		Rows: [][]string{
			pctRow("Gross Margin", k.GrossMarginPct),
			pctRow("EBITDA Margin", k.EBITDAMarginPct),
			pctRow("Rule of 40", k.RuleOf40),
			multRow("Burn Multiple", k.BurnMultiple),
			multRow("Capital Efficiency", k.CapitalEfficiency),
		},
	}))
	fmt.Println()

	fmt.Println(cli.RenderKeyValue("Revenue CAGR", cli.FormatPercentPoints(k.RevenueCAGR), 13))
	fmt.Println(cli.RenderKeyValue("Cost CAGR", cli.FormatPercentPoints(k.CostCAGR), 13))
	fmt.Println()

	return nil
}
