package tui

import (
	"fmt"
	"strings"

	"github.com/finplanhq/finplan/internal/cli"
	"github.com/finplanhq/finplan/internal/model"
	"github.com/finplanhq/finplan/internal/tui/components"
	"github.com/finplanhq/finplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderScenariosTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	active := a.assumptions.Timeline.Scenario
	y5 := model.HorizonYears - 1

	// Y5 revenue cards per scenario
	var cards []struct{ Label, Value, Note string }
	for _, sc := range model.AllScenarios {
		run, ok := a.proj.Scenarios[sc]
		if !ok {
			continue
		}
		note := ""
		if sc == active {
			note = "active"
		}
		cards = append(cards, struct{ Label, Value, Note string }{
			capitalize(string(sc)), cli.FormatMoney(run.Revenue.Total.Annual[y5]), note,
		})
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	lossStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)

	section := func(title string, pick func(model.ScenarioRun) [model.HorizonYears]float64) string {
		var rows []string

		header := labelStyle.Render(fmt.Sprintf("%-14s", ""))
		for _, y := range yearLabels() {
			header += labelStyle.Render(fmt.Sprintf("%10s", y))
		}
		rows = append(rows, header)

		for _, sc := range model.AllScenarios {
			run, ok := a.proj.Scenarios[sc]
			if !ok {
				continue
			}
			nameStyle := labelStyle
			if sc == active {
				nameStyle = activeStyle
			}
			row := nameStyle.Render(fmt.Sprintf("%-14s", string(sc)))
			for _, v := range pick(run) {
				cell := fmt.Sprintf("%10s", cli.FormatMoney(v))
				if v < 0 {
					row += lossStyle.Render(cell)
				} else {
					row += valueStyle.Render(cell)
				}
			}
			rows = append(rows, row)
		}
		return components.ContentCard(title, strings.Join(rows, "\n"), cw)
	}

	b.WriteString(section("Revenue", func(r model.ScenarioRun) [model.HorizonYears]float64 {
		return r.Revenue.Total.Annual
	}))
	b.WriteString("\n")
	b.WriteString(section("Net Profit", func(r model.ScenarioRun) [model.HorizonYears]float64 {
		return r.PnL.NetProfit.Annual
	}))
	b.WriteString("\n")
	b.WriteString(section("Cash (EOY)", func(r model.ScenarioRun) [model.HorizonYears]float64 {
		return r.CashFlow.CumulativeCash.Annual
	}))
	b.WriteString("\n")

	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
