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

func (a App) renderPnLTab(cw int) string {
	t := theme.Active
	s := a.proj.PnL
	k := a.proj.KeyMetrics
	var b strings.Builder

	y5 := model.HorizonYears - 1
	cards := []struct{ Label, Value, Note string }{
		{"Y5 EBITDA", cli.FormatMoney(s.EBITDA.Annual[y5]), fmt.Sprintf("margin %s", cli.FormatPercentPoints(k.EBITDAMarginPct[y5]))},
		{"Y5 Net Profit", cli.FormatMoney(s.NetProfit.Annual[y5]), ""},
		{"Gross Margin", cli.FormatPercentPoints(k.GrossMarginPct[y5]), "of revenue"},
		{"Y5 Rule of 40", cli.FormatPercentPoints(k.RuleOf40[y5]), "growth + margin"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	b.WriteString(components.ContentCard(
		"EBITDA by Year",
		components.BarChart(s.EBITDA.Annual[:], yearLabels(), t.Green, components.CardInnerWidth(cw), 10),
		cw,
	))
	b.WriteString("\n")

	// Annual statement lines
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	lossStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)

	lines := []struct {
		name   string
		annual [model.HorizonYears]float64
	}{
		{"Revenue", s.Revenue.Annual},
		{"Gross Profit", s.GrossProfit.Annual},
		{"Operating Exp", s.OperatingExpenses.Annual},
		{"EBITDA", s.EBITDA.Annual},
		{"Depreciation", s.Depreciation.Annual},
		{"Taxes", s.Taxes.Annual},
		{"Net Profit", s.NetProfit.Annual},
	}

	var rows []string
	header := labelStyle.Render(fmt.Sprintf("%-15s", ""))
	for _, y := range yearLabels() {
		header += labelStyle.Render(fmt.Sprintf("%10s", y))
	}
	rows = append(rows, header)

	for _, line := range lines {
		row := labelStyle.Render(fmt.Sprintf("%-15s", line.name))
		for _, v := range line.annual {
			cell := fmt.Sprintf("%10s", cli.FormatMoney(v))
			if v < 0 {
				row += lossStyle.Render(cell)
			} else {
				row += valueStyle.Render(cell)
			}
		}
		rows = append(rows, row)
	}

	b.WriteString(components.ContentCard("Statement", strings.Join(rows, "\n"), cw))
	b.WriteString("\n")

	return b.String()
}
