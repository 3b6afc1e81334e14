package tui

import (
	"fmt"
	"strings"

	"github.com/finplanhq/finplan/internal/cli"
	"github.com/finplanhq/finplan/internal/engine"
	"github.com/finplanhq/finplan/internal/model"
	"github.com/finplanhq/finplan/internal/tui/components"
	"github.com/finplanhq/finplan/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderCashFlowTab(cw int) string {
	t := theme.Active
	c := a.proj.CashFlow
	var b strings.Builder

	y5 := model.HorizonYears - 1
	totalFunding := 0.0
	for _, v := range c.FundingReceived.Annual {
		totalFunding += v
	}

	runway := c.RunwayMonths[11]
	runwayNote := "at M12 burn rate"
	if runway >= engine.RunwayInfinite {
		runwayNote = "cash-flow positive"
	}

	cards := []struct{ Label, Value, Note string }{
		{"Cash (EOY1)", cli.FormatMoney(c.CumulativeCash.Annual[0]), ""},
		{"Cash (EOY5)", cli.FormatMoney(c.CumulativeCash.Annual[y5]), ""},
		{"Runway", cli.FormatRunway(runway), runwayNote},
		{"Total Funding", cli.FormatMoney(totalFunding), "all rounds"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	b.WriteString(components.ContentCard(
		"Cumulative Cash by Year",
		components.BarChart(c.CumulativeCash.Annual[:], yearLabels(), t.Green, components.CardInnerWidth(cw), 10),
		cw,
	))
	b.WriteString("\n")

	// Year-1 monthly cash position
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	var rows []string
	rows = append(rows, fmt.Sprintf("%s %s",
		labelStyle.Render(fmt.Sprintf("%-14s", "Cash")),
		components.Sparkline(c.CumulativeCash.Monthly[:], t.Green),
	))
	rows = append(rows, fmt.Sprintf("%s %s",
		labelStyle.Render(fmt.Sprintf("%-14s", "Net burn")),
		components.Sparkline(c.NetBurn.Monthly[:], t.Red),
	))

	runwayLine := labelStyle.Render(fmt.Sprintf("%-14s", "Runway (mo)"))
	for _, r := range c.RunwayMonths {
		runwayLine += valueStyle.Render(fmt.Sprintf("%5s", cli.FormatRunway(r)))
	}
	rows = append(rows, runwayLine)

	b.WriteString(components.ContentCard("Year 1 Monthly", strings.Join(rows, "\n"), cw))
	b.WriteString("\n")

	if totalFunding > 0 {
		pct := c.NetBurn.Annual[0] / totalFunding
		if pct > 1 {
			pct = 1
		}
		barW := components.CardInnerWidth(cw) - 6
		b.WriteString(components.ContentCard(
			"Year 1 Capital Consumed",
			components.ProgressBar(pct, barW),
			cw,
		))
		b.WriteString("\n")
	}

	return b.String()
}
