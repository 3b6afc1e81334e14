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

func (a App) renderCostsTab(cw int) string {
	t := theme.Active
	c := a.proj.Costs
	var b strings.Builder

	y5 := model.HorizonYears - 1
	cards := []struct{ Label, Value, Note string }{
		{"Y1 Costs", cli.FormatMoney(c.Total.Annual[0]), ""},
		{"Y5 Costs", cli.FormatMoney(c.Total.Annual[y5]), ""},
		{"Y1 Team", cli.FormatMoney(c.Team.Annual[0]), "largest line"},
		{"Y1 Marketing", cli.FormatMoney(c.Marketing.Annual[0]), ""},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	b.WriteString(components.ContentCard(
		"Total Costs by Year",
		components.BarChart(c.Total.Annual[:], yearLabels(), t.Orange, components.CardInnerWidth(cw), 10),
		cw,
	))
	b.WriteString("\n")

	// Category mix (year 1) as horizontal bars
	type cat struct {
		name  string
		value float64
	}
	cats := []cat{
		{"Team", c.Team.Annual[0]},
		{"Marketing", c.Marketing.Annual[0]},
		{"Digital Infra", c.DigitalInfra.Annual[0]},
		{"Physical Infra", c.PhysicalInfra.Annual[0]},
		{"Hardware", c.Hardware.Annual[0]},
		{"Admin", c.Admin.Annual[0]},
		{"Travel", c.Travel.Annual[0]},
		{"Other", c.Other.Annual[0]},
	}

	maxVal := 0.0
	for _, ct := range cats {
		if ct.value > maxVal {
			maxVal = ct.value
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	barW := components.CardInnerWidth(cw) - 30
	if barW < 10 {
		barW = 10
	}

	var rows []string
	for _, ct := range cats {
		if ct.value <= 0 {
			continue
		}
		n := int(ct.value / maxVal * float64(barW))
		if n < 1 {
			n = 1
		}
		rows = append(rows, fmt.Sprintf("%s %s %s",
			labelStyle.Render(fmt.Sprintf("%-15s", ct.name)),
			barStyle.Render(strings.Repeat("█", n)),
			valueStyle.Render(cli.FormatMoney(ct.value)),
		))
	}
	b.WriteString(components.ContentCard("Year 1 Category Mix", strings.Join(rows, "\n"), cw))
	b.WriteString("\n")

	return b.String()
}
