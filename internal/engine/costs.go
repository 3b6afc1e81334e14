package engine

import (
	"math"

	"github.com/finplanhq/finplan/internal/model"
)

// costGrid holds per-category monthly costs across the horizon. The total
// is the exact sum of the category values in every month.
type costGrid struct {
	team      series60
	digital   series60
	physical  series60
	hardware  series60
	marketing series60
	travel    series60
	admin     series60
	other     series60
	total     series60
}

// inflationFactor compounds the annual inflation rate from year 2 onward.
func inflationFactor(inflationRate float64, year int) float64 {
	return math.Pow(1+inflationRate/100, float64(year-1))
}

// computeCosts derives all cost categories on the monthly grid. Recurring
// run-rates inflate annually; one-time purchases do not. The scenario's
// cost multiplier is applied to every category subtotal as the final step.
func computeCosts(a model.Assumptions, mult model.Multipliers) costGrid {
	var g costGrid

	officeStart := a.PhysicalInfra.Start.Index()
	physicalRate := a.PhysicalInfra.OfficeRent + a.PhysicalInfra.Electricity +
		a.PhysicalInfra.Internet + a.PhysicalInfra.Maintenance
	adminRate := (a.Admin.Legal + a.Admin.Compliance + a.Admin.Accounting) *
		(1 + a.Admin.MiscBufferRate/100)

	for m := 1; m <= model.HorizonMonths; m++ {
		i := m - 1
		y := yearOf(m)
		k := m - (y-1)*model.MonthsPerYear
		infl := inflationFactor(a.Timeline.InflationRate, y)

		// Team payroll: members whose start has occurred, plus ESOP surcharge.
		var payroll float64
		for _, member := range a.Team.Members {
			if m >= member.Start.Index() {
				payroll += member.MonthlySalary
			}
		}
		g.team[i] = payroll * (1 + a.Team.ESOPRate/100) * infl

		// Digital infrastructure; AI compute only from its enable year.
		digital := a.DigitalInfra.Hosting + a.DigitalInfra.Storage + a.DigitalInfra.SaaSTools
		if y >= a.DigitalInfra.AIEnabledYear {
			digital += a.DigitalInfra.AICompute
		}
		g.digital[i] = digital * infl

		// Physical infrastructure, gated by the office start date.
		if m >= officeStart {
			g.physical[i] = physicalRate * infl
		}

		// Hardware: one-time purchases in their exact month, uninflated.
		for _, item := range a.Hardware {
			if item.Start.Index() == m {
				g.hardware[i] += item.UnitCost * float64(item.Quantity)
			}
		}

		// Marketing: paid and influencer spend ramp linearly over the ramp
		// window in year 1; the whole budget grows annually thereafter.
		var marketing float64
		if y == 1 {
			ramp := float64(k) / float64(a.Marketing.RampMonths)
			if ramp > 1 {
				ramp = 1
			}
			marketing = a.Marketing.Organic + (a.Marketing.Paid+a.Marketing.Influencer)*ramp
		} else {
			scale := 1 + a.Marketing.AnnualGrowthPct/100*float64(y-1)
			marketing = (a.Marketing.Organic + a.Marketing.Paid + a.Marketing.Influencer) * scale
		}
		g.marketing[i] = marketing * infl

		for _, item := range a.Travel {
			if lineItemAt(m, item.Start.Index(), item.Recurring) {
				v := item.MonthlyAmount
				if item.Recurring {
					v *= infl
				}
				g.travel[i] += v
			}
		}

		g.admin[i] = adminRate * infl

		for _, item := range a.OtherExpenses {
			if lineItemAt(m, item.Start.Index(), item.Recurring) {
				v := item.Amount
				if item.Recurring {
					v *= infl
				}
				g.other[i] += v
			}
		}

		// Scenario cost multiplier last, then the total as the exact sum of
		// category subtotals — no independent total formula to drift.
		g.team[i] *= mult.Cost
		g.digital[i] *= mult.Cost
		g.physical[i] *= mult.Cost
		g.hardware[i] *= mult.Cost
		g.marketing[i] *= mult.Cost
		g.travel[i] *= mult.Cost
		g.admin[i] *= mult.Cost
		g.other[i] *= mult.Cost

		g.total[i] = g.team[i] + g.digital[i] + g.physical[i] + g.hardware[i] +
			g.marketing[i] + g.travel[i] + g.admin[i] + g.other[i]
	}

	return g
}

func (g costGrid) project() model.CostProjection {
	return model.CostProjection{
		Team:          g.team.split(),
		DigitalInfra:  g.digital.split(),
		PhysicalInfra: g.physical.split(),
		Hardware:      g.hardware.split(),
		Marketing:     g.marketing.split(),
		Travel:        g.travel.split(),
		Admin:         g.admin.split(),
		Other:         g.other.split(),
		Total:         g.total.split(),
	}
}
