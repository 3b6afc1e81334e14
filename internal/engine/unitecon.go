package engine

import "github.com/finplanhq/finplan/internal/model"

// safeDiv divides with a zero-denominator guard, the engine-wide fallback
// policy: a metric over an empty base is 0, never NaN or infinity.
func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// computeUnitEconomics derives per-user annual metrics and the break-even
// point from the primary run.
func computeUnitEconomics(r runResult) model.UnitEconomics {
	var ue model.UnitEconomics

	rev := r.pub.Revenue
	costs := r.pub.Costs
	users := r.pub.Users

	for y := 0; y < model.HorizonYears; y++ {
		// ARPU: segment-attributable annual revenue over the segment's
		// average paying-user count.
		ue.ARPUCreators[y] = safeDiv(rev.CreatorSubscriptions.Annual[y], rev.PayingCreatorsAnnual[y])
		ue.ARPUBuyers[y] = safeDiv(
			rev.BuyerSubscriptions.Annual[y]+rev.Boosts.Annual[y]+rev.Escrow.Annual[y],
			rev.PayingBuyersAnnual[y],
		)

		totalUsers := users.Creators.Annual[y] + users.Buyers.Annual[y]
		grossProfit := rev.Total.Annual[y] * GrossMarginRatio
		ue.GrossMarginPerUser[y] = safeDiv(grossProfit, totalUsers)
		variablePerUser := safeDiv(costs.Marketing.Annual[y], totalUsers)
		ue.ContributionMargin[y] = ue.GrossMarginPerUser[y] - variablePerUser
	}

	ue.BreakEven = findBreakEven(r.pnl.netProfit)
	return ue
}

// findBreakEven scans the monthly grid for the first month where
// cumulative net profit turns non-negative. Reached stays false when the
// horizon ends first — the "beyond horizon" sentinel, never month 0.
func findBreakEven(netProfit series60) model.BreakEven {
	cum := 0.0
	for m := 0; m < model.HorizonMonths; m++ {
		cum += netProfit[m]
		if cum >= 0 {
			return model.BreakEven{
				Month:   m + 1,
				Year:    yearOf(m + 1),
				Reached: true,
			}
		}
	}
	return model.BreakEven{}
}
