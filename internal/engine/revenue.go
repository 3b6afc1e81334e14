package engine

import "github.com/finplanhq/finplan/internal/model"

// Escrow economics observed in production data: average escrowed job value
// and the share of jobs that actually route payment through escrow once
// the feature ships.
const (
	avgEscrowJobValue  = 50_000.0
	escrowAdoptionRate = 0.3
)

// revenueGrid holds per-stream monthly revenue across the horizon plus the
// premium subscriber base each subscription stream is billed on.
type revenueGrid struct {
	creatorSubs series60
	buyerSubs   series60
	boosts      series60
	escrow      series60
	otherIncome series60
	total       series60

	payingCreators series60
	payingBuyers   series60
}

// premiumCurve runs the compounding churn recurrence for one segment:
//
//	premium[m] = premium[m-1]*(1-churn) + conversion*newUsers[m]
//
// New conversions come only from net new users; in a contraction month the
// base decays by churn alone.
func premiumCurve(users series60, mon model.SegmentMonetization, convMult float64) series60 {
	churn := mon.ChurnRate / 100
	conv := mon.ConversionRate * convMult / 100

	var out series60
	prevUsers, prevPremium := 0.0, 0.0
	for m := 0; m < model.HorizonMonths; m++ {
		newUsers := users[m] - prevUsers
		if newUsers < 0 {
			newUsers = 0
		}
		premium := prevPremium*(1-churn) + newUsers*conv
		if premium < 0 {
			premium = 0
		}
		out[m] = premium
		prevUsers = users[m]
		prevPremium = premium
	}
	return out
}

// lineItemCurve spreads recurring/one-time line items onto the monthly
// grid: recurring items contribute every month from their start through
// the horizon end, one-time items only in their exact start month.
func lineItemAt(m, startIdx int, recurring bool) bool {
	if recurring {
		return m >= startIdx
	}
	return m == startIdx
}

// computeRevenue derives all revenue streams from the user curves. The
// scenario's conversion multiplier scales conversion rates only; prices
// and churn are unaffected.
func computeRevenue(a model.Assumptions, mult model.Multipliers, users userGrid) revenueGrid {
	var g revenueGrid

	g.payingCreators = premiumCurve(users.creators, a.CreatorMonetization, mult.Conversion)
	g.payingBuyers = premiumCurve(users.buyers, a.BuyerMonetization, mult.Conversion)

	tx := a.Transactional
	for m := 1; m <= model.HorizonMonths; m++ {
		i := m - 1
		y := yearOf(m)

		g.creatorSubs[i] = g.payingCreators[i] * a.CreatorMonetization.PremiumPrice
		g.buyerSubs[i] = g.payingBuyers[i] * a.BuyerMonetization.PremiumPrice

		jobs := users.buyers[i] * tx.JobsPerBuyer
		g.boosts[i] = jobs * tx.BoostTakeRate / 100 * tx.BoostPrice
		if y >= tx.EscrowEnabledYear {
			g.escrow[i] = jobs * avgEscrowJobValue * tx.EscrowFeeRate / 100 * escrowAdoptionRate
		}

		for _, item := range a.OtherIncome {
			if lineItemAt(m, item.Start.Index(), item.Recurring) {
				g.otherIncome[i] += item.Amount
			}
		}

		g.total[i] = g.creatorSubs[i] + g.buyerSubs[i] + g.boosts[i] +
			g.escrow[i] + g.otherIncome[i]
	}

	return g
}

// project exposes the revenue streams on the public contract, plus the
// average paying-subscriber counts per year used by unit economics.
func (g revenueGrid) project() model.RevenueProjection {
	p := model.RevenueProjection{
		CreatorSubscriptions: g.creatorSubs.split(),
		BuyerSubscriptions:   g.buyerSubs.split(),
		Boosts:               g.boosts.split(),
		Escrow:               g.escrow.split(),
		OtherIncome:          g.otherIncome.split(),
		Total:                g.total.split(),
	}
	for y := 0; y < model.HorizonYears; y++ {
		var creators, buyers float64
		for k := 0; k < model.MonthsPerYear; k++ {
			m := y*model.MonthsPerYear + k
			creators += g.payingCreators[m]
			buyers += g.payingBuyers[m]
		}
		p.PayingCreatorsAnnual[y] = creators / model.MonthsPerYear
		p.PayingBuyersAnnual[y] = buyers / model.MonthsPerYear
	}
	return p
}
