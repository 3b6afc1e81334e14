package engine

import "github.com/finplanhq/finplan/internal/model"

// userGrid holds monthly active-user curves per segment across the
// horizon, plus the scenario-adjusted end-of-year targets.
type userGrid struct {
	creators series60
	buyers   series60

	creatorTargets [model.HorizonYears]float64
	buyerTargets   [model.HorizonYears]float64
}

// interpolateCurve builds the monthly count curve for one segment.
// Within each year the count moves linearly between the bounding
// end-of-year targets, so a contraction year still interpolates
// monotonically downward instead of clamping. Year 1 ramps from zero and
// holds at zero before the revenue start month.
func interpolateCurve(targets [model.HorizonYears]float64, revenueStart int) series60 {
	var out series60
	for m := 1; m <= model.HorizonMonths; m++ {
		y := yearOf(m)
		k := m - (y-1)*model.MonthsPerYear // month within year, 1..12

		var prev float64
		if y > 1 {
			prev = targets[y-2]
		}
		cur := targets[y-1]

		if y == 1 && k < revenueStart {
			continue // holds at 0 before launch
		}
		out[m-1] = prev + (cur-prev)*float64(k)/float64(model.MonthsPerYear)
	}
	return out
}

// interpolateUsers produces the monthly active-user curves for both
// segments. Annual targets are scaled by the scenario's growth multiplier
// before interpolating.
func interpolateUsers(a model.Assumptions, mult model.Multipliers) userGrid {
	var g userGrid
	for y := 0; y < model.HorizonYears; y++ {
		g.creatorTargets[y] = a.Growth.Creators[y] * mult.Growth
		g.buyerTargets[y] = a.Growth.Buyers[y] * mult.Growth
	}
	g.creators = interpolateCurve(g.creatorTargets, a.Timeline.RevenueStartMonth)
	g.buyers = interpolateCurve(g.buyerTargets, a.Timeline.RevenueStartMonth)
	return g
}

// project exposes the user curves on the public contract. The annual view
// holds end-of-year counts, not sums.
func (g userGrid) project() model.UserProjection {
	var p model.UserProjection
	copy(p.Creators.Monthly[:], g.creators[:model.MonthsPerYear])
	copy(p.Buyers.Monthly[:], g.buyers[:model.MonthsPerYear])
	for y := 1; y <= model.HorizonYears; y++ {
		p.Creators.Annual[y-1] = g.creators[y*model.MonthsPerYear-1]
		p.Buyers.Annual[y-1] = g.buyers[y*model.MonthsPerYear-1]
	}
	return p
}
