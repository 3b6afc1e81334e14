package engine

import (
	"math"
	"testing"

	"github.com/finplanhq/finplan/internal/model"
)

func TestPremiumCurve_ChurnDecayWithoutNewUsers(t *testing.T) {
	// Flat user base after month 1: no net new users, so the premium base
	// must decay by churn alone, month over month.
	var users series60
	for m := range users {
		users[m] = 1000
	}
	mon := model.SegmentMonetization{PremiumPrice: 100, ConversionRate: 10, ChurnRate: 8}

	out := premiumCurve(users, mon, 1.0)

	if want := 100.0; math.Abs(out[0]-want) > epsilon {
		t.Fatalf("premium[0] = %v, want %v", out[0], want)
	}
	for m := 1; m < model.HorizonMonths; m++ {
		want := out[m-1] * 0.92
		if math.Abs(out[m]-want) > epsilon {
			t.Fatalf("premium[%d] = %v, want %v (pure churn decay)", m, out[m], want)
		}
	}
}

func TestPremiumCurve_ContractionNeverConvertsNegative(t *testing.T) {
	// Shrinking user base: negative deltas contribute no conversions and
	// the premium base stays non-negative.
	var users series60
	for m := range users {
		users[m] = float64(model.HorizonMonths - m)
	}
	mon := model.SegmentMonetization{ConversionRate: 50, ChurnRate: 20}

	out := premiumCurve(users, mon, 1.0)

	for m, v := range out {
		if v < 0 {
			t.Fatalf("premium[%d] = %v, want >= 0", m, v)
		}
	}
	for m := 1; m < model.HorizonMonths; m++ {
		if out[m] > out[m-1] {
			t.Fatalf("premium[%d] = %v grew during contraction (prev %v)", m, out[m], out[m-1])
		}
	}
}

func TestInterpolateCurve_HoldsZeroBeforeLaunch(t *testing.T) {
	targets := [model.HorizonYears]float64{1200, 2400, 3600, 4800, 6000}

	out := interpolateCurve(targets, 7)

	for m := 0; m < 6; m++ {
		if out[m] != 0 {
			t.Fatalf("month %d = %v before launch, want 0", m+1, out[m])
		}
	}
	if want := 1200.0 * 7 / 12; math.Abs(out[6]-want) > epsilon {
		t.Fatalf("month 7 = %v, want %v", out[6], want)
	}
	if out[11] != 1200 {
		t.Fatalf("month 12 = %v, want the year-1 target 1200", out[11])
	}
}

func TestInterpolateCurve_LinearWithinYear(t *testing.T) {
	targets := [model.HorizonYears]float64{1200, 2400, 3600, 4800, 6000}

	out := interpolateCurve(targets, 1)

	// Year 2 moves from 1200 to 2400 in twelve equal steps.
	for k := 1; k <= model.MonthsPerYear; k++ {
		want := 1200 + 1200*float64(k)/12
		if got := out[12+k-1]; math.Abs(got-want) > epsilon {
			t.Fatalf("year-2 month %d = %v, want %v", k, got, want)
		}
	}
}

func TestInterpolateCurve_ContractionYearDescends(t *testing.T) {
	targets := [model.HorizonYears]float64{1000, 400, 400, 400, 400}

	out := interpolateCurve(targets, 1)

	for k := 1; k < model.MonthsPerYear; k++ {
		if out[12+k] > out[12+k-1] {
			t.Fatalf("year-2 month %d = %v rose during contraction (prev %v)", k+1, out[12+k], out[12+k-1])
		}
	}
	if out[23] != 400 {
		t.Fatalf("year-2 end = %v, want the target 400", out[23])
	}
}
