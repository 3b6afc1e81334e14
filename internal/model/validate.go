package model

import "fmt"

// ValidationError reports a structural or range violation in an
// Assumptions value. Field is a dotted path to the offending field so the
// caller can highlight the specific input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid assumption %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// rate checks a percentage field against [0, max].
func rate(field string, v, max float64) *ValidationError {
	if v < 0 || v > max {
		return invalid(field, "must be between 0 and %g, got %g", max, v)
	}
	return nil
}

func nonNegative(field string, v float64) *ValidationError {
	if v < 0 {
		return invalid(field, "must not be negative, got %g", v)
	}
	return nil
}

// startMonth checks that a (year, month) pair resolves to an absolute
// month inside the horizon.
func startMonth(field string, p PlanMonth) *ValidationError {
	if p.Month < 1 || p.Month > MonthsPerYear {
		return invalid(field+".month", "must be between 1 and %d, got %d", MonthsPerYear, p.Month)
	}
	if p.Year < 1 || p.Year > HorizonYears {
		return invalid(field+".year", "must be between 1 and %d, got %d", HorizonYears, p.Year)
	}
	if idx := p.Index(); idx < 1 || idx > HorizonMonths {
		return invalid(field, "resolves to month %d, outside 1-%d", idx, HorizonMonths)
	}
	return nil
}

func validateSegment(prefix string, m SegmentMonetization) *ValidationError {
	if err := nonNegative(prefix+".premium_price", m.PremiumPrice); err != nil {
		return err
	}
	if err := rate(prefix+".conversion_rate", m.ConversionRate, 100); err != nil {
		return err
	}
	return rate(prefix+".churn_rate", m.ChurnRate, 100)
}

// Validate checks every invariant the engine relies on. It returns the
// first violation found as a *ValidationError, or nil. The engine rejects
// invalid assumptions before computing anything.
func (a Assumptions) Validate() error {
	tl := a.Timeline
	if tl.ProjectionYears != HorizonYears {
		return invalid("timeline.projection_years", "horizon is fixed at %d years, got %d", HorizonYears, tl.ProjectionYears)
	}
	if tl.RevenueStartMonth < 1 || tl.RevenueStartMonth > MonthsPerYear {
		return invalid("timeline.revenue_start_month", "must be between 1 and %d, got %d", MonthsPerYear, tl.RevenueStartMonth)
	}
	if err := rate("timeline.inflation_rate", tl.InflationRate, 100); err != nil {
		return err
	}
	if !tl.Scenario.Valid() {
		return invalid("timeline.scenario", "unknown scenario %q", tl.Scenario)
	}

	if len(a.Growth.Creators) != HorizonYears {
		return invalid("growth.creators", "need %d annual targets, got %d", HorizonYears, len(a.Growth.Creators))
	}
	if len(a.Growth.Buyers) != HorizonYears {
		return invalid("growth.buyers", "need %d annual targets, got %d", HorizonYears, len(a.Growth.Buyers))
	}
	for i, v := range a.Growth.Creators {
		if v < 0 {
			return invalid(fmt.Sprintf("growth.creators[%d]", i), "must not be negative, got %g", v)
		}
	}
	for i, v := range a.Growth.Buyers {
		if v < 0 {
			return invalid(fmt.Sprintf("growth.buyers[%d]", i), "must not be negative, got %g", v)
		}
	}

	if err := validateSegment("creator_monetization", a.CreatorMonetization); err != nil {
		return err
	}
	if err := validateSegment("buyer_monetization", a.BuyerMonetization); err != nil {
		return err
	}

	tx := a.Transactional
	if err := nonNegative("transactional.jobs_per_buyer", tx.JobsPerBuyer); err != nil {
		return err
	}
	if err := nonNegative("transactional.boost_price", tx.BoostPrice); err != nil {
		return err
	}
	if err := rate("transactional.boost_take_rate", tx.BoostTakeRate, 100); err != nil {
		return err
	}
	if err := rate("transactional.escrow_fee_rate", tx.EscrowFeeRate, 100); err != nil {
		return err
	}
	if tx.EscrowEnabledYear < 1 {
		return invalid("transactional.escrow_enabled_year", "must be at least 1, got %d", tx.EscrowEnabledYear)
	}

	if err := rate("team.esop_rate", a.Team.ESOPRate, 100); err != nil {
		return err
	}
	for i, m := range a.Team.Members {
		field := fmt.Sprintf("team.members[%d]", i)
		if err := nonNegative(field+".monthly_salary", m.MonthlySalary); err != nil {
			return err
		}
		if err := startMonth(field+".start", m.Start); err != nil {
			return err
		}
	}

	if err := startMonth("physical_infra.start", a.PhysicalInfra.Start); err != nil {
		return err
	}
	if a.DigitalInfra.AIEnabledYear < 1 {
		return invalid("digital_infra.ai_enabled_year", "must be at least 1, got %d", a.DigitalInfra.AIEnabledYear)
	}

	for i, h := range a.Hardware {
		field := fmt.Sprintf("hardware[%d]", i)
		if err := nonNegative(field+".unit_cost", h.UnitCost); err != nil {
			return err
		}
		if h.Quantity < 0 {
			return invalid(field+".quantity", "must not be negative, got %d", h.Quantity)
		}
		if err := startMonth(field+".start", h.Start); err != nil {
			return err
		}
	}

	mk := a.Marketing
	if mk.RampMonths < 1 || mk.RampMonths > MonthsPerYear {
		return invalid("marketing.ramp_months", "must be between 1 and %d, got %d", MonthsPerYear, mk.RampMonths)
	}
	if err := rate("marketing.annual_growth_pct", mk.AnnualGrowthPct, 100); err != nil {
		return err
	}

	if err := rate("admin.misc_buffer_rate", a.Admin.MiscBufferRate, 100); err != nil {
		return err
	}

	for i, item := range a.Travel {
		field := fmt.Sprintf("travel[%d]", i)
		if err := nonNegative(field+".monthly_amount", item.MonthlyAmount); err != nil {
			return err
		}
		if err := startMonth(field+".start", item.Start); err != nil {
			return err
		}
	}
	for i, item := range a.OtherExpenses {
		field := fmt.Sprintf("other_expenses[%d]", i)
		if err := nonNegative(field+".amount", item.Amount); err != nil {
			return err
		}
		if err := startMonth(field+".start", item.Start); err != nil {
			return err
		}
	}
	for i, item := range a.OtherIncome {
		field := fmt.Sprintf("other_income[%d]", i)
		if err := nonNegative(field+".amount", item.Amount); err != nil {
			return err
		}
		if err := startMonth(field+".start", item.Start); err != nil {
			return err
		}
	}

	if err := rate("tax.corporate_rate", a.Tax.CorporateRate, 40); err != nil {
		return err
	}
	if err := rate("tax.gst_rate", a.Tax.GSTRate, 100); err != nil {
		return err
	}
	if err := rate("tax.tds_rate", a.Tax.TDSRate, 100); err != nil {
		return err
	}
	if err := rate("tax.depreciation_rate", a.Tax.DepreciationRate, 100); err != nil {
		return err
	}

	for i, r := range a.Funding {
		field := fmt.Sprintf("funding[%d]", i)
		if err := nonNegative(field+".amount", r.Amount); err != nil {
			return err
		}
		if err := startMonth(field+".at", r.At); err != nil {
			return err
		}
	}

	return nil
}
