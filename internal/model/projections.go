package model

// Series is the dual view every pipeline stage exposes: twelve months of
// year-1 detail and five annual figures. Year-1 monthly values sum exactly
// to Annual[0] for additive metrics.
type Series struct {
	Monthly [MonthsPerYear]float64
	Annual  [HorizonYears]float64
}

// UserProjection holds the active-user curves per segment.
type UserProjection struct {
	Creators Series
	Buyers   Series // Annual holds end-of-year counts, Monthly the year-1 curve
}

// RevenueProjection breaks revenue into streams. Total is the exact sum of
// the streams in every period.
type RevenueProjection struct {
	CreatorSubscriptions Series
	BuyerSubscriptions   Series
	Boosts               Series
	Escrow               Series
	OtherIncome          Series
	Total                Series

	// Average premium subscriber counts per year, used for ARPU.
	PayingCreatorsAnnual [HorizonYears]float64
	PayingBuyersAnnual   [HorizonYears]float64
}

// CostProjection breaks costs into categories. Total is the exact sum of
// the categories in every period.
type CostProjection struct {
	Team          Series
	DigitalInfra  Series
	PhysicalInfra Series
	Hardware      Series
	Marketing     Series
	Travel        Series
	Admin         Series
	Other         Series
	Total         Series
}

// PnLProjection is the derived profit and loss statement.
// GSTCollected is informational and does not flow into NetProfit.
type PnLProjection struct {
	Revenue           Series
	GrossProfit       Series
	OperatingExpenses Series
	EBITDA            Series
	Depreciation      Series
	EBIT              Series
	Taxes             Series
	NetProfit         Series
	GSTCollected      [HorizonYears]float64
}

// CashFlowProjection tracks burn, runway, and cash position.
type CashFlowProjection struct {
	OperatingCashFlow Series
	NetBurn           Series
	FundingReceived   Series
	CumulativeCash    Series
	RunwayMonths      [MonthsPerYear]int // months of cash at trailing burn; RunwayInfinite if no burn
}

// BreakEven reports the first period where cumulative net profit turns
// non-negative. Month and Year are valid only when Reached is true.
type BreakEven struct {
	Month   int // absolute month index, 1..60
	Year    int // 1..5
	Reached bool
}

// UnitEconomics holds per-user annual metrics.
type UnitEconomics struct {
	ARPUCreators       [HorizonYears]float64
	ARPUBuyers         [HorizonYears]float64
	GrossMarginPerUser [HorizonYears]float64
	ContributionMargin [HorizonYears]float64
	BreakEven          BreakEven
}

// KeyMetrics holds VC-style health indicators.
type KeyMetrics struct {
	RevenueCAGR       float64 // percent over the full horizon
	CostCAGR          float64
	GrossMarginPct    [HorizonYears]float64
	EBITDAMarginPct   [HorizonYears]float64
	BurnMultiple      [HorizonYears]float64
	RuleOf40          [HorizonYears]float64
	CapitalEfficiency [HorizonYears]float64
}

// ScenarioRun is one full pipeline execution (stages 1-5) under a
// scenario's multipliers. Runs share no intermediate state.
type ScenarioRun struct {
	Scenario Scenario
	Users    UserProjection
	Revenue  RevenueProjection
	Costs    CostProjection
	PnL      PnLProjection
	CashFlow CashFlowProjection
}

// Projections is the complete engine output, recomputed wholesale from a
// full Assumptions snapshot on every call.
type Projections struct {
	Scenario      Scenario // the active scenario the primary run used
	Users         UserProjection
	Revenue       RevenueProjection
	Costs         CostProjection
	PnL           PnLProjection
	CashFlow      CashFlowProjection
	UnitEconomics UnitEconomics
	KeyMetrics    KeyMetrics
	Scenarios     map[Scenario]ScenarioRun
}
