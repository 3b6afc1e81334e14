// Package model defines the assumption and projection types for finplan.
package model

// Projection horizon. Annual arrays cover five years; monthly detail is
// produced for year 1 only. The asymmetry is part of the output contract.
const (
	HorizonYears  = 5
	MonthsPerYear = 12
	HorizonMonths = HorizonYears * MonthsPerYear
)

// PlanMonth identifies a month within the projection horizon as a
// (year, month) pair, both 1-based.
type PlanMonth struct {
	Year  int `toml:"year"`
	Month int `toml:"month"`
}

// Index returns the absolute 1-based month index (1..60).
func (p PlanMonth) Index() int {
	return (p.Year-1)*MonthsPerYear + p.Month
}

// Timeline holds horizon-level settings.
type Timeline struct {
	RevenueStartMonth int      `toml:"revenue_start_month"`
	ProjectionYears   int      `toml:"projection_years"`
	InflationRate     float64  `toml:"inflation_rate"` // percent, applied annually from year 2
	Scenario          Scenario `toml:"scenario"`
}

// GrowthTargets holds end-of-year active user targets per segment.
// Exactly one entry per projection year.
type GrowthTargets struct {
	Creators []float64 `toml:"creators"`
	Buyers   []float64 `toml:"buyers"`
}

// SegmentMonetization holds subscription parameters for one user segment.
type SegmentMonetization struct {
	PremiumPrice   float64 `toml:"premium_price"`   // per subscriber per month
	ConversionRate float64 `toml:"conversion_rate"` // percent of new users that go premium
	ChurnRate      float64 `toml:"churn_rate"`      // percent of premium base lost per month
}

// Transactional holds volume-driven one-off revenue parameters.
type Transactional struct {
	JobsPerBuyer      float64 `toml:"jobs_per_buyer"` // postings per buyer per month
	BoostPrice        float64 `toml:"boost_price"`
	BoostTakeRate     float64 `toml:"boost_take_rate"`     // percent of jobs that buy a boost
	EscrowFeeRate     float64 `toml:"escrow_fee_rate"`     // percent of escrowed job value
	EscrowEnabledYear int     `toml:"escrow_enabled_year"` // escrow revenue starts this year
}

// TeamMember is one roster entry. ID is stable across edits.
type TeamMember struct {
	ID            string    `toml:"id"`
	Name          string    `toml:"name"`
	Role          string    `toml:"role"`
	MonthlySalary float64   `toml:"monthly_salary"`
	Start         PlanMonth `toml:"start"`
}

// TeamCosts holds the roster and the ESOP surcharge rate.
type TeamCosts struct {
	Members  []TeamMember `toml:"members"`
	ESOPRate float64      `toml:"esop_rate"` // percent surcharge on total payroll
}

// PhysicalInfra holds office run-rates, gated by the office start date.
type PhysicalInfra struct {
	OfficeRent  float64   `toml:"office_rent"`
	Electricity float64   `toml:"electricity"`
	Internet    float64   `toml:"internet"`
	Maintenance float64   `toml:"maintenance"`
	Start       PlanMonth `toml:"start"`
}

// DigitalInfra holds hosting run-rates. AI compute is added from its
// enable year onward.
type DigitalInfra struct {
	Hosting       float64 `toml:"hosting"`
	Storage       float64 `toml:"storage"`
	SaaSTools     float64 `toml:"saas_tools"`
	AICompute     float64 `toml:"ai_compute"`
	AIEnabledYear int     `toml:"ai_enabled_year"`
}

// HardwareItem is a one-time purchase counted only in its start month.
type HardwareItem struct {
	ID       string    `toml:"id"`
	Name     string    `toml:"name"`
	UnitCost float64   `toml:"unit_cost"`
	Quantity int       `toml:"quantity"`
	Start    PlanMonth `toml:"start"`
}

// Marketing holds the monthly run-rate and its ramp/growth shape.
// Paid and influencer spend ramp linearly from zero to the full run-rate
// over RampMonths in year 1; organic is flat from month 1. From year 2 the
// whole budget scales by AnnualGrowthPct per year.
type Marketing struct {
	Organic         float64 `toml:"organic"`
	Paid            float64 `toml:"paid"`
	Influencer      float64 `toml:"influencer"`
	RampMonths      int     `toml:"ramp_months"`
	AnnualGrowthPct float64 `toml:"annual_growth_pct"`
}

// AdminCosts holds flat admin run-rates plus a misc buffer percentage
// applied to the admin subtotal.
type AdminCosts struct {
	Legal          float64 `toml:"legal"`
	Compliance     float64 `toml:"compliance"`
	Accounting     float64 `toml:"accounting"`
	MiscBufferRate float64 `toml:"misc_buffer_rate"`
}

// TravelItem is a travel line item, recurring monthly from its start or
// counted once in the start month.
type TravelItem struct {
	ID            string    `toml:"id"`
	Name          string    `toml:"name"`
	MonthlyAmount float64   `toml:"monthly_amount"`
	Start         PlanMonth `toml:"start"`
	Recurring     bool      `toml:"recurring"`
}

// ExpenseItem is a miscellaneous expense line item.
type ExpenseItem struct {
	ID        string    `toml:"id"`
	Name      string    `toml:"name"`
	Amount    float64   `toml:"amount"`
	Start     PlanMonth `toml:"start"`
	Recurring bool      `toml:"recurring"`
}

// IncomeItem is a non-core income line item (ads, grants, interest).
type IncomeItem struct {
	ID        string    `toml:"id"`
	Name      string    `toml:"name"`
	Amount    float64   `toml:"amount"`
	Start     PlanMonth `toml:"start"`
	Recurring bool      `toml:"recurring"`
}

// TaxInputs holds tax and depreciation parameters. GST and TDS are
// informational: they are reported but never reduce net profit.
type TaxInputs struct {
	CorporateRate    float64 `toml:"corporate_rate"`
	GSTApplicable    bool    `toml:"gst_applicable"`
	GSTRate          float64 `toml:"gst_rate"`
	TDSRate          float64 `toml:"tds_rate"`
	DepreciationRate float64 `toml:"depreciation_rate"`
}

// FundingRound is one capital injection landing at a specific month.
type FundingRound struct {
	ID       string    `toml:"id"`
	Name     string    `toml:"name"`
	Amount   float64   `toml:"amount"`
	At       PlanMonth `toml:"at"`
	Investor string    `toml:"investor"`
	Notes    string    `toml:"notes,omitempty"`
}

// Assumptions is the complete, immutable input to the projection engine.
// The engine never mutates it; every recalculation receives a full snapshot.
type Assumptions struct {
	Name                string              `toml:"name"`
	Timeline            Timeline            `toml:"timeline"`
	Growth              GrowthTargets       `toml:"growth"`
	CreatorMonetization SegmentMonetization `toml:"creator_monetization"`
	BuyerMonetization   SegmentMonetization `toml:"buyer_monetization"`
	Transactional       Transactional       `toml:"transactional"`
	Team                TeamCosts           `toml:"team"`
	PhysicalInfra       PhysicalInfra       `toml:"physical_infra"`
	DigitalInfra        DigitalInfra        `toml:"digital_infra"`
	Hardware            []HardwareItem      `toml:"hardware"`
	Marketing           Marketing           `toml:"marketing"`
	Admin               AdminCosts          `toml:"admin"`
	Travel              []TravelItem        `toml:"travel"`
	OtherExpenses       []ExpenseItem       `toml:"other_expenses"`
	OtherIncome         []IncomeItem        `toml:"other_income"`
	Tax                 TaxInputs           `toml:"tax"`
	Funding             []FundingRound      `toml:"funding"`
}
