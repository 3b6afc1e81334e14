package model

// Scenario names a multiplier preset applied across the pipeline.
type Scenario string

// The three canonical scenarios. Multipliers are fixed constants, not
// user-editable.
const (
	ScenarioConservative Scenario = "conservative"
	ScenarioBase         Scenario = "base"
	ScenarioAggressive   Scenario = "aggressive"
)

// AllScenarios lists the canonical scenarios in comparison order.
var AllScenarios = []Scenario{ScenarioConservative, ScenarioBase, ScenarioAggressive}

// Multipliers is the per-scenario adjustment triple. Growth scales user
// targets, Conversion scales premium conversion rates, Cost scales every
// cost category subtotal.
type Multipliers struct {
	Growth     float64
	Conversion float64
	Cost       float64
}

var scenarioMultipliers = map[Scenario]Multipliers{
	ScenarioConservative: {Growth: 0.7, Conversion: 0.8, Cost: 1.2},
	ScenarioBase:         {Growth: 1.0, Conversion: 1.0, Cost: 1.0},
	ScenarioAggressive:   {Growth: 1.4, Conversion: 1.2, Cost: 0.9},
}

// Valid reports whether s is one of the canonical scenarios.
func (s Scenario) Valid() bool {
	_, ok := scenarioMultipliers[s]
	return ok
}

// Multipliers returns the adjustment triple for s. Unknown scenarios fall
// back to base.
func (s Scenario) Multipliers() Multipliers {
	if m, ok := scenarioMultipliers[s]; ok {
		return m
	}
	return scenarioMultipliers[ScenarioBase]
}
