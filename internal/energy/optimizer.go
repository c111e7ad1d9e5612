package energy

import "neuromorph/internal/model"

// savingsCap bounds total savings so reported consumption never reaches
// zero.
const savingsCap = 0.999

// applyThreshold is the minimum expected savings for a strategy to be
// applied.
const applyThreshold = 0.5

// Strategy is one optimization technique with its expected payoff.
type Strategy struct {
	Name            string  `json:"name"`
	ExpectedSavings float64 `json:"expected_savings"`
	Effort          float64 `json:"effort"`
	Risk            float64 `json:"risk"`
}

// Opportunity pairs a strategy name with the power headroom it could
// recover.
type Opportunity struct {
	Strategy  Strategy `json:"strategy"`
	PowerOver float64  `json:"power_over"`
}

var builtinStrategies = []Strategy{
	{Name: "spike_suppression", ExpectedSavings: 0.8, Effort: 0.3, Risk: 0.1},
	{Name: "voltage_scaling", ExpectedSavings: 0.6, Effort: 0.5, Risk: 0.2},
}

// strategySavings returns the known savings factor for a strategy name,
// 0.3 for anything unrecognized.
func strategySavings(name string) float64 {
	for _, s := range builtinStrategies {
		if s.Name == name {
			return s.ExpectedSavings
		}
	}
	return 0.3
}

// Optimizer measures power through its monitors and applies the savings
// strategies that clear the payoff threshold.
type Optimizer struct {
	monitors []Monitor
}

// New builds an optimizer with the real-time monitor primary and the
// predictive monitor as fallback reference.
func New() *Optimizer {
	return NewWithMonitors(RealTimeMonitor{}, PredictiveMonitor{})
}

// NewWithMonitors builds an optimizer over an explicit monitor chain. The
// first monitor is the measurement source.
func NewWithMonitors(monitors ...Monitor) *Optimizer {
	return &Optimizer{monitors: monitors}
}

// Measure reads current power from the primary monitor.
func (o *Optimizer) Measure(stats model.NetworkStats) (model.EnergyMeasurement, error) {
	if o == nil || len(o.monitors) == 0 {
		return model.EnergyMeasurement{}, ErrNoMonitor
	}
	return o.monitors[0].Measure(stats)
}

// IdentifyOpportunities returns the strategies worth considering. The
// built-in techniques become opportunities only when measured power exceeds
// the configured budget; within budget there is nothing to recover.
func (o *Optimizer) IdentifyOpportunities(m model.EnergyMeasurement, cfg model.OptimizationConfig) []Opportunity {
	if cfg.EnergyBudget <= 0 || m.TotalPower <= cfg.EnergyBudget {
		return nil
	}
	over := m.TotalPower - cfg.EnergyBudget
	opps := make([]Opportunity, 0, len(builtinStrategies))
	for _, s := range builtinStrategies {
		opps = append(opps, Opportunity{Strategy: s, PowerOver: over})
	}
	return opps
}

// Apply selects the opportunities whose expected savings clear the
// threshold.
func (o *Optimizer) Apply(opps []Opportunity) []Strategy {
	var applied []Strategy
	for _, opp := range opps {
		if opp.Strategy.ExpectedSavings > applyThreshold {
			applied = append(applied, opp.Strategy)
		}
	}
	return applied
}

// Savings sums the applied strategies' factors and caps the total just
// short of full suppression.
func (o *Optimizer) Savings(applied []Strategy) float64 {
	savings := 0.0
	for _, s := range applied {
		savings += strategySavings(s.Name)
	}
	if savings > savingsCap {
		savings = savingsCap
	}
	return savings
}

// Optimize measures the network, identifies and applies strategies, and
// reports consumption scaled by the achieved savings.
func (o *Optimizer) Optimize(stats model.NetworkStats, cfg model.OptimizationConfig) (model.EnergyOptimizationResult, model.EnergyMeasurement, error) {
	m, err := o.Measure(stats)
	if err != nil {
		return model.EnergyOptimizationResult{}, model.EnergyMeasurement{}, err
	}

	applied := o.Apply(o.IdentifyOpportunities(m, cfg))
	savings := o.Savings(applied)

	names := make([]string, 0, len(applied))
	for _, s := range applied {
		names = append(names, s.Name)
	}

	return model.EnergyOptimizationResult{
		TotalEnergyConsumed: m.TotalPower * (1.0 - savings),
		EnergySavings:       savings,
		Strategies:          names,
	}, m, nil
}
