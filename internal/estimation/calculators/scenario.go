package calculators

import (
	"fmt"

	"github.com/covid19-impact/estimator/internal/estimation"
)

// Scenario names, used as keys in the Engine results.
const (
	ScenarioImpact       = "impact"
	ScenarioSevereImpact = "severeImpact"
)

// Model assumptions, overridable through options.
const (
	// BestCaseInfectionMultiplier assumes ten actual infections per reported case.
	BestCaseInfectionMultiplier = 10
	// SevereCaseInfectionMultiplier assumes five times the under-reporting of the best case.
	SevereCaseInfectionMultiplier = 50

	DefaultDoublingPeriodDays    = 3
	DefaultSevereCasePercent     = 15.0
	DefaultICUCasePercent        = 5.0
	DefaultVentilatorCasePercent = 2.0
	DefaultBedReservePercent     = 35.0
)

// Compile-time assertion that Scenario implements the Calculator interface.
var _ estimation.Calculator = (*Scenario)(nil)

// Scenario projects the impact of the reported cases under one infection-detection assumption.
type Scenario struct {
	name                  string
	infectionMultiplier   int64
	doublingPeriodDays    int
	severeCasePercent     float64
	icuCasePercent        float64
	ventilatorCasePercent float64
	bedReservePercent     float64
}

// ScenarioOption is a functional option for configuring a Scenario calculator.
// Non-positive values are ignored and the default is kept.
type ScenarioOption func(*Scenario)

// WithInfectionMultiplier sets the number of actual infections assumed per reported case.
func WithInfectionMultiplier(multiplier int64) ScenarioOption {
	return func(s *Scenario) {
		if multiplier > 0 {
			s.infectionMultiplier = multiplier
		}
	}
}

// WithDoublingPeriodDays sets the number of days it takes for infections to double.
func WithDoublingPeriodDays(days int) ScenarioOption {
	return func(s *Scenario) {
		if days > 0 {
			s.doublingPeriodDays = days
		}
	}
}

// WithSevereCasePercent sets the share of infections that require hospitalization.
func WithSevereCasePercent(pct float64) ScenarioOption {
	return func(s *Scenario) {
		if pct > 0 {
			s.severeCasePercent = pct
		}
	}
}

// WithICUCasePercent sets the share of infections that require intensive care.
func WithICUCasePercent(pct float64) ScenarioOption {
	return func(s *Scenario) {
		if pct > 0 {
			s.icuCasePercent = pct
		}
	}
}

// WithVentilatorCasePercent sets the share of infections that require ventilators.
func WithVentilatorCasePercent(pct float64) ScenarioOption {
	return func(s *Scenario) {
		if pct > 0 {
			s.ventilatorCasePercent = pct
		}
	}
}

// WithBedReservePercent sets the share of hospital beds available to COVID-19 patients.
func WithBedReservePercent(pct float64) ScenarioOption {
	return func(s *Scenario) {
		if pct > 0 {
			s.bedReservePercent = pct
		}
	}
}

// NewScenario creates a Scenario calculator with default settings that
// can be overridden by options.
func NewScenario(name string, opts ...ScenarioOption) *Scenario {
	res := Scenario{
		name:                  name,
		infectionMultiplier:   BestCaseInfectionMultiplier,
		doublingPeriodDays:    DefaultDoublingPeriodDays,
		severeCasePercent:     DefaultSevereCasePercent,
		icuCasePercent:        DefaultICUCasePercent,
		ventilatorCasePercent: DefaultVentilatorCasePercent,
		bedReservePercent:     DefaultBedReservePercent,
	}

	for _, opt := range opts {
		opt(&res)
	}

	return &res
}

// NewBestCase creates the "impact" scenario (10 infections per reported case).
func NewBestCase(opts ...ScenarioOption) *Scenario {
	opts = append([]ScenarioOption{WithInfectionMultiplier(BestCaseInfectionMultiplier)}, opts...)
	return NewScenario(ScenarioImpact, opts...)
}

// NewSevereCase creates the "severeImpact" scenario (50 infections per reported case).
func NewSevereCase(opts ...ScenarioOption) *Scenario {
	opts = append([]ScenarioOption{WithInfectionMultiplier(SevereCaseInfectionMultiplier)}, opts...)
	return NewScenario(ScenarioSevereImpact, opts...)
}

// Name returns the scenario name.
func (c *Scenario) Name() string { return c.name }

// Calculate projects the scenario over days normalized days.
//
// Integer outputs are truncated toward zero and saturate at the int64 range.
// Hospital beds report the whole reserved capacity unless the severe cases
// exceed it, in which case the (negative) shortage is reported instead.
func (c *Scenario) Calculate(input estimation.Input, days int) (estimation.Impact, error) {
	if days < 0 {
		return estimation.Impact{}, fmt.Errorf("days must be non-negative, got %d", days)
	}
	if input.ReportedCases < 0 {
		return estimation.Impact{}, fmt.Errorf("reported cases must be non-negative, got %d", input.ReportedCases)
	}
	if input.TotalHospitalBeds < 0 {
		return estimation.Impact{}, fmt.Errorf("hospital beds must be non-negative, got %d", input.TotalHospitalBeds)
	}

	currentlyInfected := mulSaturating(input.ReportedCases, c.infectionMultiplier)
	infections := doubleN(currentlyInfected, days/c.doublingPeriodDays)

	severeCases := percentOf(float64(infections), c.severeCasePercent)

	reservedBeds := percentOf(float64(input.TotalHospitalBeds), c.bedReservePercent)
	availableBeds := reservedBeds
	if shortage := reservedBeds - severeCases; shortage < 0 {
		availableBeds = shortage
	}

	dollarsInFlight := float64(infections) *
		input.Region.AvgDailyIncomeInUSD *
		input.Region.AvgDailyIncomePopulation *
		float64(days)

	return estimation.Impact{
		CurrentlyInfected:                  currentlyInfected,
		InfectionsByRequestedTime:          infections,
		SevereCasesByRequestedTime:         severeCases,
		HospitalBedsByRequestedTime:        truncInt(availableBeds),
		CasesForICUByRequestedTime:         percentOf(float64(infections), c.icuCasePercent),
		CasesForVentilatorsByRequestedTime: percentOf(float64(infections), c.ventilatorCasePercent),
		DollarsInFlight:                    truncInt(dollarsInFlight),
	}, nil
}
