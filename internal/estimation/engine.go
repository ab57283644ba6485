package estimation

import "fmt"

// Engine orchestrates Calculator objects and aggregates their results
type Engine struct {
	calculators []Calculator
}

// NewEngine creates a new Engine with no calculators registered.
func NewEngine() *Engine {
	return &Engine{
		calculators: make([]Calculator, 0),
	}
}

// Register adds a Calculator to participate in the estimation.
// Calculators are executed in the order they are registered.
// Register panics if a calculator with the same Name() is already registered,
// as duplicate names would silently overwrite results in Run.
func (e *Engine) Register(c Calculator) {
	for _, existing := range e.calculators {
		if existing.Name() == c.Name() {
			panic(fmt.Sprintf("estimation: calculator %q already registered", c.Name()))
		}
	}
	e.calculators = append(e.calculators, c)
}

// Run normalizes the requested time window once and executes all registered
// calculators against it. Results are keyed by calculator name.
func (e *Engine) Run(input Input) (map[string]Impact, error) {
	days, err := NormalizeDays(input.PeriodType, input.TimeToElapse)
	if err != nil {
		return nil, err
	}

	results := make(map[string]Impact, len(e.calculators))
	for _, calc := range e.calculators {
		impact, err := calc.Calculate(input, days)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", calc.Name(), err)
		}
		results[calc.Name()] = impact
	}
	return results, nil
}
