package service

import (
	"context"
	"fmt"

	"github.com/covid19-impact/estimator/internal/estimation"
	"github.com/covid19-impact/estimator/internal/estimation/calculators"
	"github.com/covid19-impact/estimator/pkg/requestid"
	"go.uber.org/zap"
)

// EstimationResult is the outcome of a single estimation: the input echoed back
// together with the best-case and severe-case projections.
type EstimationResult struct {
	Input        estimation.Input
	Impact       estimation.Impact
	SevereImpact estimation.Impact
}

// EstimationService runs validated inputs through the estimation Engine.
// It holds no per-request state and is safe for concurrent use.
type EstimationService struct {
	engine *estimation.Engine
}

// NewEstimationService creates an EstimationService with the best-case and
// severe-case scenarios registered. Options apply to both scenarios.
func NewEstimationService(opts ...calculators.ScenarioOption) *EstimationService {
	engine := estimation.NewEngine()

	engine.Register(calculators.NewBestCase(opts...))
	engine.Register(calculators.NewSevereCase(opts...))

	return &EstimationService{engine: engine}
}

// Estimate projects the impact of input for both scenarios.
func (es *EstimationService) Estimate(ctx context.Context, input estimation.Input) (*EstimationResult, error) {
	logger := zap.S().Named("estimation_service").With("request_id", requestid.FromContext(ctx))

	results, err := es.engine.Run(input)
	if err != nil {
		logger.Debugw("estimation rejected", "error", err)
		return nil, NewErrInvalidInput(err)
	}

	impact, ok := results[calculators.ScenarioImpact]
	if !ok {
		return nil, fmt.Errorf("scenario %s produced no result", calculators.ScenarioImpact)
	}
	severeImpact, ok := results[calculators.ScenarioSevereImpact]
	if !ok {
		return nil, fmt.Errorf("scenario %s produced no result", calculators.ScenarioSevereImpact)
	}

	logger.Debugw("estimation completed",
		"region", input.Region.Name,
		"period_type", input.PeriodType,
		"time_to_elapse", input.TimeToElapse,
		"infections", impact.InfectionsByRequestedTime,
		"severe_infections", severeImpact.InfectionsByRequestedTime)

	return &EstimationResult{
		Input:        input,
		Impact:       impact,
		SevereImpact: severeImpact,
	}, nil
}
