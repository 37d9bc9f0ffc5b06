package algorithms

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/zhenwuuu/JuliaSwarmSyndicate-sub013/pkg/multiobjective/framework"
)

const WeightedSumName = "WeightedSum"

// WeightedSum reduces a multi-objective problem to a single objective by
// aggregating Σ w_i·f_i(x) with a normalized weight vector, then delegates
// the scalar search to an external optimizer.
type WeightedSum struct {
	weights []float64
}

// NewWeightedSum builds a reducer from an explicit weight vector. Weights
// must be non-negative with a positive sum; they are normalized to sum to 1
// on construction.
func NewWeightedSum(weights []float64) (*WeightedSum, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("%w: empty weight vector", framework.ErrInvalidConfig)
	}
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("%w: negative weight %v at index %d", framework.ErrInvalidConfig, w, i)
		}
	}
	total := floats.Sum(weights)
	if total <= 0 {
		return nil, fmt.Errorf("%w: weights sum to %v, need a positive sum", framework.ErrInvalidConfig, total)
	}

	normalized := append([]float64(nil), weights...)
	floats.Scale(1.0/total, normalized)
	return &WeightedSum{weights: normalized}, nil
}

// NewUniformWeights builds a reducer weighting numObjectives objectives
// equally.
func NewUniformWeights(numObjectives int) (*WeightedSum, error) {
	if numObjectives <= 0 {
		return nil, fmt.Errorf("%w: objective count must be positive, got %d", framework.ErrInvalidConfig, numObjectives)
	}
	weights := make([]float64, numObjectives)
	for i := range weights {
		weights[i] = 1
	}
	return NewWeightedSum(weights)
}

func (ws *WeightedSum) Name() string {
	return WeightedSumName
}

// Weights returns a copy of the normalized weight vector.
func (ws *WeightedSum) Weights() []float64 {
	return append([]float64(nil), ws.weights...)
}

// Optimize runs the weighted-sum reduction. It fails fast when the weight
// vector does not match the objective count, before the external optimizer
// is ever invoked.
func (ws *WeightedSum) Optimize(ctx context.Context, objFuncs []framework.ObjectiveFunc, bounds []framework.Bounds, opt framework.Optimizer) (*framework.ParetoFront, error) {
	if err := validateReducerInputs(objFuncs, bounds, opt); err != nil {
		return nil, err
	}
	if len(ws.weights) != len(objFuncs) {
		return nil, fmt.Errorf("%w: %d weights for %d objectives", framework.ErrInvalidConfig, len(ws.weights), len(objFuncs))
	}

	scalar := func(x []float64) (float64, error) {
		sum := 0.0
		for i, objFunc := range objFuncs {
			v, err := objFunc(x)
			if err != nil {
				return 0, fmt.Errorf("%w: objective %d: %w", framework.ErrEvaluation, i, err)
			}
			sum += ws.weights[i] * v
		}
		return sum, nil
	}

	return reduceWithOptimizer(ctx, scalar, objFuncs, bounds, opt)
}
