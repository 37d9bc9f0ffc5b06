package algorithms

import (
	"context"
	"fmt"

	"github.com/zhenwuuu/JuliaSwarmSyndicate-sub013/pkg/multiobjective/framework"
)

// ParetoFrontOf extracts the Pareto front (first non-dominated front) from a
// population. Rows are deep-copied so the returned front outlives the run's
// working buffers.
func ParetoFrontOf(population []*framework.Individual) *framework.ParetoFront {
	if len(population) == 0 {
		return &framework.ParetoFront{}
	}

	fronts := framework.NonDominatedSort(population)
	first := fronts[0]

	front := &framework.ParetoFront{
		Solutions:       make([][]float64, len(first)),
		ObjectiveValues: make([]framework.ObjectiveSpacePoint, len(first)),
	}
	for i, individual := range first {
		front.Solutions[i] = append([]float64(nil), individual.Variables...)
		front.ObjectiveValues[i] = append(framework.ObjectiveSpacePoint(nil), individual.Objectives...)
	}
	return front
}

// reduceWithOptimizer is the shared back half of the scalarization reducers:
// delegate the scalar search to the external optimizer, re-evaluate the full
// objective vectors over its final population, and keep the non-dominated
// subset.
func reduceWithOptimizer(ctx context.Context, scalar framework.ScalarFunc, objFuncs []framework.ObjectiveFunc, bounds []framework.Bounds, opt framework.Optimizer) (*framework.ParetoFront, error) {
	result, err := opt.Optimize(ctx, scalar, bounds)
	if err != nil {
		return nil, fmt.Errorf("external optimizer %s: %w", opt.Name(), err)
	}
	if result == nil || len(result.FinalPopulation) == 0 {
		return nil, fmt.Errorf("external optimizer %s returned an empty final population", opt.Name())
	}

	population := make([]*framework.Individual, len(result.FinalPopulation))
	for i, vars := range result.FinalPopulation {
		objs := make([]float64, len(objFuncs))
		for j, objFunc := range objFuncs {
			v, err := objFunc(vars)
			if err != nil {
				return nil, fmt.Errorf("%w: individual %d objective %d: %w", framework.ErrEvaluation, i, j, err)
			}
			objs[j] = v
		}
		population[i] = &framework.Individual{
			Variables:  append([]float64(nil), vars...),
			Objectives: objs,
		}
	}

	return ParetoFrontOf(population), nil
}

// validateReducerInputs covers the checks shared by both reducers.
func validateReducerInputs(objFuncs []framework.ObjectiveFunc, bounds []framework.Bounds, opt framework.Optimizer) error {
	if len(objFuncs) == 0 {
		return fmt.Errorf("%w: no objective functions", framework.ErrInvalidConfig)
	}
	if len(bounds) == 0 {
		return fmt.Errorf("%w: no variable bounds", framework.ErrInvalidConfig)
	}
	if opt == nil {
		return fmt.Errorf("%w: scalarization requires an external optimizer", framework.ErrInvalidConfig)
	}
	return nil
}
