package algorithms

import (
	"context"
	"fmt"

	"github.com/zhenwuuu/JuliaSwarmSyndicate-sub013/pkg/multiobjective/framework"
)

const EpsilonConstraintName = "EpsilonConstraint"

// constraintPenaltyFactor scales the quadratic penalty on constraint
// violations in the aggregated objective.
const constraintPenaltyFactor = 1000.0

// EpsilonConstraint reduces a multi-objective problem to a single objective
// by minimizing one primary objective and converting every other objective
// into a soft upper-bound constraint with a quadratic violation penalty.
type EpsilonConstraint struct {
	primary     int
	constraints []float64
}

// NewEpsilonConstraint builds a reducer minimizing objective primary subject
// to the given constraint bounds. Constraints are indexed by skipping the
// primary objective, so their length must be one less than the objective
// count; that check happens in Optimize once the objectives are known.
func NewEpsilonConstraint(primary int, constraints []float64) (*EpsilonConstraint, error) {
	if primary < 0 {
		return nil, fmt.Errorf("%w: primary objective index must be non-negative, got %d", framework.ErrInvalidConfig, primary)
	}
	if len(constraints) == 0 {
		return nil, fmt.Errorf("%w: empty constraint vector", framework.ErrInvalidConfig)
	}
	return &EpsilonConstraint{
		primary:     primary,
		constraints: append([]float64(nil), constraints...),
	}, nil
}

func (ec *EpsilonConstraint) Name() string {
	return EpsilonConstraintName
}

// Optimize runs the epsilon-constraint reduction. It fails fast on a
// primary index out of range or a constraint vector whose length is not
// (objective count - 1), before the external optimizer is ever invoked.
func (ec *EpsilonConstraint) Optimize(ctx context.Context, objFuncs []framework.ObjectiveFunc, bounds []framework.Bounds, opt framework.Optimizer) (*framework.ParetoFront, error) {
	if err := validateReducerInputs(objFuncs, bounds, opt); err != nil {
		return nil, err
	}
	if ec.primary >= len(objFuncs) {
		return nil, fmt.Errorf("%w: primary objective %d out of range for %d objectives", framework.ErrInvalidConfig, ec.primary, len(objFuncs))
	}
	if len(ec.constraints) != len(objFuncs)-1 {
		return nil, fmt.Errorf("%w: %d constraints for %d objectives, need %d", framework.ErrInvalidConfig, len(ec.constraints), len(objFuncs), len(objFuncs)-1)
	}

	scalar := func(x []float64) (float64, error) {
		total := 0.0
		ci := 0
		for j, objFunc := range objFuncs {
			v, err := objFunc(x)
			if err != nil {
				return 0, fmt.Errorf("%w: objective %d: %w", framework.ErrEvaluation, j, err)
			}
			if j == ec.primary {
				total += v
				continue
			}
			if excess := v - ec.constraints[ci]; excess > 0 {
				total += constraintPenaltyFactor * excess * excess
			}
			ci++
		}
		return total, nil
	}

	return reduceWithOptimizer(ctx, scalar, objFuncs, bounds, opt)
}
