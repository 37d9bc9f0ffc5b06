package framework

import (
	"context"
	"errors"
)

// ErrInvalidConfig is wrapped by every configuration failure detected before
// any objective evaluation takes place.
var ErrInvalidConfig = errors.New("multiobjective: invalid configuration")

// ErrEvaluation is wrapped by failures propagated from caller-supplied
// objective functions. The engine never retries; the in-progress generation
// is aborted and the error surfaces to the caller.
var ErrEvaluation = errors.New("multiobjective: objective evaluation failed")

// ObjectiveFunc is a single objective under the minimization convention.
// Implementations must be pure and safe to call from multiple goroutines.
type ObjectiveFunc func(x []float64) (float64, error)

// Bounds is the closed interval for one decision variable.
type Bounds struct {
	L float64
	H float64
}

// Individual represents a solution in the population: a decision vector
// paired with its cached objective vector.
type Individual struct {
	Variables  []float64
	Objectives []float64

	// Rank is the front index assigned by NonDominatedSort (0 = non-dominated).
	Rank int
	// Distance is the crowding distance within the individual's front.
	Distance float64
}

// ObjectiveSpacePoint represents an N-dimensional point in the objective space.
// As an example, for a problem with 2 objective functions f1 and f2, a point
// in the objective space could be [f1(x'), f2(x')], for the input of x'.
type ObjectiveSpacePoint []float64

// ParetoFront is the final non-dominated subset of an optimization run.
// Solutions[i] produced ObjectiveValues[i]; no two members dominate each other.
type ParetoFront struct {
	Solutions       [][]float64
	ObjectiveValues []ObjectiveSpacePoint
}

// Problem describes the contract a specific multi-objective problem needs to implement.
type Problem interface {
	Name() string

	ObjectiveFuncs() []ObjectiveFunc
	Bounds() []Bounds

	// TrueParetoFront is optional due to the difficulty of finding the true front
	// in some types of problems. When there isn't a way to find the true front,
	// just return nil.
	TrueParetoFront(int) []ObjectiveSpacePoint
}

// ScalarFunc is the single-objective function produced by scalarization.
type ScalarFunc func(x []float64) (float64, error)

// OptimizeResult is what an external single-objective optimizer hands back:
// the decision vectors of its final population.
type OptimizeResult struct {
	FinalPopulation [][]float64
}

// Optimizer is the external single-objective capability the scalarization
// reducers delegate to. Its internal update rule is opaque to this package;
// the only requirement is that it searches within bounds and returns its
// final population.
type Optimizer interface {
	Name() string
	Optimize(ctx context.Context, objective ScalarFunc, bounds []Bounds) (*OptimizeResult, error)
}
