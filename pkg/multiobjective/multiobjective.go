package multiobjective

import (
	"context"
	"fmt"

	"k8s.io/klog/v2"

	"github.com/zhenwuuu/JuliaSwarmSyndicate-sub013/apis/config"
	"github.com/zhenwuuu/JuliaSwarmSyndicate-sub013/pkg/multiobjective/algorithms"
	"github.com/zhenwuuu/JuliaSwarmSyndicate-sub013/pkg/multiobjective/framework"
)

// Method selects the optimization strategy. The set is closed: Optimize
// dispatches exhaustively over the declared methods and rejects anything
// else as a configuration error.
type Method string

const (
	MethodNSGA2             Method = "nsga2"
	MethodWeightedSum       Method = "weighted-sum"
	MethodEpsilonConstraint Method = "epsilon-constraint"
)

// Config selects and parameterizes the optimization method for one run.
type Config struct {
	Method Method

	// NSGA2 parameterizes MethodNSGA2.
	NSGA2 algorithms.NSGA2Config

	// Weights configures MethodWeightedSum. Empty means uniform weights.
	Weights []float64

	// PrimaryObjective and Constraints configure MethodEpsilonConstraint.
	PrimaryObjective int
	Constraints      []float64

	// Optimizer is the external single-objective capability required by the
	// scalarization methods. Ignored by MethodNSGA2.
	Optimizer framework.Optimizer
}

// NewConfigFromArgs converts the serializable argument struct a host ships
// across its process boundary into an engine Config. The external optimizer
// cannot cross that boundary and is attached by the host afterwards.
func NewConfigFromArgs(args *config.MultiObjectiveArgs) (Config, error) {
	if args == nil {
		return Config{}, fmt.Errorf("%w: nil args", framework.ErrInvalidConfig)
	}
	return Config{
		Method: Method(args.Method),
		NSGA2: algorithms.NSGA2Config{
			PopulationSize:       args.PopulationSize,
			MaxGenerations:       args.MaxGenerations,
			CrossoverProbability: args.CrossoverProbability,
			MutationProbability:  args.MutationProbability,
			TournamentSize:       args.TournamentSize,
			ParallelEvaluation:   args.ParallelEvaluation,
			Seed:                 args.Seed,
		},
		Weights:          append([]float64(nil), args.ObjectiveWeights...),
		PrimaryObjective: args.PrimaryObjective,
		Constraints:      append([]float64(nil), args.EpsilonConstraints...),
	}, nil
}

// Optimize is the engine entry point: it validates the inputs, dispatches
// to the configured method, and returns a Pareto front of mutually
// non-dominated trade-off solutions. All objectives follow the minimization
// convention.
func Optimize(ctx context.Context, objFuncs []framework.ObjectiveFunc, bounds []framework.Bounds, cfg Config) (*framework.ParetoFront, error) {
	logger := klog.FromContext(ctx)

	if len(objFuncs) == 0 {
		return nil, fmt.Errorf("%w: no objective functions", framework.ErrInvalidConfig)
	}
	if len(bounds) == 0 {
		return nil, fmt.Errorf("%w: no variable bounds", framework.ErrInvalidConfig)
	}
	logger.V(4).Info("dispatching optimization",
		"method", cfg.Method, "objectives", len(objFuncs), "variables", len(bounds))

	switch cfg.Method {
	case MethodNSGA2:
		nsga, err := algorithms.NewNSGAII(cfg.NSGA2, objFuncs, bounds)
		if err != nil {
			return nil, err
		}
		finalPop, err := nsga.Run(ctx)
		if err != nil {
			return nil, err
		}
		return algorithms.ParetoFrontOf(finalPop), nil

	case MethodWeightedSum:
		var (
			ws  *algorithms.WeightedSum
			err error
		)
		if len(cfg.Weights) == 0 {
			ws, err = algorithms.NewUniformWeights(len(objFuncs))
		} else {
			ws, err = algorithms.NewWeightedSum(cfg.Weights)
		}
		if err != nil {
			return nil, err
		}
		return ws.Optimize(ctx, objFuncs, bounds, cfg.Optimizer)

	case MethodEpsilonConstraint:
		ec, err := algorithms.NewEpsilonConstraint(cfg.PrimaryObjective, cfg.Constraints)
		if err != nil {
			return nil, err
		}
		return ec.Optimize(ctx, objFuncs, bounds, cfg.Optimizer)

	default:
		return nil, fmt.Errorf("%w: unknown method %q", framework.ErrInvalidConfig, cfg.Method)
	}
}
