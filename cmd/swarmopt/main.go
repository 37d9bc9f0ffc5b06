// swarmopt runs the multi-objective engine on one of the built-in benchmark
// problems and reports front quality metrics, optionally rendering a scatter
// plot of the found front against the true one.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/zhenwuuu/JuliaSwarmSyndicate-sub013/apis/config"
	"github.com/zhenwuuu/JuliaSwarmSyndicate-sub013/pkg/multiobjective"
	"github.com/zhenwuuu/JuliaSwarmSyndicate-sub013/pkg/multiobjective/algorithms"
	"github.com/zhenwuuu/JuliaSwarmSyndicate-sub013/pkg/multiobjective/benchmarks"
	"github.com/zhenwuuu/JuliaSwarmSyndicate-sub013/pkg/multiobjective/framework"
	"github.com/zhenwuuu/JuliaSwarmSyndicate-sub013/pkg/multiobjective/util"
)

func main() {
	benchmark := pflag.String("benchmark", "schaffer", "benchmark problem: schaffer, zdt1 or zdt2")
	numVars := pflag.Int("variables", 30, "number of decision variables for the ZDT problems")
	population := pflag.Int("population", 100, "population size")
	generations := pflag.Int("generations", 250, "number of generations")
	crossover := pflag.Float64("crossover", 0.9, "crossover probability")
	mutation := pflag.Float64("mutation", 0.1, "per-variable mutation probability")
	tournament := pflag.Int("tournament", 2, "tournament size")
	seed := pflag.Int64("seed", 0, "random seed (0 = fixed default)")
	parallel := pflag.Bool("parallel", false, "evaluate objectives in parallel within a generation")
	plotPath := pflag.String("plot", "", "write an HTML scatter plot of the result to this path")

	klog.InitFlags(nil)
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()

	args := &config.MultiObjectiveArgs{
		Method:               string(multiobjective.MethodNSGA2),
		PopulationSize:       *population,
		MaxGenerations:       *generations,
		CrossoverProbability: *crossover,
		MutationProbability:  *mutation,
		TournamentSize:       *tournament,
		ParallelEvaluation:   *parallel,
		Seed:                 *seed,
	}

	if err := run(*benchmark, *numVars, args, *plotPath); err != nil {
		fmt.Fprintln(os.Stderr, "swarmopt:", err)
		os.Exit(1)
	}
}

func run(benchmark string, numVars int, args *config.MultiObjectiveArgs, plotPath string) error {
	var problem framework.Problem
	switch benchmark {
	case "schaffer":
		problem = benchmarks.NewSchaffer()
	case "zdt1":
		problem = benchmarks.NewZDT1(numVars)
	case "zdt2":
		problem = benchmarks.NewZDT2(numVars)
	default:
		return fmt.Errorf("unknown benchmark %q", benchmark)
	}

	cfg, err := multiobjective.NewConfigFromArgs(args)
	if err != nil {
		return err
	}

	ctx := klog.NewContext(context.Background(), klog.Background())
	front, err := multiobjective.Optimize(ctx, problem.ObjectiveFuncs(), problem.Bounds(), cfg)
	if err != nil {
		return err
	}

	trueFront := problem.TrueParetoFront(100)
	fmt.Printf("%s on %s: %d non-dominated solutions\n", algorithms.NSGA2Name, problem.Name(), len(front.Solutions))
	fmt.Printf("  generational distance: %.6f\n", util.GenerationalDistance(front.ObjectiveValues, trueFront))
	fmt.Printf("  spacing:               %.6f\n", util.Spacing(front.ObjectiveValues))

	if plotPath != "" {
		if err := util.PlotResults(front.ObjectiveValues, problem, algorithms.NSGA2Name, plotPath); err != nil {
			return fmt.Errorf("plot: %w", err)
		}
		fmt.Printf("  plot written to %s\n", plotPath)
	}
	return nil
}
