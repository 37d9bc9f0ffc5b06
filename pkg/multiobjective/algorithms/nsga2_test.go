package algorithms

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zhenwuuu/JuliaSwarmSyndicate-sub013/pkg/multiobjective/benchmarks"
	"github.com/zhenwuuu/JuliaSwarmSyndicate-sub013/pkg/multiobjective/framework"
	"github.com/zhenwuuu/JuliaSwarmSyndicate-sub013/pkg/multiobjective/util"
)

func schafferObjectives() []framework.ObjectiveFunc {
	return benchmarks.NewSchaffer().ObjectiveFuncs()
}

func validConfig() NSGA2Config {
	return NSGA2Config{
		PopulationSize:       20,
		MaxGenerations:       50,
		CrossoverProbability: 0.9,
		MutationProbability:  0.1,
		TournamentSize:       2,
	}
}

func TestNSGA2ConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*NSGA2Config)
		valid  bool
	}{
		{"valid", func(c *NSGA2Config) {}, true},
		{"zero population", func(c *NSGA2Config) { c.PopulationSize = 0 }, false},
		{"negative population", func(c *NSGA2Config) { c.PopulationSize = -5 }, false},
		{"zero generations", func(c *NSGA2Config) { c.MaxGenerations = 0 }, false},
		{"crossover above one", func(c *NSGA2Config) { c.CrossoverProbability = 1.5 }, false},
		{"negative mutation", func(c *NSGA2Config) { c.MutationProbability = -0.1 }, false},
		{"tournament of one", func(c *NSGA2Config) { c.TournamentSize = 1 }, false},
		{"tournament equals population", func(c *NSGA2Config) { c.TournamentSize = c.PopulationSize }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, framework.ErrInvalidConfig)
			}
		})
	}
}

func TestNewNSGAIIInputValidation(t *testing.T) {
	bounds := []framework.Bounds{{L: -5, H: 5}}

	_, err := NewNSGAII(validConfig(), nil, bounds)
	require.ErrorIs(t, err, framework.ErrInvalidConfig)

	_, err = NewNSGAII(validConfig(), schafferObjectives(), nil)
	require.ErrorIs(t, err, framework.ErrInvalidConfig)

	_, err = NewNSGAII(validConfig(), schafferObjectives(), []framework.Bounds{{L: 5, H: -5}})
	require.ErrorIs(t, err, framework.ErrInvalidConfig)
}

func TestCrossoverIdenticalParents(t *testing.T) {
	cfg := validConfig()
	cfg.CrossoverProbability = 1.0
	n, err := NewNSGAII(cfg, schafferObjectives(), []framework.Bounds{{L: -5, H: 5}, {L: -5, H: 5}, {L: -5, H: 5}})
	require.NoError(t, err)

	parent1 := &framework.Individual{Variables: []float64{1.5, -2.25, 4.0}}
	parent2 := &framework.Individual{Variables: []float64{1.5, -2.25, 4.0}}
	for i := 0; i < 100; i++ {
		child1, child2 := n.crossover(parent1, parent2)
		require.Equal(t, parent1.Variables, child1.Variables)
		require.Equal(t, parent2.Variables, child2.Variables)
	}
}

func TestCrossoverDisabledCopiesParents(t *testing.T) {
	cfg := validConfig()
	cfg.CrossoverProbability = 0.0
	n, err := NewNSGAII(cfg, schafferObjectives(), []framework.Bounds{{L: -5, H: 5}, {L: -5, H: 5}})
	require.NoError(t, err)

	parent1 := &framework.Individual{Variables: []float64{1, 2}}
	parent2 := &framework.Individual{Variables: []float64{3, 4}}
	child1, child2 := n.crossover(parent1, parent2)
	require.Equal(t, parent1.Variables, child1.Variables)
	require.Equal(t, parent2.Variables, child2.Variables)
}

func TestMutationStaysInBounds(t *testing.T) {
	cfg := validConfig()
	cfg.MutationProbability = 1.0
	bounds := []framework.Bounds{{L: -1, H: 1}, {L: 0, H: 10}, {L: 3, H: 3}}
	n, err := NewNSGAII(cfg, schafferObjectives(), bounds)
	require.NoError(t, err)

	individual := &framework.Individual{Variables: []float64{0.5, 9.5, 3}}
	for i := 0; i < 1000; i++ {
		n.mutate(individual)
		for j, b := range bounds {
			v := individual.Variables[j]
			require.GreaterOrEqual(t, v, b.L, "variable %d below lower bound", j)
			require.LessOrEqual(t, v, b.H, "variable %d above upper bound", j)
		}
	}
	// The degenerate variable must never move.
	require.Equal(t, 3.0, individual.Variables[2])
}

func TestCrowdingDistanceBoundary(t *testing.T) {
	front := []*framework.Individual{
		{Objectives: []float64{0.1, 0.9}},
		{Objectives: []float64{0.4, 0.5}},
		{Objectives: []float64{0.6, 0.3}},
		{Objectives: []float64{0.9, 0.1}},
	}
	CrowdingDistance(front)

	for m := 0; m < 2; m++ {
		minIdx, maxIdx := 0, 0
		for i := range front {
			if front[i].Objectives[m] < front[minIdx].Objectives[m] {
				minIdx = i
			}
			if front[i].Objectives[m] > front[maxIdx].Objectives[m] {
				maxIdx = i
			}
		}
		require.True(t, math.IsInf(front[minIdx].Distance, 1), "minimum of objective %d not infinite", m)
		require.True(t, math.IsInf(front[maxIdx].Distance, 1), "maximum of objective %d not infinite", m)
	}
	// Interior members stay finite.
	for _, individual := range front {
		if individual.Objectives[0] == 0.4 || individual.Objectives[0] == 0.6 {
			require.False(t, math.IsInf(individual.Distance, 1))
			require.Greater(t, individual.Distance, 0.0)
		}
	}
}

func TestCrowdingDistanceSingleMember(t *testing.T) {
	front := []*framework.Individual{{Objectives: []float64{1, 2}, Distance: 5}}
	CrowdingDistance(front)
	require.Equal(t, 0.0, front[0].Distance)
}

func TestCrowdingDistanceZeroRangeObjective(t *testing.T) {
	front := []*framework.Individual{
		{Objectives: []float64{0.1, 7}},
		{Objectives: []float64{0.5, 7}},
		{Objectives: []float64{0.9, 7}},
	}
	CrowdingDistance(front)
	// The constant objective contributes nothing; the interior member's
	// distance comes from the first dimension alone.
	for _, individual := range front {
		if individual.Objectives[0] == 0.5 {
			require.InDelta(t, 1.0, individual.Distance, 1e-12)
		}
	}
}

func TestEnvironmentalSelectionSize(t *testing.T) {
	cfg := validConfig()
	n, err := NewNSGAII(cfg, schafferObjectives(), []framework.Bounds{{L: -5, H: 5}})
	require.NoError(t, err)

	rng := framework.NewRand(5)
	combined := make([]*framework.Individual, 2*cfg.PopulationSize)
	for i := range combined {
		combined[i] = &framework.Individual{
			Variables:  []float64{rng.Float64()},
			Objectives: []float64{rng.Float64(), rng.Float64()},
		}
	}

	next := n.selectNext(combined)
	require.Len(t, next, cfg.PopulationSize)
}

func TestReproduceCountAndOddPopulation(t *testing.T) {
	for _, popSize := range []int{10, 7} {
		cfg := validConfig()
		cfg.PopulationSize = popSize
		n, err := NewNSGAII(cfg, schafferObjectives(), []framework.Bounds{{L: -5, H: 5}})
		require.NoError(t, err)

		population := n.initialize()
		for _, individual := range population {
			require.NoError(t, n.evaluateOne(individual))
		}
		offspring := n.reproduce(population)
		require.Len(t, offspring, popSize)
	}
}

func TestRunDeterminism(t *testing.T) {
	cfg := validConfig()
	cfg.Seed = 1234

	runOnce := func() []*framework.Individual {
		n, err := NewNSGAII(cfg, schafferObjectives(), []framework.Bounds{{L: -5, H: 5}})
		require.NoError(t, err)
		pop, err := n.Run(context.Background())
		require.NoError(t, err)
		return pop
	}

	first := runOnce()
	second := runOnce()
	require.Equal(t, len(first), len(second))
	for i := range first {
		require.Equal(t, first[i].Variables, second[i].Variables)
		require.Equal(t, first[i].Objectives, second[i].Objectives)
	}
}

func TestRunSurfacesEvaluationError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	objFuncs := []framework.ObjectiveFunc{
		func(x []float64) (float64, error) {
			calls++
			if calls > 30 {
				return 0, boom
			}
			return x[0] * x[0], nil
		},
		func(x []float64) (float64, error) { return (x[0] - 2) * (x[0] - 2), nil },
	}

	n, err := NewNSGAII(validConfig(), objFuncs, []framework.Bounds{{L: -5, H: 5}})
	require.NoError(t, err)

	_, err = n.Run(context.Background())
	require.ErrorIs(t, err, framework.ErrEvaluation)
	require.ErrorIs(t, err, boom)
}

func TestRunStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n, err := NewNSGAII(validConfig(), schafferObjectives(), []framework.Bounds{{L: -5, H: 5}})
	require.NoError(t, err)

	_, err = n.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

// Scenario: the convex bi-objective trade-off f1(x)=x², f2(x)=(x-2)² over
// x ∈ [-5, 5], the problem every engine-level test in this repo reuses.
func TestNSGAIIWithSchaffer(t *testing.T) {
	cfg := NSGA2Config{
		PopulationSize:       20,
		MaxGenerations:       50,
		CrossoverProbability: 0.9,
		MutationProbability:  0.5,
		TournamentSize:       2,
		Seed:                 42,
	}
	n, err := NewNSGAII(cfg, schafferObjectives(), []framework.Bounds{{L: -5, H: 5}})
	require.NoError(t, err)

	finalPop, err := n.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, finalPop, cfg.PopulationSize)

	front := ParetoFrontOf(finalPop)
	require.NotEmpty(t, front.Solutions)
	require.Len(t, front.ObjectiveValues, len(front.Solutions))

	for i := range front.ObjectiveValues {
		for j := range front.ObjectiveValues {
			if i == j {
				continue
			}
			a := &framework.Individual{Objectives: front.ObjectiveValues[i]}
			b := &framework.Individual{Objectives: front.ObjectiveValues[j]}
			require.False(t, framework.Dominates(a, b), "returned front contains dominated solutions")
		}
	}
}

// Test problem: ZDT1 benchmark function
func TestNSGAIIWithZDT1(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping ZDT1 convergence run in short mode")
	}

	numVars := 30

	// Create the ZDT1 problem instance
	zdt1 := benchmarks.NewZDT1(numVars)

	config := NSGA2Config{
		PopulationSize:       100,
		MaxGenerations:       250,
		CrossoverProbability: 0.9,
		MutationProbability:  1.0 / float64(numVars),
		TournamentSize:       2,
		Seed:                 1,
	}

	nsga, err := NewNSGAII(config, zdt1.ObjectiveFuncs(), zdt1.Bounds())
	if err != nil {
		t.Fatal(err)
	}

	finalPop, err := nsga.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	// Basic validation
	if len(finalPop) != config.PopulationSize {
		t.Errorf("Expected population size %d, got %d", config.PopulationSize, len(finalPop))
	}

	// Verify Pareto front characteristics
	fronts := framework.NonDominatedSort(finalPop)
	if len(fronts) == 0 {
		t.Error("No fronts found in final population")
	}

	firstFront := fronts[0]
	results := make([]framework.ObjectiveSpacePoint, len(firstFront))
	for i := range firstFront {
		results[i] = firstFront[i].Objectives
	}
	err = util.PlotResults(results, zdt1, NSGA2Name, filepath.Join(t.TempDir(), "zdt1.html"))
	if err != nil {
		t.Errorf("Plot failed: %v", err)
	}

	// Check if first front is non-dominated
	for i := 0; i < len(firstFront); i++ {
		for j := 0; j < len(firstFront); j++ {
			if i != j && framework.Dominates(firstFront[i], firstFront[j]) {
				t.Error("First front contains dominated solutions")
			}
		}
	}
}
