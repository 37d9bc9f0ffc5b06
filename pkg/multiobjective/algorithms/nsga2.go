package algorithms

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/zhenwuuu/JuliaSwarmSyndicate-sub013/pkg/multiobjective/framework"
)

const (
	NSGA2Name = "NSGA-II"

	// Distribution indices for the real-coded operators.
	crossoverDistributionIndex = 15.0
	mutationDistributionIndex  = 20.0

	// Decision-variable values closer than this are treated as numerically
	// identical.
	boundTolerance = 1e-10
)

// NSGA2Config holds the run parameters of the NSGA-II algorithm.
type NSGA2Config struct {
	PopulationSize       int
	MaxGenerations       int
	CrossoverProbability float64
	MutationProbability  float64
	TournamentSize       int

	// ParallelEvaluation fans objective evaluation out across goroutines
	// within a generation. Selection still waits for every evaluation of the
	// generation to finish.
	ParallelEvaluation bool

	// Seed drives all randomness of the run. The same seed reproduces an
	// identical run; 0 selects a fixed default seed.
	Seed int64
}

// Validate reports the first configuration problem, wrapping
// framework.ErrInvalidConfig. A valid config never fails mid-run for
// configuration reasons.
func (c NSGA2Config) Validate() error {
	if c.PopulationSize <= 0 {
		return fmt.Errorf("%w: population size must be positive, got %d", framework.ErrInvalidConfig, c.PopulationSize)
	}
	if c.MaxGenerations <= 0 {
		return fmt.Errorf("%w: max generations must be positive, got %d", framework.ErrInvalidConfig, c.MaxGenerations)
	}
	if c.CrossoverProbability < 0 || c.CrossoverProbability > 1 {
		return fmt.Errorf("%w: crossover probability must be in [0,1], got %v", framework.ErrInvalidConfig, c.CrossoverProbability)
	}
	if c.MutationProbability < 0 || c.MutationProbability > 1 {
		return fmt.Errorf("%w: mutation probability must be in [0,1], got %v", framework.ErrInvalidConfig, c.MutationProbability)
	}
	if c.TournamentSize < 2 {
		return fmt.Errorf("%w: tournament size must be at least 2, got %d", framework.ErrInvalidConfig, c.TournamentSize)
	}
	if c.TournamentSize >= c.PopulationSize {
		return fmt.Errorf("%w: tournament size %d must be smaller than population size %d", framework.ErrInvalidConfig, c.TournamentSize, c.PopulationSize)
	}
	return nil
}

// NSGAII is the elitist non-dominated sorting genetic algorithm.
type NSGAII struct {
	cfg      NSGA2Config
	objFuncs []framework.ObjectiveFunc
	bounds   []framework.Bounds
	rng      *rand.Rand
}

// NewNSGAII creates a new instance of NSGA-II with the given parameters.
// It fails fast on configuration errors, before any objective evaluation.
func NewNSGAII(cfg NSGA2Config, objFuncs []framework.ObjectiveFunc, bounds []framework.Bounds) (*NSGAII, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(objFuncs) == 0 {
		return nil, fmt.Errorf("%w: no objective functions", framework.ErrInvalidConfig)
	}
	if len(bounds) == 0 {
		return nil, fmt.Errorf("%w: no variable bounds", framework.ErrInvalidConfig)
	}
	for i, b := range bounds {
		if b.L > b.H {
			return nil, fmt.Errorf("%w: bounds[%d] has lower %v above upper %v", framework.ErrInvalidConfig, i, b.L, b.H)
		}
	}
	return &NSGAII{
		cfg:      cfg,
		objFuncs: objFuncs,
		bounds:   bounds,
		rng:      framework.NewRand(cfg.Seed),
	}, nil
}

func (n *NSGAII) Name() string {
	return NSGA2Name
}

// Run executes the NSGA-II generational loop and returns the final
// population. Termination is purely generation-count based; the context is
// only consulted between generations so a host can impose an external cap.
func (n *NSGAII) Run(ctx context.Context) ([]*framework.Individual, error) {
	logger := klog.FromContext(ctx)
	logger.V(4).Info("starting NSGA-II run",
		"populationSize", n.cfg.PopulationSize,
		"maxGenerations", n.cfg.MaxGenerations,
		"objectives", len(n.objFuncs),
		"variables", len(n.bounds))

	population := n.initialize()
	if err := n.evaluate(ctx, population); err != nil {
		return nil, err
	}

	for gen := 0; gen < n.cfg.MaxGenerations; gen++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// Rank and crowd the current population so tournaments have
		// up-to-date selection pressure.
		fronts := framework.NonDominatedSort(population)
		for _, front := range fronts {
			CrowdingDistance(front)
		}

		offspring := n.reproduce(population)
		if err := n.evaluate(ctx, offspring); err != nil {
			return nil, err
		}

		combined := make([]*framework.Individual, 0, len(population)+len(offspring))
		combined = append(combined, population...)
		combined = append(combined, offspring...)
		population = n.selectNext(combined)

		logger.V(5).Info("generation complete", "generation", gen, "firstFrontSize", len(fronts[0]))
	}

	return population, nil
}

// initialize samples PopulationSize decision vectors uniformly within bounds.
func (n *NSGAII) initialize() []*framework.Individual {
	population := make([]*framework.Individual, n.cfg.PopulationSize)
	for i := range population {
		vars := make([]float64, len(n.bounds))
		for j, b := range n.bounds {
			vars[j] = b.L + n.rng.Float64()*(b.H-b.L)
		}
		population[i] = &framework.Individual{Variables: vars}
	}
	return population
}

// reproduce builds PopulationSize offspring via tournament selection, SBX
// and polynomial mutation, two at a time. An odd population size takes only
// the first child of the last pair.
func (n *NSGAII) reproduce(population []*framework.Individual) []*framework.Individual {
	offspring := make([]*framework.Individual, 0, n.cfg.PopulationSize)
	for len(offspring) < n.cfg.PopulationSize {
		p1 := n.tournamentSelect(population)
		p2 := p1
		for p2 == p1 {
			p2 = n.tournamentSelect(population)
		}

		child1, child2 := n.crossover(population[p1], population[p2])
		n.mutate(child1)
		n.mutate(child2)

		offspring = append(offspring, child1)
		if len(offspring) < n.cfg.PopulationSize {
			offspring = append(offspring, child2)
		}
	}
	return offspring
}

// tournamentSelect draws TournamentSize candidates with replacement and
// returns the index of the winner: lowest rank, ties broken by the higher
// crowding distance.
func (n *NSGAII) tournamentSelect(population []*framework.Individual) int {
	best := n.rng.Intn(len(population))
	for i := 1; i < n.cfg.TournamentSize; i++ {
		contestant := n.rng.Intn(len(population))
		c, b := population[contestant], population[best]
		if c.Rank < b.Rank || (c.Rank == b.Rank && c.Distance > b.Distance) {
			best = contestant
		}
	}
	return best
}

// crossover performs SBX (Simulated Binary Crossover) with probability
// CrossoverProbability; otherwise the children are copies of the parents.
func (n *NSGAII) crossover(parent1, parent2 *framework.Individual) (*framework.Individual, *framework.Individual) {
	child1 := &framework.Individual{Variables: make([]float64, len(parent1.Variables))}
	child2 := &framework.Individual{Variables: make([]float64, len(parent2.Variables))}
	copy(child1.Variables, parent1.Variables)
	copy(child2.Variables, parent2.Variables)

	if n.rng.Float64() >= n.cfg.CrossoverProbability {
		return child1, child2
	}

	exponent := 1.0 / (crossoverDistributionIndex + 1.0)
	for i := range parent1.Variables {
		y1, y2 := parent1.Variables[i], parent2.Variables[i]
		if math.Abs(y1-y2) <= boundTolerance {
			continue
		}
		if y1 > y2 {
			y1, y2 = y2, y1
		}

		u := n.rng.Float64()
		var beta float64
		if u <= 0.5 {
			beta = math.Pow(2.0*u, exponent)
		} else {
			beta = math.Pow(1.0/(2.0*(1.0-u)), exponent)
		}

		child1.Variables[i] = clamp(0.5*((1+beta)*y1+(1-beta)*y2), n.bounds[i])
		child2.Variables[i] = clamp(0.5*((1-beta)*y1+(1+beta)*y2), n.bounds[i])
	}

	return child1, child2
}

// mutate performs polynomial mutation in place. Variables with a degenerate
// range are left unmodified.
func (n *NSGAII) mutate(individual *framework.Individual) {
	exponent := 1.0 / (mutationDistributionIndex + 1.0)
	for i := range individual.Variables {
		b := n.bounds[i]
		if b.H-b.L <= boundTolerance {
			continue
		}
		if n.rng.Float64() >= n.cfg.MutationProbability {
			continue
		}

		u := n.rng.Float64()
		var delta float64
		if u < 0.5 {
			delta = math.Pow(2.0*u, exponent) - 1.0
		} else {
			delta = 1.0 - math.Pow(2.0*(1.0-u), exponent)
		}

		individual.Variables[i] = clamp(individual.Variables[i]+delta*(b.H-b.L), b)
	}
}

// evaluate fills in the objective vector of every individual. The first
// failure from a caller-supplied objective aborts the generation and
// surfaces to the caller; nothing is retried.
func (n *NSGAII) evaluate(ctx context.Context, population []*framework.Individual) error {
	if !n.cfg.ParallelEvaluation {
		for i, individual := range population {
			if err := n.evaluateOne(individual); err != nil {
				return fmt.Errorf("individual %d: %w", i, err)
			}
		}
		return nil
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, individual := range population {
		i, individual := i, individual
		g.Go(func() error {
			if err := n.evaluateOne(individual); err != nil {
				return fmt.Errorf("individual %d: %w", i, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func (n *NSGAII) evaluateOne(individual *framework.Individual) error {
	objs := make([]float64, len(n.objFuncs))
	for j, objFunc := range n.objFuncs {
		v, err := objFunc(individual.Variables)
		if err != nil {
			return fmt.Errorf("%w: objective %d: %w", framework.ErrEvaluation, j, err)
		}
		objs[j] = v
	}
	individual.Objectives = objs
	return nil
}

// selectNext performs environmental selection on the combined parent and
// offspring pool: whole fronts are accepted in rank order while they fit,
// and the overflow front is split by descending crowding distance. The
// result has exactly PopulationSize members.
func (n *NSGAII) selectNext(combined []*framework.Individual) []*framework.Individual {
	fronts := framework.NonDominatedSort(combined)

	next := make([]*framework.Individual, 0, n.cfg.PopulationSize)
	frontIndex := 0
	for frontIndex < len(fronts) && len(next)+len(fronts[frontIndex]) <= n.cfg.PopulationSize {
		CrowdingDistance(fronts[frontIndex])
		next = append(next, fronts[frontIndex]...)
		frontIndex++
	}

	if len(next) < n.cfg.PopulationSize && frontIndex < len(fronts) {
		front := fronts[frontIndex]
		CrowdingDistance(front)
		sort.Slice(front, func(i, j int) bool {
			return front[i].Distance > front[j].Distance
		})
		next = append(next, front[:n.cfg.PopulationSize-len(next)]...)
	}

	return next
}

// CrowdingDistance calculates crowding distance for individuals in a front.
// Boundary members of every objective dimension get +Inf; interior members
// accumulate normalized neighbor gaps across all objectives. An objective
// with zero range across the front contributes nothing.
func CrowdingDistance(front []*framework.Individual) {
	for i := range front {
		front[i].Distance = 0
	}
	if len(front) <= 1 {
		return
	}

	numObjectives := len(front[0].Objectives)
	for m := 0; m < numObjectives; m++ {
		// Sort by each objective
		sort.Slice(front, func(i, j int) bool {
			return front[i].Objectives[m] < front[j].Objectives[m]
		})

		front[0].Distance = math.Inf(1)
		front[len(front)-1].Distance = math.Inf(1)

		objectiveRange := front[len(front)-1].Objectives[m] - front[0].Objectives[m]
		if objectiveRange == 0 {
			continue
		}

		for i := 1; i < len(front)-1; i++ {
			front[i].Distance += (front[i+1].Objectives[m] - front[i-1].Objectives[m]) / objectiveRange
		}
	}
}

func clamp(v float64, b framework.Bounds) float64 {
	return math.Max(b.L, math.Min(b.H, v))
}
