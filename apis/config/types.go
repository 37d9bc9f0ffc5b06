package config

// MultiObjectiveArgs is the serializable argument set a host service (swarm
// orchestrator, CLI, bridge process) uses to configure an optimization run.
// Objective functions, bounds and the external optimizer are runtime values
// and never cross a process boundary; only these knobs do.
type MultiObjectiveArgs struct {
	// Method names the optimization strategy: nsga2, weighted-sum or
	// epsilon-constraint.
	Method string `json:"method"`

	// NSGA-II parameters.
	PopulationSize       int     `json:"populationSize"`
	MaxGenerations       int     `json:"maxGenerations"`
	CrossoverProbability float64 `json:"crossoverProbability"`
	MutationProbability  float64 `json:"mutationProbability"`
	TournamentSize       int     `json:"tournamentSize"`
	ParallelEvaluation   bool    `json:"parallelEvaluation"`

	// Seed makes the run reproducible; 0 selects a fixed default seed.
	Seed int64 `json:"seed,omitempty"`

	// ObjectiveWeights configures the weighted-sum method. Empty means
	// uniform weights.
	ObjectiveWeights []float64 `json:"objectiveWeights,omitempty"`

	// PrimaryObjective and EpsilonConstraints configure the
	// epsilon-constraint method. Constraints are indexed by skipping the
	// primary objective.
	PrimaryObjective   int       `json:"primaryObjective,omitempty"`
	EpsilonConstraints []float64 `json:"epsilonConstraints,omitempty"`
}

// DefaultMultiObjectiveArgs returns the parameter set used when a host does
// not override anything: an NSGA-II run sized for the usual benchmark scale.
func DefaultMultiObjectiveArgs() *MultiObjectiveArgs {
	return &MultiObjectiveArgs{
		Method:               "nsga2",
		PopulationSize:       100,
		MaxGenerations:       250,
		CrossoverProbability: 0.9,
		MutationProbability:  0.1,
		TournamentSize:       2,
	}
}
