package benchmarks

import (
	"github.com/zhenwuuu/JuliaSwarmSyndicate-sub013/pkg/multiobjective/framework"
)

// Schaffer is Schaffer's study problem N.1: a single decision variable with
// f1 = x² and f2 = (x-2)², searched over [-5, 5]. The two objectives trade
// off against each other on the whole interval [0, 2], which makes the true
// front trivial to write down and the problem a good smoke test.
type Schaffer struct{}

func NewSchaffer() *Schaffer {
	return &Schaffer{}
}

func (p *Schaffer) Name() string {
	return "Schaffer"
}

func (p *Schaffer) ObjectiveFuncs() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{p.f1, p.f2}
}

func (p *Schaffer) f1(x []float64) (float64, error) {
	return x[0] * x[0], nil
}

func (p *Schaffer) f2(x []float64) (float64, error) {
	return (x[0] - 2) * (x[0] - 2), nil
}

func (p *Schaffer) Bounds() []framework.Bounds {
	return []framework.Bounds{{L: -5.0, H: 5.0}}
}

// TrueParetoFront samples the optimal set x ∈ [0, 2] uniformly.
func (p *Schaffer) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		x := 2.0 * float64(i) / float64(numPoints-1)
		points[i] = framework.ObjectiveSpacePoint{
			x * x, (x - 2) * (x - 2),
		}
	}
	return points
}
