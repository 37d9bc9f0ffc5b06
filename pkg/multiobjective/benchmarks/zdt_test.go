package benchmarks_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zhenwuuu/JuliaSwarmSyndicate-sub013/pkg/multiobjective/benchmarks"
	"github.com/zhenwuuu/JuliaSwarmSyndicate-sub013/pkg/multiobjective/framework"
)

func evalAll(t *testing.T, p framework.Problem, x []float64) []float64 {
	t.Helper()
	objFuncs := p.ObjectiveFuncs()
	values := make([]float64, len(objFuncs))
	for i, objFunc := range objFuncs {
		v, err := objFunc(x)
		require.NoError(t, err)
		values[i] = v
	}
	return values
}

func TestZDT1OnTheOptimalSet(t *testing.T) {
	zdt1 := benchmarks.NewZDT1(5)

	// With all tail variables at 0, g=1 and the point lies on the true
	// front: f2 = 1 - sqrt(f1).
	values := evalAll(t, zdt1, []float64{0.25, 0, 0, 0, 0})
	require.InDelta(t, 0.25, values[0], 1e-12)
	require.InDelta(t, 0.5, values[1], 1e-12)

	require.Len(t, zdt1.Bounds(), 5)
	front := zdt1.TrueParetoFront(3)
	require.Equal(t, framework.ObjectiveSpacePoint{0, 1}, front[0])
	require.Equal(t, framework.ObjectiveSpacePoint{1, 0}, front[2])
}

func TestZDT2OnTheOptimalSet(t *testing.T) {
	zdt2 := benchmarks.NewZDT2(5)

	// g=1 on the optimal set, so f2 = 1 - f1².
	values := evalAll(t, zdt2, []float64{0.5, 0, 0, 0, 0})
	require.InDelta(t, 0.5, values[0], 1e-12)
	require.InDelta(t, 0.75, values[1], 1e-12)
}

func TestZDTTailVariablesPushOffTheFront(t *testing.T) {
	zdt1 := benchmarks.NewZDT1(3)

	onFront := evalAll(t, zdt1, []float64{0.5, 0, 0})
	offFront := evalAll(t, zdt1, []float64{0.5, 0.5, 0.5})
	require.Greater(t, offFront[1], onFront[1])
}
