package util

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/zhenwuuu/JuliaSwarmSyndicate-sub013/pkg/multiobjective/framework"
)

// GenerationalDistance is the mean Euclidean distance from each found point
// to its nearest point on the reference front. 0 means every found point
// lies on the reference front; NaN when either set is empty.
func GenerationalDistance(found, reference []framework.ObjectiveSpacePoint) float64 {
	if len(found) == 0 || len(reference) == 0 {
		return math.NaN()
	}

	total := 0.0
	for _, p := range found {
		nearest := math.Inf(1)
		for _, q := range reference {
			if d := floats.Distance(p, q, 2); d < nearest {
				nearest = d
			}
		}
		total += nearest
	}
	return total / float64(len(found))
}

// Spacing measures how evenly a front covers the objective space: the
// standard deviation of nearest-neighbor distances within the front. Lower
// is more uniform; fronts with fewer than two points score 0.
func Spacing(front []framework.ObjectiveSpacePoint) float64 {
	if len(front) < 2 {
		return 0
	}

	nearest := make([]float64, len(front))
	for i, p := range front {
		minDist := math.Inf(1)
		for j, q := range front {
			if i == j {
				continue
			}
			if d := floats.Distance(p, q, 2); d < minDist {
				minDist = d
			}
		}
		nearest[i] = minDist
	}
	return stat.StdDev(nearest, nil)
}
