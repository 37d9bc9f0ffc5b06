package framework

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRandDeterminism(t *testing.T) {
	a := NewRand(123)
	b := NewRand(123)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Float64(), b.Float64())
	}
}

func TestNewRandZeroSeedIsFixed(t *testing.T) {
	a := NewRand(0)
	b := NewRand(0)
	require.Equal(t, a.Int63(), b.Int63())
}

func TestNewRandSeedsDiffer(t *testing.T) {
	a := NewRand(1)
	b := NewRand(2)
	same := true
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			same = false
			break
		}
	}
	require.False(t, same, "different seeds produced identical streams")
}
