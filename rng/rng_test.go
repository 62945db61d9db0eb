package rng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/rng"
)

func TestNew_ZeroSeedUsesDefault(t *testing.T) {
	a := rng.New(0)
	b := rng.New(rng.DefaultSeed)
	for i := 0; i < 16; i++ {
		assert.Equal(t, b.Int63(), a.Int63())
	}
}

func TestDeriveSeed_Stable(t *testing.T) {
	assert.Equal(t, rng.DeriveSeed(42, 7), rng.DeriveSeed(42, 7))
	assert.NotEqual(t, rng.DeriveSeed(42, 7), rng.DeriveSeed(42, 8))
	assert.NotEqual(t, rng.DeriveSeed(42, 7), rng.DeriveSeed(43, 7))
}

func TestShuffle_DeterministicPermutation(t *testing.T) {
	a := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	b := append([]int(nil), a...)
	rng.Shuffle(a, rng.New(99))
	rng.Shuffle(b, rng.New(99))
	require.Equal(t, a, b)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, a)
}

func TestPick(t *testing.T) {
	_, ok := rng.Pick([]string{}, rng.New(1))
	assert.False(t, ok)

	v, ok := rng.Pick([]string{"only"}, nil)
	require.True(t, ok)
	assert.Equal(t, "only", v)
}
