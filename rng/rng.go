package rng

import "math/rand"

// DefaultSeed is the fixed “zero” seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// New returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func New(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// using a SplitMix64 finalizer, so that neighbouring stream ids do not produce
// correlated sequences.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Derive creates an independent deterministic stream from a parent seed
// and a stream identifier.
//
// Complexity: O(1).
func Derive(parent int64, stream uint64) *rand.Rand {
	return New(DeriveSeed(parent, stream))
}

// Shuffle performs an in-place Fisher–Yates shuffle of a using r.
// If r==nil, a deterministic default stream is used (seed==0 policy).
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle[T any](a []T, r *rand.Rand) {
	n := len(a)
	if n <= 1 {
		return
	}
	if r == nil {
		r = New(0)
	}
	var i, j int
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Pick returns a uniformly chosen element of a and true,
// or the zero value and false when a is empty.
//
// Complexity: O(1).
func Pick[T any](a []T, r *rand.Rand) (T, bool) {
	var zero T
	if len(a) == 0 {
		return zero, false
	}
	if r == nil {
		r = New(0)
	}
	return a[r.Intn(len(a))], true
}
