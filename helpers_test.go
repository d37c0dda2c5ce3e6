package memarena

import (
	"testing"

	"github.com/cznic/mathutil"
)

// permutation returns a full-period pseudo-random permutation of
// [0, n) using mathutil's FC32 generator, the same tool the teacher's own
// all_test.go stress test (test1) uses to order its allocate/free
// sequences without repetition.
func permutation(t *testing.T, n int) []int {
	t.Helper()
	if n == 0 {
		return nil
	}
	rng, err := mathutil.NewFC32(0, n-1, true)
	if err != nil {
		t.Fatalf("mathutil.NewFC32: %v", err)
	}
	rng.Seed(42)
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Next()
	}
	return out
}
