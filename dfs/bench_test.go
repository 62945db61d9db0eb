package dfs_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvlmaze/dfs"
)

// BenchmarkDetectLoops_Lattice measures loop detection on a lattice of
// pillars, where every pillar closes one loop.
func BenchmarkDetectLoops_Lattice(b *testing.B) {
	const n = 31
	rows := make([]string, n)
	rows[0], rows[n-1] = strings.Repeat("#", n), strings.Repeat("#", n)
	open := "#" + strings.Repeat(".", n-2) + "#"
	pillars := "#" + strings.Repeat(".#", (n-2)/2) + ".#"
	for y := 1; y < n-1; y++ {
		if y%2 == 1 {
			rows[y] = open
		} else {
			rows[y] = pillars
		}
	}
	rows[1] = "#S" + rows[1][2:]
	rows[n-2] = rows[n-2][:n-2] + "E#"
	m := build(b, rows...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DetectLoops(m)
	}
}
