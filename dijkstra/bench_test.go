package dijkstra_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvlmaze/dijkstra"
)

// BenchmarkShortestPath_Serpentine measures the search on a 41×41 serpentine
// corridor where the end is the last cell reached.
func BenchmarkShortestPath_Serpentine(b *testing.B) {
	const n = 41
	rows := make([]string, n)
	rows[0], rows[n-1] = strings.Repeat("#", n), strings.Repeat("#", n)
	open := "#" + strings.Repeat(".", n-2) + "#"
	for y := 1; y < n-1; y++ {
		switch {
		case y%2 == 1:
			rows[y] = open
		case y%4 == 2:
			rows[y] = strings.Repeat("#", n-2) + ".#"
		default:
			rows[y] = "#." + strings.Repeat("#", n-2)
		}
	}
	rows[1] = "#S" + rows[1][2:]
	last := []byte(rows[n-2])
	last[n-2] = 'E'
	rows[n-2] = string(last)
	m := build(b, rows...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.ShortestPath(m)
	}
}
