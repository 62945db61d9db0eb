package dfs

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlmaze/maze"
)

// IndexOf returns the first index of val in s, or -1 if not found.
// Time Complexity: O(n) where n = len(s).
func IndexOf(s []maze.Position, val maze.Position) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// Less orders positions row-major: by Y, then by X.
func Less(a, b maze.Position) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// SetSig returns an order-independent signature of the cells in c:
// the row-major sorted coordinates joined with ';'.
// Time Complexity: O(n log n).
func SetSig(c []maze.Position) string {
	s := append([]maze.Position(nil), c...)
	sort.Slice(s, func(i, j int) bool { return Less(s[i], s[j]) })
	var sb strings.Builder
	for i, p := range s {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(strconv.Itoa(p.X))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(p.Y))
	}
	return sb.String()
}

// canonical rotates the cycle seq to start at its row-major smallest cell and
// orients it so that the second element is the smaller of the two neighbors.
func canonical(seq []maze.Position) Loop {
	n := len(seq)
	k := 0
	for i := 1; i < n; i++ {
		if Less(seq[i], seq[k]) {
			k = i
		}
	}
	out := make(Loop, n)
	if n > 2 && Less(seq[(k-1+n)%n], seq[(k+1)%n]) {
		for i := 0; i < n; i++ {
			out[i] = seq[(k-i+n)%n]
		}
		return out
	}
	for i := 0; i < n; i++ {
		out[i] = seq[(k+i)%n]
	}
	return out
}

// adjacent reports whether a and b are orthogonal neighbors.
func adjacent(a, b maze.Position) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx+dy*dy == 1
}
