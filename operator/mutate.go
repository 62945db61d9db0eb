package operator

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlmaze/maze"
)

// Mutate spends up to budget on m. It repeatedly samples an available
// operator with r and asks for an estimate against the remaining budget.
// A non-zero, affordable estimate that applies successfully is charged; a
// successful Resize makes every operator available again. Any other outcome
// drops the operator for the rest of the round. The loop ends when the budget
// is spent or no operator remains.
//
// Returns the amount spent. Zero spent is not an error here; the caller
// decides whether it is fatal.
func Mutate(m *maze.Maze, ops []Operator, budget int, r *rand.Rand) (int, error) {
	spent := 0
	available := append([]Operator(nil), ops...)

	for spent < budget && len(available) > 0 {
		i := r.Intn(len(available))
		op := available[i]
		left := budget - spent

		cost, err := op.EstimateCost(m, left)
		if err != nil {
			return spent, fmt.Errorf("operator: %s estimate: %w", op.Kind(), err)
		}
		if cost > 0 && cost <= left {
			ok, err := op.ChangeMaze(m)
			if err != nil {
				return spent, fmt.Errorf("operator: %s change: %w", op.Kind(), err)
			}
			if ok {
				spent += cost
				if op.Kind() == KindResize {
					available = append(available[:0:0], ops...)
				}
				continue
			}
		}
		available = append(available[:i], available[i+1:]...)
	}

	return spent, nil
}
