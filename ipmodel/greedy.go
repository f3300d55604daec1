package ipmodel

// GreedySolver builds a selection by repeated marginal-gain ascent: at each
// step it includes whichever feasible, not-yet-selected index improves
// f.Objective the most, stopping once no remaining index improves it at
// all. Not guaranteed optimal — ExactSolver is the provably-optimal
// alternative — but runs in polynomial time on clusters too large for
// branch and bound to finish on.
type GreedySolver struct{}

// NewGreedySolver returns a GreedySolver.
func NewGreedySolver() GreedySolver { return GreedySolver{} }

func (GreedySolver) Solve(f *Formulation, c1, c3, c4 float64) (Assignment, error) {
	rowOf := f.indexRows()
	counts := make([]int, len(f.PR))
	selected := make(map[int]struct{})

	canInclude := func(i int) bool {
		for _, ri := range rowOf[i] {
			if cap := f.PR[ri].Cap; cap != nil && counts[ri]+1 > *cap {
				return false
			}
		}
		return true
	}

	current := f.Objective(selected, c1, c3, c4)
	for {
		bestIdx, bestScore := -1, current
		for i := 0; i < f.N; i++ {
			if _, ok := selected[i]; ok || !canInclude(i) {
				continue
			}
			selected[i] = struct{}{}
			score := f.Objective(selected, c1, c3, c4)
			delete(selected, i)
			if score > bestScore {
				bestIdx, bestScore = i, score
			}
		}
		if bestIdx < 0 {
			break
		}
		selected[bestIdx] = struct{}{}
		for _, ri := range rowOf[bestIdx] {
			counts[ri]++
		}
		current = bestScore
	}

	a := make(Assignment, f.N)
	for i := range selected {
		a[i] = 1.0
	}
	return a, nil
}
