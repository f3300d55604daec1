package ipmodel

// ExactSolver finds the provably optimal selection by branch and bound over
// the binary variables, pruning any branch that would already violate a PR
// row's cap. Direct enumeration stands in for a true MIP backend, since no
// Go MIP solver library is in scope here.
type ExactSolver struct{}

// NewExactSolver returns an ExactSolver.
func NewExactSolver() ExactSolver { return ExactSolver{} }

// Solve enumerates every feasible selection and returns the one maximizing
// f.Objective. Suited to the cluster sizes this module's own test scenarios
// and scenario-authored clusters exercise; a real deployment would inject a
// true MIP backend behind the same Solver interface instead.
func (ExactSolver) Solve(f *Formulation, c1, c3, c4 float64) (Assignment, error) {
	rowOf := f.indexRows()
	counts := make([]int, len(f.PR))
	selected := make(map[int]struct{}, f.N)
	best := map[int]struct{}{}
	bestScore := f.Objective(selected, c1, c3, c4)

	var search func(i int)
	search = func(i int) {
		if i == f.N {
			score := f.Objective(selected, c1, c3, c4)
			if score > bestScore {
				bestScore = score
				best = make(map[int]struct{}, len(selected))
				for k := range selected {
					best[k] = struct{}{}
				}
			}
			return
		}

		search(i + 1) // branch: exclude i

		feasible := true
		for _, ri := range rowOf[i] {
			if cap := f.PR[ri].Cap; cap != nil && counts[ri]+1 > *cap {
				feasible = false
				break
			}
		}
		if !feasible {
			return
		}
		selected[i] = struct{}{}
		for _, ri := range rowOf[i] {
			counts[ri]++
		}
		search(i + 1) // branch: include i
		for _, ri := range rowOf[i] {
			counts[ri]--
		}
		delete(selected, i)
	}
	search(0)

	a := make(Assignment, f.N)
	for i := range best {
		a[i] = 1.0
	}
	return a, nil
}
