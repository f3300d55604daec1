package core

import (
	"fmt"
	"io"
	"sort"
)

// Display writes a human-readable summary of the container's pods, grouped
// by type, to w. This is the pretty-printing counterpart to serialize's
// JSON form; the two concerns stay separate.
func (c *PodContainer) Display(w io.Writer) {
	types := c.Types()
	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(w, "%d pods (in %d types):\n", c.Len(), len(types))
	for _, name := range names {
		pods := types[name]
		cfg := c.Config(name)
		redundancy := "N/A"
		if cfg.Redundancy != nil {
			redundancy = fmt.Sprintf("<=%d", *cfg.Redundancy)
		}
		label := name
		if cfg.Major {
			label = name + " (major)"
		}
		ids := make([]string, len(pods))
		for i, p := range pods {
			ids[i] = p.ID()
		}
		fmt.Fprintf(w, "  %s (%d, %s): %s\n", label, len(pods), redundancy, joinComma(ids))
	}
}

// Display writes a human-readable summary of the weak connections to w.
func (s *ConnectionState) Display(w io.Writer) {
	s.Pods.Display(w)
	pairs := s.Pairs()
	fmt.Fprintf(w, "weak connections (%d):\n", len(pairs))
	for _, src := range s.srcOrder {
		targets := s.weak[src]
		fmt.Fprintf(w, "  %s (%d): %s\n", src, len(targets), joinComma(targets))
	}
}

// Display writes a two-line summary of the batch: its pods (majors bracketed),
// then its pod and major counts and its coverage against state.
func (b Batch) Display(w io.Writer, state *ConnectionState) {
	majors := b.Majors(state)
	ids := make([]string, len(b.Pods))
	for i, p := range b.Pods {
		id := p.ID()
		if _, ok := majors[id]; ok {
			id = "[" + id + "]"
		}
		ids[i] = id
	}
	fmt.Fprintf(w, "  pods: %s\n    includes %d pods (%d majors), covers %d connections\n",
		joinComma(ids), len(b.Pods), len(majors), len(b.CoveredEdges(state)))
}

// Display writes a human-readable summary of the solution: its state,
// followed by each batch and the overall evaluated tuple.
func (s Solution) Display(w io.Writer) {
	s.State.Display(w)
	fmt.Fprintf(w, "solution (%d batches):\n", len(s.Batches))
	for i, b := range s.Batches {
		fmt.Fprintf(w, "batch %d:\n", i)
		b.Display(w, s.State)
	}
	ev := s.Evaluated()
	fmt.Fprintf(w, "evaluated: covered=%d batches=%d majors=%d pods=%d\n",
		ev.CoveredEdges, ev.Batches, ev.Majors, ev.Pods)
}

func joinComma(items []string) string {
	out := ""
	for i, s := range items {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out
}
