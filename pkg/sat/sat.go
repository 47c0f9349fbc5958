package sat

import (
	"github.com/crillab/gophersat/solver"
	"github.com/rmohr/dhskernel/pkg/hypergraph"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// Solve searches a hitting set with at most budget vertices. The returned solution starts with the
// partial solution of the encoded instance.
func (m *Model) Solve(budget int) ([]hypergraph.Vertex, bool) {
	chosen, ok := m.solve(budget)
	if !ok {
		return nil, false
	}
	return append(slices.Clone(m.partial), chosen...), true
}

func (m *Model) solve(budget int) ([]hypergraph.Vertex, bool) {
	if m.empty || budget < 0 {
		return nil, false
	}
	if len(m.clauses) == 0 {
		return []hypergraph.Vertex{}, true
	}
	if budget == 0 {
		return nil, false
	}

	constrs := make([]solver.PBConstr, 0, len(m.clauses)+1)
	for _, clause := range m.clauses {
		constrs = append(constrs, solver.PropClause(clause...))
	}
	if budget < len(m.vertices) {
		lits := make([]int, len(m.vertices))
		for i := range lits {
			lits[i] = i + 1
		}
		constrs = append(constrs, solver.AtMost(lits, budget))
	}
	s := solver.New(solver.ParsePBConstrs(constrs))
	if s.Solve() != solver.Sat {
		logrus.Debugf("no hitting set with at most %d vertices", budget)
		return nil, false
	}
	chosen := []hypergraph.Vertex{}
	for i, selected := range s.Model() {
		if selected && i < len(m.vertices) {
			chosen = append(chosen, m.vertices[i])
		}
	}
	return chosen, true
}

// Solve decides h with its remaining budget.
func Solve(h *hypergraph.Instance) ([]hypergraph.Vertex, bool) {
	return NewModel(h).Solve(h.K())
}

// Minimum returns a smallest hitting set of h, ignoring its budget. It fails only if h contains an
// empty edge.
func Minimum(h *hypergraph.Instance) ([]hypergraph.Vertex, bool) {
	m := NewModel(h)
	best, ok := m.solve(m.VarCount())
	if !ok {
		return nil, false
	}
	for len(best) > 0 {
		smaller, ok := m.solve(len(best) - 1)
		if !ok {
			break
		}
		best = smaller
	}
	logrus.Debugf("minimum hitting set has %d vertices", len(best))
	return append(slices.Clone(m.partial), best...), true
}

// Verify reports whether solution satisfies the CNF formula of h.
func Verify(h *hypergraph.Instance, solution []hypergraph.Vertex) bool {
	m := NewModel(h)
	return m.Formula().Eval(m.Assignment(solution))
}
