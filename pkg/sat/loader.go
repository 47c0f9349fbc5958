package sat

import (
	"strconv"

	"github.com/crillab/gophersat/bf"
	"github.com/rmohr/dhskernel/pkg/hypergraph"
	"github.com/sirupsen/logrus"
)

// Model is the CNF encoding of a hitting set instance. Every active vertex is a variable and
// every edge becomes a clause demanding that at least one of its vertices is chosen.
type Model struct {
	// vertices[i] is encoded by the variable i+1
	vertices []hypergraph.Vertex
	vars     map[hypergraph.Vertex]int
	clauses  [][]int
	// empty is set if the instance contains an edge without vertices, which no solution can hit
	empty   bool
	partial []hypergraph.Vertex
}

type Loader struct {
	m         *Model
	varsCount int
}

func NewLoader() *Loader {
	return &Loader{
		m: &Model{
			vars: map[hypergraph.Vertex]int{},
		},
	}
}

// Load creates a variable for every active vertex and a clause for every edge of h.
func (loader *Loader) Load(h *hypergraph.Instance) *Model {
	for _, v := range h.ActiveVertices() {
		loader.m.vars[v] = loader.ticket()
		loader.m.vertices = append(loader.m.vertices, v)
	}
	for _, id := range h.Edges() {
		members := h.Edge(id).Vertices()
		if len(members) == 0 {
			logrus.Debugf("edge %d is empty, the instance is unsatisfiable", id)
			loader.m.empty = true
			continue
		}
		clause := make([]int, 0, len(members))
		for _, v := range members {
			clause = append(clause, loader.m.vars[v])
		}
		loader.m.clauses = append(loader.m.clauses, clause)
	}
	loader.m.partial = h.PartialSolution()
	logrus.Debugf("Generated %d variables and %d clauses.", len(loader.m.vertices), len(loader.m.clauses))
	return loader.m
}

func (loader *Loader) ticket() int {
	loader.varsCount++
	return loader.varsCount
}

// NewModel encodes h.
func NewModel(h *hypergraph.Instance) *Model {
	return NewLoader().Load(h)
}

func (m *Model) VarCount() int {
	return len(m.vertices)
}

func (m *Model) ClauseCount() int {
	return len(m.clauses)
}

// Formula returns the conjunction of all edge clauses. Variable i is named "xi".
func (m *Model) Formula() bf.Formula {
	if m.empty {
		return bf.False
	}
	if len(m.clauses) == 0 {
		return bf.True
	}
	ands := make([]bf.Formula, 0, len(m.clauses))
	for _, clause := range m.clauses {
		ors := make([]bf.Formula, 0, len(clause))
		for _, lit := range clause {
			ors = append(ors, bf.Var(varName(lit)))
		}
		ands = append(ands, bf.Or(ors...))
	}
	return bf.And(ands...)
}

// Assignment maps a set of chosen vertices to a variable assignment for Formula.
func (m *Model) Assignment(chosen []hypergraph.Vertex) map[string]bool {
	assignment := make(map[string]bool, len(m.vertices))
	for _, v := range m.vertices {
		assignment[varName(m.vars[v])] = false
	}
	for _, v := range chosen {
		if lit, ok := m.vars[v]; ok {
			assignment[varName(lit)] = true
		}
	}
	return assignment
}

func varName(lit int) string {
	return "x" + strconv.Itoa(lit)
}
