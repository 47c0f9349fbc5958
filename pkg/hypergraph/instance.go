package hypergraph

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Vertex identifies a vertex. Vertex identifiers are permanent: deleting a vertex
// only zeroes its incidence, the index space 0..n-1 never shrinks.
type Vertex int

// EdgeID identifies an edge. Identifiers are handed out in increasing order and are
// never reused. Deleting an edge does not renumber the others, so ascending EdgeID
// order is the insertion order of the surviving edges.
type EdgeID int

// Instance is a d-Hitting-Set instance (S, C, k) together with the partial solution
// that reduction rules have committed so far. It is mutated in place by every rule;
// use Clone to obtain an independent copy.
type Instance struct {
	d        int
	k        int
	vertices int
	nextID   EdgeID
	// ids holds the active edges in ascending order
	ids   []EdgeID
	edges map[EdgeID]VertexSet
	// incidence maps every vertex to the edges containing it
	incidence    []map[EdgeID]struct{}
	vertexDegree []int
	edgeDegree   map[EdgeID]int
	partial      []Vertex
}

// New creates an instance with vertexCount vertices and edgeCount edges whose vertex
// subsets are pulled from supplier. Structural problems are reported as
// ErrInvalidInstance.
func New(vertexCount, edgeCount, d, k int, supplier Supplier) (*Instance, error) {
	if vertexCount < 0 || edgeCount < 0 {
		return nil, fmt.Errorf("%w: negative dimensions %d vertices, %d edges", ErrInvalidInstance, vertexCount, edgeCount)
	}
	if d < 0 {
		return nil, fmt.Errorf("%w: negative edge size bound d=%d", ErrInvalidInstance, d)
	}
	if k < 0 {
		return nil, fmt.Errorf("%w: negative budget k=%d", ErrInvalidInstance, k)
	}
	if edgeCount > 0 && supplier == nil {
		return nil, fmt.Errorf("%w: no incidence supplier for %d edges", ErrInvalidInstance, edgeCount)
	}
	h := &Instance{
		d:            d,
		k:            k,
		vertices:     vertexCount,
		edges:        make(map[EdgeID]VertexSet, edgeCount),
		incidence:    make([]map[EdgeID]struct{}, vertexCount),
		vertexDegree: make([]int, vertexCount),
		edgeDegree:   make(map[EdgeID]int, edgeCount),
	}
	for v := range h.incidence {
		h.incidence[v] = map[EdgeID]struct{}{}
	}
	for i := 0; i < edgeCount; i++ {
		vertices, err := supplier.Edge(i)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read edge %d: %v", ErrInvalidInstance, i, err)
		}
		if len(vertices) == 0 {
			return nil, fmt.Errorf("%w: edge %d is empty", ErrInvalidInstance, i)
		}
		if len(vertices) > d {
			return nil, fmt.Errorf("%w: edge %d has %d vertices but d=%d", ErrInvalidInstance, i, len(vertices), d)
		}
		set, err := h.vertexSet(vertices)
		if err != nil {
			return nil, fmt.Errorf("%w: edge %d: %v", ErrInvalidInstance, i, err)
		}
		h.insert(set)
	}
	return h, nil
}

func (h *Instance) vertexSet(vertices []Vertex) (VertexSet, error) {
	set := NewVertexSet(h.vertices)
	for _, v := range vertices {
		if v < 0 || int(v) >= h.vertices {
			return VertexSet{}, fmt.Errorf("vertex %d out of range [0,%d)", v, h.vertices)
		}
		if set.Has(v) {
			return VertexSet{}, fmt.Errorf("vertex %d listed twice", v)
		}
		set.add(v)
	}
	return set, nil
}

func (h *Instance) insert(set VertexSet) EdgeID {
	id := h.nextID
	h.nextID++
	h.ids = append(h.ids, id)
	h.edges[id] = set
	members := set.Vertices()
	h.edgeDegree[id] = len(members)
	for _, v := range members {
		h.incidence[v][id] = struct{}{}
		h.vertexDegree[v]++
	}
	return id
}

func (h *Instance) D() int { return h.d }

// K returns the remaining budget.
func (h *Instance) K() int { return h.k }

func (h *Instance) VertexCount() int { return h.vertices }

// EdgeCount returns the number of active edges.
func (h *Instance) EdgeCount() int { return len(h.ids) }

// Edges returns the active edges in ascending order.
func (h *Instance) Edges() []EdgeID {
	return slices.Clone(h.ids)
}

func (h *Instance) HasEdge(id EdgeID) bool {
	_, ok := h.edges[id]
	return ok
}

// Edge returns a copy of the vertex set of edge id.
func (h *Instance) Edge(id EdgeID) VertexSet {
	set, ok := h.edges[id]
	if !ok {
		return NewVertexSet(h.vertices)
	}
	return set.Clone()
}

func (h *Instance) EdgeDegree(id EdgeID) int {
	return h.edgeDegree[id]
}

func (h *Instance) VertexDegree(v Vertex) int {
	if v < 0 || int(v) >= h.vertices {
		return 0
	}
	return h.vertexDegree[v]
}

// IsActive reports whether v is contained in at least one edge.
func (h *Instance) IsActive(v Vertex) bool {
	return h.VertexDegree(v) > 0
}

// ActiveVertices returns all vertices with a positive degree, ascending.
func (h *Instance) ActiveVertices() []Vertex {
	var out []Vertex
	for v, deg := range h.vertexDegree {
		if deg > 0 {
			out = append(out, Vertex(v))
		}
	}
	return out
}

// NewSet creates a vertex set sized for this instance. Vertices out of range are ignored.
func (h *Instance) NewSet(vertices ...Vertex) VertexSet {
	set := NewVertexSet(h.vertices)
	for _, v := range vertices {
		if v >= 0 && int(v) < h.vertices {
			set.add(v)
		}
	}
	return set
}

// EdgesContaining returns the edges which contain v, ascending.
func (h *Instance) EdgesContaining(v Vertex) []EdgeID {
	if v < 0 || int(v) >= h.vertices {
		return nil
	}
	out := make([]EdgeID, 0, len(h.incidence[v]))
	for id := range h.incidence[v] {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// VerticesOf returns V(E), all vertices which are elements of the given edges, ascending.
func (h *Instance) VerticesOf(ids ...EdgeID) []Vertex {
	union := NewVertexSet(h.vertices)
	for _, id := range ids {
		if set, ok := h.edges[id]; ok {
			for i := range union.words {
				union.words[i] |= set.words[i]
			}
		}
	}
	return union.Vertices()
}

// DeleteVertex zeroes the incidence of v. Edges containing v shrink but are never removed.
func (h *Instance) DeleteVertex(v Vertex) {
	if v < 0 || int(v) >= h.vertices || h.vertexDegree[v] == 0 {
		return
	}
	for id := range h.incidence[v] {
		h.edges[id].remove(v)
		h.edgeDegree[id]--
	}
	h.incidence[v] = map[EdgeID]struct{}{}
	h.vertexDegree[v] = 0
}

// DeleteEdge removes edge id and decrements the degree of its vertices.
// It reports whether the edge existed.
func (h *Instance) DeleteEdge(id EdgeID) bool {
	set, ok := h.edges[id]
	if !ok {
		return false
	}
	for _, v := range set.Vertices() {
		delete(h.incidence[v], id)
		h.vertexDegree[v]--
	}
	delete(h.edges, id)
	delete(h.edgeDegree, id)
	if i, found := slices.BinarySearch(h.ids, id); found {
		h.ids = slices.Delete(h.ids, i, i+1)
	}
	return true
}

// AddEdge appends a new edge with the next free identifier. Unlike New it accepts
// edges of any size, reduction rules insert subedges smaller than d.
func (h *Instance) AddEdge(vertices ...Vertex) (EdgeID, error) {
	set, err := h.vertexSet(vertices)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInstance, err)
	}
	return h.insert(set), nil
}

// Commit appends v to the partial solution and consumes one unit of budget.
func (h *Instance) Commit(v Vertex) {
	h.partial = append(h.partial, v)
	h.k--
}

// PartialSolution returns the committed vertices in commit order.
func (h *Instance) PartialSolution() []Vertex {
	return slices.Clone(h.partial)
}

// Covers reports whether every active edge contains at least one vertex of solution.
func (h *Instance) Covers(solution []Vertex) bool {
	chosen := h.NewSet(solution...)
	for _, id := range h.ids {
		if h.edges[id].IntersectionLen(chosen) == 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy. Mutating the clone never affects h.
func (h *Instance) Clone() *Instance {
	c := &Instance{
		d:            h.d,
		k:            h.k,
		vertices:     h.vertices,
		nextID:       h.nextID,
		ids:          slices.Clone(h.ids),
		edges:        make(map[EdgeID]VertexSet, len(h.edges)),
		incidence:    make([]map[EdgeID]struct{}, len(h.incidence)),
		vertexDegree: slices.Clone(h.vertexDegree),
		edgeDegree:   make(map[EdgeID]int, len(h.edgeDegree)),
		partial:      slices.Clone(h.partial),
	}
	for id, set := range h.edges {
		c.edges[id] = set.Clone()
	}
	for id, deg := range h.edgeDegree {
		c.edgeDegree[id] = deg
	}
	for v, edges := range h.incidence {
		c.incidence[v] = make(map[EdgeID]struct{}, len(edges))
		for id := range edges {
			c.incidence[v][id] = struct{}{}
		}
	}
	return c
}

// CheckConsistency recomputes both degree caches and the incidence index from the
// edge vertex sets and compares them with the cached values.
func (h *Instance) CheckConsistency() error {
	degrees := make([]int, h.vertices)
	if len(h.ids) != len(h.edges) {
		return fmt.Errorf("%w: %d ordered ids but %d edges", ErrInconsistent, len(h.ids), len(h.edges))
	}
	for i, id := range h.ids {
		if i > 0 && h.ids[i-1] >= id {
			return fmt.Errorf("%w: edge ids out of order at %d", ErrInconsistent, id)
		}
		set, ok := h.edges[id]
		if !ok {
			return fmt.Errorf("%w: edge %d is listed but has no vertex set", ErrInconsistent, id)
		}
		members := set.Vertices()
		if h.edgeDegree[id] != len(members) {
			return fmt.Errorf("%w: edge %d has degree %d but %d vertices", ErrInconsistent, id, h.edgeDegree[id], len(members))
		}
		for _, v := range members {
			degrees[v]++
			if _, ok := h.incidence[v][id]; !ok {
				return fmt.Errorf("%w: vertex %d misses incidence to edge %d", ErrInconsistent, v, id)
			}
		}
	}
	for v, deg := range degrees {
		if h.vertexDegree[v] != deg {
			return fmt.Errorf("%w: vertex %d has degree %d but is in %d edges", ErrInconsistent, v, h.vertexDegree[v], deg)
		}
		if len(h.incidence[v]) != deg {
			return fmt.Errorf("%w: vertex %d indexes %d edges but is in %d edges", ErrInconsistent, v, len(h.incidence[v]), deg)
		}
	}
	return nil
}

func (h *Instance) String() string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "%d vertices, %d edges, d=%d, k=%d:", h.vertices, len(h.ids), h.d, h.k)
	for _, id := range h.ids {
		fmt.Fprintf(&sb, " e%d=%s", id, h.edges[id])
	}
	return sb.String()
}
