package hypergraph

import (
	"fmt"
	"math/bits"
	"strings"
)

// VertexSet is a fixed capacity bitset over the vertex index space of an instance.
// The zero value is an empty set with capacity zero.
type VertexSet struct {
	words []uint64
}

// NewVertexSet creates a set able to hold the vertices 0..capacity-1. Vertices out of range are ignored.
func NewVertexSet(capacity int, vertices ...Vertex) VertexSet {
	if capacity < 0 {
		capacity = 0
	}
	s := VertexSet{words: make([]uint64, (capacity+63)/64)}
	for _, v := range vertices {
		if v >= 0 && int(v) < capacity {
			s.add(v)
		}
	}
	return s
}

func (s VertexSet) Has(v Vertex) bool {
	w := int(v) / 64
	if v < 0 || w >= len(s.words) {
		return false
	}
	return s.words[w]&(1<<(uint(v)%64)) != 0
}

func (s VertexSet) add(v Vertex) {
	s.words[int(v)/64] |= 1 << (uint(v) % 64)
}

func (s VertexSet) remove(v Vertex) {
	s.words[int(v)/64] &^= 1 << (uint(v) % 64)
}

// Len returns the number of vertices in the set.
func (s VertexSet) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// IntersectionLen returns |s ∩ o| without allocating.
func (s VertexSet) IntersectionLen(o VertexSet) int {
	n := 0
	for i := 0; i < len(s.words) && i < len(o.words); i++ {
		n += bits.OnesCount64(s.words[i] & o.words[i])
	}
	return n
}

// Intersect returns a new set holding the vertices present in both s and o.
func (s VertexSet) Intersect(o VertexSet) VertexSet {
	out := s.Clone()
	for i := range out.words {
		if i < len(o.words) {
			out.words[i] &= o.words[i]
		} else {
			out.words[i] = 0
		}
	}
	return out
}

// SubsetOf reports whether every vertex of s is also in o.
func (s VertexSet) SubsetOf(o VertexSet) bool {
	for i, w := range s.words {
		var ow uint64
		if i < len(o.words) {
			ow = o.words[i]
		}
		if w&^ow != 0 {
			return false
		}
	}
	return true
}

func (s VertexSet) Equal(o VertexSet) bool {
	return s.SubsetOf(o) && o.SubsetOf(s)
}

// Difference returns the vertices of s that are not in o, ascending.
func (s VertexSet) Difference(o VertexSet) []Vertex {
	var out []Vertex
	for _, v := range s.Vertices() {
		if !o.Has(v) {
			out = append(out, v)
		}
	}
	return out
}

// Vertices returns the members in ascending order.
func (s VertexSet) Vertices() []Vertex {
	out := make([]Vertex, 0, s.Len())
	for i, w := range s.words {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			out = append(out, Vertex(i*64+b))
			w &= w - 1
		}
	}
	return out
}

func (s VertexSet) Clone() VertexSet {
	c := VertexSet{words: make([]uint64, len(s.words))}
	copy(c.words, s.words)
	return c
}

func (s VertexSet) String() string {
	parts := []string{}
	for _, v := range s.Vertices() {
		parts = append(parts, fmt.Sprint(int(v)))
	}
	return "{" + strings.Join(parts, ",") + "}"
}
