package hypergraph

import "golang.org/x/exp/slices"

// Membership marks edges as members of a derived edge family, e.g. the maximal
// weakly related set W. Absent keys are not members.
type Membership map[EdgeID]bool

func (m Membership) Contains(id EdgeID) bool {
	return m[id]
}

func (m Membership) Add(id EdgeID) {
	m[id] = true
}

func (m Membership) Remove(id EdgeID) {
	delete(m, id)
}

func (m Membership) Len() int {
	n := 0
	for _, in := range m {
		if in {
			n++
		}
	}
	return n
}

// IDs returns the member edges in ascending order.
func (m Membership) IDs() []EdgeID {
	ids := make([]EdgeID, 0, len(m))
	for id, in := range m {
		if in {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}
