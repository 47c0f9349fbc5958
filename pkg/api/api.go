package api

import (
	"fmt"
)

const (
	OutcomeReduced    = "reduced"
	OutcomeSolved     = "solved"
	OutcomeInfeasible = "infeasible"
)

// Instance is the file representation of a d-Hitting-Set instance. Vertices are numbered 0..Vertices-1.
type Instance struct {
	Name     string  `json:"name,omitempty"`
	Vertices int     `json:"vertices"`
	D        int     `json:"d"`
	K        int     `json:"k"`
	Edges    [][]int `json:"edges"`
}

func (i *Instance) String() string {
	name := i.Name
	if name == "" {
		name = "instance"
	}
	return fmt.Sprintf("%s (%d vertices, %d edges, d=%d, k=%d)", name, i.Vertices, len(i.Edges), i.D, i.K)
}

type Pair struct {
	Edge   int `json:"edge"`
	Vertex int `json:"vertex"`
}

type Crown struct {
	Vertices  []int  `json:"vertices"`
	Edges     []int  `json:"edges"`
	Pairs     []Pair `json:"pairs,omitempty"`
	Saturated bool   `json:"saturated"`
}

// Timing records how long a backend needed for an instance.
type Timing struct {
	Backend  string  `json:"backend"`
	Seconds  float64 `json:"seconds"`
	Feasible bool    `json:"feasible"`
}

type Result struct {
	Name    string `json:"name,omitempty"`
	Outcome string `json:"outcome"`
	Reason  string `json:"reason,omitempty"`
	// Budget is the budget left for the kernel
	Budget   int       `json:"budget"`
	Partial  []int     `json:"partial"`
	Solution []int     `json:"solution,omitempty"`
	W        []int     `json:"w,omitempty"`
	Crown    *Crown    `json:"crown,omitempty"`
	Kernel   *Instance `json:"kernel,omitempty"`
	Timings  []Timing  `json:"timings,omitempty"`
}
