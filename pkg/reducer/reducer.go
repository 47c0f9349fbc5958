package reducer

import (
	"errors"
	"fmt"

	"github.com/rmohr/dhskernel/pkg/crown"
	"github.com/rmohr/dhskernel/pkg/hypergraph"
	"github.com/sirupsen/logrus"
)

type Outcome string

const (
	// Reduced means the kernel still has edges and has to be solved.
	Reduced Outcome = "reduced"
	// Solved means the partial solution alone hits every edge.
	Solved Outcome = "solved"
	// Infeasible means no hitting set of size k exists.
	Infeasible Outcome = "infeasible"
)

type KernelResult struct {
	Outcome Outcome
	// Kernel is the reduced instance. It is the instance passed to Kernelize, mutated in place.
	Kernel *hypergraph.Instance
	// Partial contains the vertices forced into every solution, in commit order.
	Partial []hypergraph.Vertex
	W       hypergraph.Membership
	Crown   *crown.Crown
	Reason  string
}

// WBound selects the largest size of W accepted before the crown stage.
type WBound string

const (
	// SquareBound rejects instances with |W| > k^2.
	SquareBound WBound = "square"
	// DegreeBound rejects instances with |W| > k^(d-1), the size the high occurrence rule
	// guarantees for yes-instances. It equals SquareBound for d <= 3.
	DegreeBound WBound = "degree"
)

type Options struct {
	// WBound defaults to SquareBound. For d > 3 SquareBound may classify yes-instances as
	// infeasible.
	WBound WBound
	// VerifyCrown rejects crowns whose matched edges did not all receive a distinct partner.
	VerifyCrown bool
	// CheckInvariants recomputes the degree caches after every stage.
	CheckInvariants bool
}

type Kernelizer struct {
	opts Options
}

func NewKernelizer(opts Options) *Kernelizer {
	return &Kernelizer{opts: opts}
}

// Kernelize reduces h with the default options.
func Kernelize(h *hypergraph.Instance) (*KernelResult, error) {
	return NewKernelizer(Options{}).Kernelize(h)
}

// Kernelize applies all reduction rules to h in place and classifies the result.
func (k *Kernelizer) Kernelize(h *hypergraph.Instance) (*KernelResult, error) {
	if h == nil {
		return nil, errors.New("no instance to kernelize")
	}
	logrus.Infof("Kernelizing instance with %d vertices, %d edges, d=%d, k=%d.", len(h.ActiveVertices()), h.EdgeCount(), h.D(), h.K())

	logrus.Info("Removing dominated vertices.")
	VertexDominationFixpoint(h)
	if err := k.check(h, "vertex domination"); err != nil {
		return nil, err
	}

	logrus.Info("Removing dominated edges and vertices.")
	Dominate(h)
	if err := k.check(h, "domination"); err != nil {
		return nil, err
	}

	logrus.Info("Forcing singletons.")
	if result := k.forceSingletons(h); result != nil {
		return result, nil
	}
	if err := k.check(h, "singleton forcing"); err != nil {
		return nil, err
	}

	logrus.Info("Forcing high degree subedges.")
	for {
		if result := exit(h); result != nil {
			return result, nil
		}
		fired, err := HighDegree(h)
		if err != nil {
			return nil, err
		}
		if !fired {
			break
		}
		Dominate(h)
		if result := k.forceSingletons(h); result != nil {
			return result, nil
		}
	}
	if err := k.check(h, "high degree"); err != nil {
		return nil, err
	}

	logrus.Info("Building maximal weakly related set.")
	w := MaximalWeaklyRelated(h)
	logrus.Infof("W has %d edges, bounding occurrences.", w.Len())
	fired, err := HighOccurrence(h, w)
	if err != nil {
		return nil, err
	}
	logrus.Infof("High occurrence rule fired %d times, W has %d edges.", fired, w.Len())
	if err := k.check(h, "high occurrence"); err != nil {
		return nil, err
	}
	if result := exit(h); result != nil {
		result.W = w
		return result, nil
	}
	if bound := weaklyRelatedBound(h, k.opts.WBound); w.Len() > bound {
		result := finish(h, Infeasible, fmt.Sprintf("W has %d edges, more than the bound %d", w.Len(), bound))
		result.W = w
		return result, nil
	}

	logrus.Info("Constructing crown.")
	c, err := crown.Construct(h, w)
	if err != nil {
		return nil, err
	}
	if k.opts.VerifyCrown && !c.Empty() && !c.Saturated() {
		logrus.Warnf("Rejecting %s, not every edge has a distinct partner.", c)
		c = nil
	}
	if !c.Empty() {
		logrus.Infof("Deleting %d crown vertices.", len(c.Vertices))
		for _, v := range c.Vertices {
			h.DeleteVertex(v)
		}
	}
	if err := k.check(h, "crown"); err != nil {
		return nil, err
	}

	result := exit(h)
	if result == nil {
		result = finish(h, Reduced, fmt.Sprintf("kernel has %d vertices and %d edges", len(h.ActiveVertices()), h.EdgeCount()))
	}
	result.W = w
	result.Crown = c
	logrus.Infof("Kernelization finished: %s (%s).", result.Outcome, result.Reason)
	return result, nil
}

// weaklyRelatedBound returns k^2, or k^(d-1) for DegreeBound and d > 3.
func weaklyRelatedBound(h *hypergraph.Instance, bound WBound) int {
	exp := 2
	if bound == DegreeBound && h.D()-1 > exp {
		exp = h.D() - 1
	}
	return boundPow(h.K(), exp)
}

// forceSingletons alternates the singleton rule and domination until no singleton is left.
// It returns a result as soon as the instance is decided.
func (k *Kernelizer) forceSingletons(h *hypergraph.Instance) *KernelResult {
	for {
		if result := exit(h); result != nil {
			return result
		}
		if forced := Singleton(h); len(forced) == 0 {
			return nil
		}
		if result := exit(h); result != nil {
			return result
		}
		Dominate(h)
	}
}

func (k *Kernelizer) check(h *hypergraph.Instance, stage string) error {
	if !k.opts.CheckInvariants {
		return nil
	}
	if err := h.CheckConsistency(); err != nil {
		return fmt.Errorf("after %s: %w", stage, err)
	}
	return nil
}

// exit classifies decided instances and returns nil if the instance is still undecided.
func exit(h *hypergraph.Instance) *KernelResult {
	switch {
	case h.K() < 0:
		return finish(h, Infeasible, "budget exhausted by forced vertices")
	case h.EdgeCount() == 0:
		return finish(h, Solved, "every edge is hit by the forced vertices")
	case h.K() == 0:
		return finish(h, Infeasible, fmt.Sprintf("%d edges remain without budget", h.EdgeCount()))
	}
	for _, id := range h.Edges() {
		if h.EdgeDegree(id) == 0 {
			return finish(h, Infeasible, fmt.Sprintf("edge %d lost all of its vertices", id))
		}
	}
	return nil
}

func finish(h *hypergraph.Instance, outcome Outcome, reason string) *KernelResult {
	return &KernelResult{
		Outcome: outcome,
		Kernel:  h,
		Partial: h.PartialSolution(),
		Reason:  reason,
	}
}
