// SPDX-License-Identifier: MIT
//
// searcher.go - the backtracking engine.
//
// Contract:
//   - NewSearcher validates inputs once; Run/RunContext may be called again
//     after a previous run returned.
//   - Order position k is extended only after positions 0..k-1 are assigned;
//     the callback sees every complete mapping exactly once, in candidate
//     order (ascending target index, or the parent image's sorted neighbor row).
//   - Every assignment is released on every exit path, so the mapping and the
//     dynamic counts are empty after a run, including Stop and panics.
//   - The callback must not mutate the mapping.
//
// Complexity:
//   - Time: exponential in the worst case; O(V_h) candidates per position
//     (O(Δ_h) with parent candidates), each checked in O(deg(u)) plus
//     O(deg(v)) for Induced or backward counting.
//   - Space: O(V_g + V_h) beyond the inputs; recursion depth V_g.
//
// Determinism:
//   - Same inputs, order and options give the same match sequence. Degree
//     pruning, counting and parent candidates never change it.

package match

import (
	"context"
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/katalvlaran/motif/consistency"
	"github.com/katalvlaran/motif/graph"
	"github.com/katalvlaran/motif/mapping"
	"github.com/katalvlaran/motif/order"
)

// Searcher enumerates the matches of one pattern in one target under a fixed
// vertex order and variant. Construction precomputes everything that depends
// only on the pattern and the order; Run may be called any number of times.
type Searcher[G, H graph.Graph] struct {
	g G // pattern
	h H // target
	m int
	n int

	order   []int
	pos     []int
	parents []parentLink

	// static pattern tallies, indexed by pattern vertex
	backward []consistency.Tally
	forward  []consistency.Tally

	// target tallies; nil unless Counting is CountPrecomputed
	counts *consistency.DynamicCounts[H]

	mp   *mapping.Mapping
	opts Options
	log  *zap.Logger

	// per-run state
	cb      Callback
	done    <-chan struct{}
	stats   Stats
	running bool
}

// NewSearcher validates the inputs and prepares a search of pattern g in
// target h along ord. A nil ord selects order.GreatestConstraintFirst.
//
// Errors: ErrGraphNil, ErrOrientationMismatch, ErrInvalidOrder.
// Complexity: O(V_g + E_g + V_h).
func NewSearcher[G, H graph.Graph](g G, h H, ord []int, opts ...Option) (*Searcher[G, H], error) {
	if isNil(g) || isNil(h) {
		return nil, ErrGraphNil
	}
	if g.Directed() != h.Directed() {
		return nil, fmt.Errorf("%w: pattern directed=%t, target directed=%t",
			ErrOrientationMismatch, g.Directed(), h.Directed())
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	m, n := g.NumVertices(), h.NumVertices()
	if ord == nil {
		ord = order.GreatestConstraintFirst(g)
	}
	if err := order.Validate(ord, m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}

	s := &Searcher[G, H]{
		g:     g,
		h:     h,
		m:     m,
		n:     n,
		order: append([]int(nil), ord...),
		pos:   order.Positions(ord),
		mp:    mapping.New(m, n),
		opts:  o,
		log:   o.Logger.Named("match"),
	}
	s.backward, s.forward = consistency.StaticTallies(g, s.order)
	if o.Parent {
		s.parents = parentLinks(g, s.pos)
	}
	if o.Counting == CountPrecomputed {
		s.counts = consistency.NewDynamicCounts(h)
	}

	return s, nil
}

// Run enumerates every match, calling cb once per complete mapping in
// deterministic order. It returns when the search space is exhausted or cb
// returns Stop. On return the searcher's mapping is empty.
//
// Errors: ErrNilCallback, ErrSearchInProgress.
func (s *Searcher[G, H]) Run(cb Callback) (Stats, error) {
	return s.RunContext(context.Background(), cb)
}

// RunContext is Run with cancellation: once ctx is done the search unwinds
// as if cb had returned Stop and ctx.Err() is returned with the partial Stats.
func (s *Searcher[G, H]) RunContext(ctx context.Context, cb Callback) (Stats, error) {
	if cb == nil {
		return Stats{}, ErrNilCallback
	}
	if s.running {
		return Stats{}, ErrSearchInProgress
	}
	s.running = true
	s.cb = cb
	s.done = ctx.Done()
	s.stats = Stats{}
	defer func() {
		s.running = false
		s.cb = nil
		s.done = nil
	}()

	s.log.Debug("search started",
		zap.Int("pattern_vertices", s.m),
		zap.Int("target_vertices", s.n),
		zap.Stringer("strength", s.opts.Strength),
		zap.Stringer("counting", s.opts.Counting),
		zap.Bool("degree", s.opts.DegreePruning),
		zap.Bool("parent", s.opts.Parent),
	)

	// m > n admits no injective mapping
	if s.m <= s.n {
		if s.explore(0) == Stop {
			s.stats.Stopped = true
		}
	}

	s.log.Debug("search finished",
		zap.Int64("states", s.stats.States),
		zap.Int64("candidates", s.stats.Candidates),
		zap.Int64("matches", s.stats.Matches),
		zap.Bool("stopped", s.stats.Stopped),
	)

	return s.stats, ctx.Err()
}

// Mapping exposes the searcher's mapping. It is empty between runs and must
// not be modified.
func (s *Searcher[G, H]) Mapping() *mapping.Mapping { return s.mp }

// Order returns a copy of the vertex order.
func (s *Searcher[G, H]) Order() []int { return append([]int(nil), s.order...) }

// Options returns the resolved options.
func (s *Searcher[G, H]) Options() Options { return s.opts }

// Parent returns the parent of pattern vertex x: the earliest-ordered pattern
// neighbor placed before x, and whether the arc runs parent → x (out) or
// x → parent. ok is false for the first vertex of every pattern component
// and whenever parent restriction is disabled.
func (s *Searcher[G, H]) Parent(x int) (p int, out bool, ok bool) {
	if s.parents == nil {
		return 0, false, false
	}
	l := s.parents[x]

	return l.vertex, l.out, l.ok
}

// explore extends the mapping at order position k.
func (s *Searcher[G, H]) explore(k int) Signal {
	s.stats.States++
	if s.done != nil {
		select {
		case <-s.done:
			return Stop
		default:
		}
	}
	if k == s.m {
		s.stats.Matches++
		return s.cb(s.mp)
	}

	u := s.order[k]
	// with a mapped parent, u can only land next to the parent's image
	if s.parents != nil && s.parents[u].ok {
		l := s.parents[u]
		img, _ := s.mp.Image(l.vertex)
		nbs := s.h.OutEdges(img)
		if !l.out {
			nbs = s.h.InEdges(img)
		}
		for _, nb := range nbs {
			if s.step(k, u, nb.Vertex) == Stop {
				return Stop
			}
		}

		return Continue
	}

	// no earlier neighbor: every target is a candidate
	for v := 0; v < s.n; v++ {
		if s.step(k, u, v) == Stop {
			return Stop
		}
	}

	return Continue
}

// step tries u → v at position k and recurses; the assignment is released
// on every exit path, including a Stop unwinding or a panicking callback.
func (s *Searcher[G, H]) step(k, u, v int) Signal {
	s.stats.Candidates++
	if !s.admissible(u, v) {
		return Continue
	}
	s.assign(k, u, v)
	defer s.release(k, u)

	return s.explore(k + 1)
}

// admissible applies the checks cheapest first: injectivity, vertex
// equivalence, degree, counts, adjacency.
func (s *Searcher[G, H]) admissible(u, v int) bool {
	if s.mp.Used(v) || !s.opts.VertexEquiv(u, v) {
		return false
	}
	if s.opts.DegreePruning && !consistency.DegreeCondition(s.g, u, s.h, v) {
		return false
	}
	if !s.countsFit(u, v) {
		return false
	}
	if s.opts.Strength == Mono {
		return consistency.AdjacentMono(s.g, u, s.h, v, s.mp, s.opts.EdgeEquiv)
	}

	return consistency.AdjacentInduced(s.g, u, s.h, v, s.mp, s.opts.EdgeEquiv)
}

func (s *Searcher[G, H]) countsFit(u, v int) bool {
	switch s.opts.Counting {
	case CountForward:
		return s.forward[u].Within(consistency.FreeTargetNeighbors(s.h, v, s.mp))
	case CountBackward:
		return s.tallyFits(
			consistency.MappedNeighbors(s.g, u, s.mp),
			consistency.MappedTargetNeighbors(s.h, v, s.mp),
		)
	case CountPrecomputed:
		return s.tallyFits(s.backward[u], s.counts.At(v))
	default:
		return true
	}
}

// tallyFits compares already-mapped neighbor tallies. Equality is used
// wherever it is a necessary condition, which is Induced only: an induced
// match maps mapped neighbors onto mapped neighbors both ways. Under Mono
// the target may carry extra mapped neighbors, so the test is p ≤ t per
// direction.
func (s *Searcher[G, H]) tallyFits(p, t consistency.Tally) bool {
	if s.opts.Strength == Induced {
		return p.Equal(t)
	}

	return p.Within(t)
}

func (s *Searcher[G, H]) assign(k, u, v int) {
	if !s.mp.Assign(u, v) && s.opts.Assertions {
		panic(fmt.Errorf("%w: assign %d→%d rejected", ErrInvariantViolated, u, v))
	}
	if s.counts != nil {
		s.counts.Add(v)
	}
	if s.opts.Assertions {
		s.verify(k + 1)
	}
}

func (s *Searcher[G, H]) release(k, u int) {
	v, ok := s.mp.Unassign(u)
	if !ok {
		if s.opts.Assertions {
			panic(fmt.Errorf("%w: release of unassigned %d", ErrInvariantViolated, u))
		}
		return
	}
	if s.counts != nil {
		s.counts.Remove(v)
	}
	if s.opts.Assertions {
		s.verify(k)
	}
}

// verify checks that the mapping holds exactly size mutually inverse pairs
// on the first size order positions and that the dynamic counts match a
// fresh recount.
// Complexity: O(V_h + E_h).
func (s *Searcher[G, H]) verify(size int) {
	if !s.mp.Consistent() || s.mp.Len() != size {
		panic(fmt.Errorf("%w: mapping %v, want %d pairs", ErrInvariantViolated, s.mp, size))
	}
	for i := 0; i < size; i++ {
		if !s.mp.Mapped(s.order[i]) {
			panic(fmt.Errorf("%w: order position %d unmapped", ErrInvariantViolated, i))
		}
	}
	if s.counts == nil {
		return
	}
	for v := 0; v < s.n; v++ {
		if got, want := s.counts.At(v), consistency.MappedTargetNeighbors(s.h, v, s.mp); got != want {
			panic(fmt.Errorf("%w: target %d counts %+v, want %+v", ErrInvariantViolated, v, got, want))
		}
	}
}

// isNil reports a nil interface or a typed nil pointer hiding behind one.
func isNil(x any) bool {
	if x == nil {
		return true
	}
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
