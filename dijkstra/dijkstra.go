// Package dijkstra implements the run-constrained shortest-path search.
//
// Notes on implementation choices:
//
//   - The distance table is a flat slice indexed by (row, col, heading, run)
//     rather than a map; its run dimension is min(MaxRun, max(rows, cols)-1)+1
//     because no straight run can be longer than the grid.
//   - We scan all cells once up front (O(R×C)) to reject negative costs.
//   - We use a “lazy” decrease-key strategy: improved states are pushed again
//     and stale entries are ignored when popped.
package dijkstra

import (
	"container/heap"
	"fmt"
	"slices"
)

// Search computes the minimal cost of moving from Options.Start to the goal
// of policy p on surface s.
//
// Preconditions and validation (in order):
//  1. s must be non-nil (ErrNilGrid) and have cells (ErrEmptyGrid).
//  2. p must be non-nil (ErrNilPolicy) and valid (ErrBadRunWindow).
//  3. Start and Target must lie on s (ErrStartOutOfBounds, ErrTargetOutOfBounds).
//  4. At least one seed heading, all valid (ErrNoSeeds, ErrBadHeading).
//  5. No cell may have a negative cost (ErrNegativeCost).
//
// An unreachable goal is not an error: Result.Cost is Unreachable.
//
// Complexity:
//
//   - Time:  O((S + E) log E), S = rows×cols×4×(MaxRun+1), E ≤ 3·S
//   - Space: O(S + E)
func Search(s Surface, p Policy, opts ...Option) (Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate surface and policy
	if s == nil {
		return Result{}, ErrNilGrid
	}
	rows, cols := s.Rows(), s.Cols()
	if rows <= 0 || cols <= 0 {
		return Result{}, ErrEmptyGrid
	}
	if p == nil {
		return Result{}, ErrNilPolicy
	}
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	// 3) Resolve and validate endpoints
	if !cfg.targetSet {
		cfg.Target = Position{Row: rows - 1, Col: cols - 1}
	}
	if _, ok := s.Cost(cfg.Start.Row, cfg.Start.Col); !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrStartOutOfBounds, cfg.Start)
	}
	if _, ok := s.Cost(cfg.Target.Row, cfg.Target.Col); !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrTargetOutOfBounds, cfg.Target)
	}

	// 4) Validate seeds
	if len(cfg.Seeds) == 0 {
		return Result{}, ErrNoSeeds
	}
	for _, h := range cfg.Seeds {
		if !h.Valid() {
			return Result{}, fmt.Errorf("%w: %s", ErrBadHeading, h)
		}
	}

	// 5) Pre-scan costs so relaxation never sees a negative edge.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if v, _ := s.Cost(r, c); v < 0 {
				return Result{}, fmt.Errorf("%w: (%d,%d)=%d", ErrNegativeCost, r, c, v)
			}
		}
	}

	// 6) Size the distance table.
	width := min(p.RunCap(), max(rows, cols)-1) + 1
	dist := make([]int64, rows*cols*numHeadings*width)
	for i := range dist {
		dist[i] = Unreachable
	}

	r := &runner{
		s:       s,
		policy:  p,
		goal:    p.Goal(cfg.Target),
		options: cfg,
		cols:    cols,
		width:   width,
		dist:    dist,
		pq:      make(frontier, 0, rows*cols),
		buf:     make([]State, 0, 3),
	}
	if cfg.ReturnPath {
		r.prev = make(map[State]State)
	}

	// 7) Seed and run.
	r.init()
	final, cost, ok := r.process()
	res := Result{Cost: Unreachable, Stats: r.stats}
	if !ok {
		return res, nil
	}
	res.Cost = cost
	res.Final = final
	if r.prev != nil {
		res.Path = r.path(final)
	}

	return res, nil
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	s       Surface         // read-only cost surface
	policy  Policy          // move generator
	goal    Goal            // termination predicate
	options Options         // resolved configuration
	cols    int             // surface width, for indexing
	width   int             // run dimension of the distance table
	dist    []int64         // best known cost per state
	prev    map[State]State // predecessor per state; nil unless ReturnPath
	pq      frontier        // min-heap of candidate states
	buf     []State         // scratch slice reused by relax
	stats   Stats
}

// index maps a state to its distance-table slot.
func (r *runner) index(st State) int {
	cell := st.Pos.Row*r.cols + st.Pos.Col

	return (cell*numHeadings+int(st.Heading))*r.width + st.Run
}

// init records every seed at cost 0 and pushes it onto the frontier.
func (r *runner) init() {
	heap.Init(&r.pq)
	for _, h := range r.options.Seeds {
		seed := State{Pos: r.options.Start, Heading: h}
		i := r.index(seed)
		if r.dist[i] == 0 {
			continue // duplicate heading
		}
		r.dist[i] = 0
		heap.Push(&r.pq, frontierItem{state: seed, cost: 0})
		r.stats.Pushed++
	}
}

// process pops the cheapest entry until one satisfies the goal or the
// frontier runs dry. It reports the goal state and its cost, with ok == false
// when the goal is unreachable.
func (r *runner) process() (final State, cost int64, ok bool) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(frontierItem)

		// 1) The frontier is cost-ordered and costs are non-negative, so the
		//    first goal state popped is optimal.
		if r.goal.Reached(item.state) {
			return item.state, item.cost, true
		}

		// 2) A cheaper route to this state was recorded after the entry was
		//    pushed: discard without expanding.
		if item.cost > r.dist[r.index(item.state)] {
			r.stats.Stale++
			continue
		}

		r.stats.Settled++
		r.relax(item)
	}

	return State{}, Unreachable, false
}

// relax expands u through the policy and records every strictly better
// successor.
func (r *runner) relax(u frontierItem) {
	r.buf = Successors(r.policy, r.s, u.state, r.buf[:0])
	for _, v := range r.buf {
		// Successors only returns on-surface states.
		w, _ := r.s.Cost(v.Pos.Row, v.Pos.Col)
		nd := u.cost + int64(w)
		if nd > r.options.MaxCost {
			continue
		}
		i := r.index(v)
		// Strict “<” keeps equal-cost duplicates out of the heap.
		if nd >= r.dist[i] {
			continue
		}
		r.dist[i] = nd
		if r.prev != nil {
			r.prev[v] = u.state
		}
		heap.Push(&r.pq, frontierItem{state: v, cost: nd})
		r.stats.Pushed++
	}
}

// path walks predecessors back from final to its seed and returns the
// sequence seed → final. Seeds never gain a predecessor because nothing
// improves on cost 0.
func (r *runner) path(final State) []State {
	out := []State{final}
	for cur := final; ; {
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		out = append(out, p)
		cur = p
	}
	slices.Reverse(out)

	return out
}

// frontierItem is a candidate state with its cumulative cost.
type frontierItem struct {
	state State
	cost  int64
}

// frontier is a min-heap of frontierItem for container/heap.
//
// container/heap always pops the element for which Less reports true
// against all others, so ordering Less by ascending cost yields a min-heap
// directly; no negated keys or reversed comparator are involved. Equal costs
// fall back to State.less to make the settle order reproducible.
type frontier []frontierItem

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by cost, then by state.
func (pq frontier) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].state.less(pq[j].state)
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a frontierItem. Called by heap.Push.
func (pq *frontier) Push(x any) { *pq = append(*pq, x.(frontierItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *frontier) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
