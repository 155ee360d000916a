package motionplan

import (
	"container/heap"

	"go.viam.com/gridplan/collision"
)

// node is one discovered state in the arena; parent indexes the node it was
// expanded from, or -1 for the start node.
type node struct {
	state  State
	parent int
}

// searchSpace owns the open/closed sets and back-pointer arena for one
// planning call. Nothing escapes it except the extracted path.
type searchSpace struct {
	tol        Tolerances
	checker    *collision.Checker
	primitives []Primitive

	nodes  []node
	open   *openHeap
	onOpen map[stateKey]struct{}
	closed map[stateKey]struct{}
}

func newSearchSpace(checker *collision.Checker, primitives []Primitive, tol Tolerances, start State) *searchSpace {
	ss := &searchSpace{
		tol:        tol,
		checker:    checker,
		primitives: primitives,
		onOpen:     map[stateKey]struct{}{},
		closed:     map[stateKey]struct{}{},
	}
	ss.open = &openHeap{nodes: &ss.nodes, tol: tol}
	ss.nodes = append(ss.nodes, node{state: start, parent: -1})
	heap.Push(ss.open, 0)
	ss.onOpen[tol.key(start)] = struct{}{}
	return ss
}

// popMin removes the minimum open state, moving it to the closed set, and
// returns its arena index.
func (ss *searchSpace) popMin() int {
	idx := heap.Pop(ss.open).(int)
	key := ss.tol.key(ss.nodes[idx].state)
	delete(ss.onOpen, key)
	ss.closed[key] = struct{}{}
	return idx
}

// expand applies every primitive to the node at idx, discovering candidates
// that are not already open or closed and that pass the collision check.
func (ss *searchSpace) expand(idx int) {
	cur := ss.nodes[idx].state
	for _, primitive := range ss.primitives {
		candidate := primitive.Apply(cur)
		key := ss.tol.key(candidate)
		if _, ok := ss.closed[key]; ok {
			continue
		}
		if _, ok := ss.onOpen[key]; ok {
			continue
		}
		if !ss.checker.IsFree(candidate.Pose()) {
			continue
		}
		ss.nodes = append(ss.nodes, node{state: candidate, parent: idx})
		heap.Push(ss.open, len(ss.nodes)-1)
		ss.onOpen[key] = struct{}{}
	}
}

// reconstruct follows parent indices from idx back to the start node and
// returns the state sequence running start to idx.
func (ss *searchSpace) reconstruct(idx int) []State {
	var states []State
	for i := idx; i >= 0; i = ss.nodes[i].parent {
		states = append(states, ss.nodes[i].state)
	}
	for i, j := 0, len(states)-1; i < j; i, j = i+1, j-1 {
		states[i], states[j] = states[j], states[i]
	}
	return states
}

// openHeap is a min-heap of arena indices ordered by the tolerance-lattice
// comparison of the states they refer to.
type openHeap struct {
	indices []int
	nodes   *[]node
	tol     Tolerances
}

func (h *openHeap) Len() int { return len(h.indices) }

func (h *openHeap) Less(i, j int) bool {
	nodes := *h.nodes
	return h.tol.less(nodes[h.indices[i]].state, nodes[h.indices[j]].state)
}

func (h *openHeap) Swap(i, j int) {
	h.indices[i], h.indices[j] = h.indices[j], h.indices[i]
}

func (h *openHeap) Push(x interface{}) {
	h.indices = append(h.indices, x.(int))
}

func (h *openHeap) Pop() interface{} {
	last := len(h.indices) - 1
	idx := h.indices[last]
	h.indices = h.indices[:last]
	return idx
}
