package motionplan

import (
	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"go.viam.com/gridplan/collision"
	"go.viam.com/gridplan/geom"
)

// Planner searches a fixed primitive set for collision-free paths. It is
// safe for reuse across planning calls; each call builds a fresh search
// space.
type Planner struct {
	primitives []Primitive
	tol        Tolerances
	logger     golog.Logger
}

// NewPlanner validates the primitive set and tolerances once at
// construction.
func NewPlanner(primitives []Primitive, tol Tolerances, logger golog.Logger) (*Planner, error) {
	if len(primitives) == 0 {
		return nil, errors.New("expected at least one motion primitive")
	}
	for i, primitive := range primitives {
		if primitive.Weight < 0 {
			return nil, errors.Errorf("primitive %d: expected non-negative weight, got %v", i, primitive.Weight)
		}
	}
	if err := tol.Validate("tolerances"); err != nil {
		return nil, err
	}
	return &Planner{primitives: primitives, tol: tol, logger: logger}, nil
}

// Plan runs best-first expansion from start until a state within tolerance
// of goal is closed. Every edge weight is non-negative, so this is
// Dijkstra's algorithm over the implicitly generated primitive graph and
// the first goal state closed carries a minimal discoverable cost.
//
// The returned path runs start to goal. found is false when the open set is
// exhausted first; that is a normal planning outcome, not an error.
func (mp *Planner) Plan(checker *collision.Checker, start, goal geom.Pose) ([]geom.Pose, bool) {
	ss := newSearchSpace(checker, mp.primitives, mp.tol, NewState(start))
	goalKey := mp.tol.key(NewState(goal))

	for ss.open.Len() > 0 {
		idx := ss.popMin()
		if mp.tol.key(ss.nodes[idx].state) == goalKey {
			states := ss.reconstruct(idx)
			poses := make([]geom.Pose, 0, len(states))
			for _, state := range states {
				poses = append(poses, state.Pose())
			}
			mp.logger.Debugf("found path with %d poses, cost %v, after %d expansions",
				len(poses), ss.nodes[idx].state.Cost, len(ss.closed))
			return poses, true
		}
		ss.expand(idx)
	}

	mp.logger.Debugf("open set exhausted after %d expansions", len(ss.closed))
	return nil, false
}
