package planning

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	goutils "go.viam.com/utils"

	"go.viam.com/gridplan/collision"
	"go.viam.com/gridplan/geom"
	"go.viam.com/gridplan/grid"
	"go.viam.com/gridplan/motionplan"
	"go.viam.com/gridplan/utils"
)

// Scene is an immutable snapshot of the planner's local occupancy map.
type Scene struct {
	Occupancy *grid.Grid[bool]
}

// Path is an ordered pose sequence running start to goal. An empty Poses
// slice means no path was found; CreatedAt is set either way.
type Path struct {
	Poses     []geom.Pose
	CreatedAt time.Time
}

// Planner runs one full search per scene on a single dedicated worker. It
// always works on the most recent scene (older pending scenes are
// overwritten, not queued) against the most recently seen target.
type Planner struct {
	logger golog.Logger
	clock  clock.Clock

	kernel    grid.Kernel
	planner   *motionplan.Planner
	footprint collision.Footprint
	bounds    collision.Bounds
	initial   geom.Pose

	scenes  *utils.SingleSlot[Scene]
	targets *utils.SingleSlot[geom.Pose]
	emit    func(Path)

	cancelCtx               context.Context
	cancelFunc              func()
	activeBackgroundWorkers sync.WaitGroup
}

// NewPlanner validates the configuration and builds an idle planner; emit
// receives one Path per completed planning cycle. Call Start to begin
// consuming scenes.
func NewPlanner(cfg *Config, emit func(Path), logger golog.Logger) (*Planner, error) {
	if err := cfg.Validate("config"); err != nil {
		return nil, err
	}
	footprint, err := collision.ParseFootprintConfig(cfg.Vehicle)
	if err != nil {
		return nil, err
	}
	kernel, err := cfg.kernel()
	if err != nil {
		return nil, err
	}
	planner, err := motionplan.NewPlanner(cfg.Primitives, cfg.tolerances(), logger)
	if err != nil {
		return nil, err
	}

	cancelCtx, cancelFunc := context.WithCancel(context.Background())
	return &Planner{
		logger:     logger,
		clock:      clock.New(),
		kernel:     kernel,
		planner:    planner,
		footprint:  footprint,
		bounds:     cfg.bounds(),
		initial:    geom.NewPose(cfg.Initial.X, cfg.Initial.Y, cfg.Initial.Theta),
		scenes:     utils.NewSingleSlot[Scene](),
		targets:    utils.NewSingleSlot[geom.Pose](),
		emit:       emit,
		cancelCtx:  cancelCtx,
		cancelFunc: cancelFunc,
	}, nil
}

// UpdateScene replaces the pending scene. If the worker is mid-search, the
// previously pending scene is dropped rather than queued.
func (p *Planner) UpdateScene(scene Scene) {
	p.scenes.Put(scene)
}

// UpdateTarget replaces the target pose used by subsequent planning cycles.
func (p *Planner) UpdateTarget(target geom.Pose) {
	p.targets.Put(target)
}

// Start launches the planning worker.
func (p *Planner) Start() {
	p.activeBackgroundWorkers.Add(1)
	goutils.ManagedGo(p.run, p.activeBackgroundWorkers.Done)
}

func (p *Planner) run() {
	for {
		scene, ok := p.scenes.Take(p.cancelCtx)
		if !ok {
			return
		}
		target, ok := p.targets.Peek()
		if !ok {
			p.logger.Debug("no target available, skipping planning cycle")
			continue
		}
		p.emit(p.planScene(scene, target))
	}
}

// planScene rebuilds the distance field and collision checker from the
// scene snapshot and runs one search from the configured initial state.
func (p *Planner) planScene(scene Scene, target geom.Pose) Path {
	field := p.kernel.Transform(scene.Occupancy)
	checker := collision.NewChecker(field, p.footprint, p.bounds)
	poses, found := p.planner.Plan(checker, p.initial, target)
	if !found {
		p.logger.Info("no path found")
	}
	return Path{Poses: poses, CreatedAt: p.clock.Now()}
}

// Close stops the worker and waits for it to exit. A search already in
// progress runs to completion first.
func (p *Planner) Close() {
	p.cancelFunc()
	p.activeBackgroundWorkers.Wait()
}
