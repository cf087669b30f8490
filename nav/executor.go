package nav

// ReplanInterval is how often (in ticks) the executor re-runs FindPath from
// the agent's current position even when nothing has gone wrong, so a
// changing world (new blocks, a better route) keeps being incorporated.
// Matches the teacher's pathfinding module's periodic tryRepath cadence.
const ReplanInterval = 20

// ExecState reports the executor's overall progress to callers.
type ExecState int

const (
	ExecIdle ExecState = iota
	ExecNavigating
	ExecSucceeded
	ExecFailed
)

// Executor drives a planned path one edge at a time, replanning on a fixed
// interval or on edge failure, and running the fall-override subsystem so a
// mid-air agent can commit to its next edge without waiting to land first.
type Executor struct {
	host    Host
	helper  *MovementHelper
	goal    Goal
	succ    SuccessorFunc
	budget  Budget
	ctxFunc func() *CalculationContext

	state ExecState
	path  []Movement
	index int

	ticksSinceReplan int
	stuckTicks       int
	maxStuckTicks    int

	lastErr error
}

// NewExecutor wires an Executor against host. ctxFunc is called once per
// replan to build a fresh CalculationContext snapshot (so the planner never
// sees a context mutated mid-search).
func NewExecutor(host Host, ctxFunc func() *CalculationContext, succ SuccessorFunc, budget Budget) *Executor {
	return &Executor{
		host:          host,
		helper:        NewMovementHelper(host),
		succ:          succ,
		budget:        budget,
		ctxFunc:       ctxFunc,
		maxStuckTicks: 100,
	}
}

// NavigateTo starts navigation toward goal, replacing any path in progress.
func (e *Executor) NavigateTo(goal Goal) error {
	e.goal = goal
	e.state = ExecNavigating
	e.path = nil
	e.index = 0
	e.ticksSinceReplan = 0
	e.stuckTicks = 0
	e.lastErr = nil
	return e.replan()
}

// Stop halts navigation and releases any held controls.
func (e *Executor) Stop() {
	e.state = ExecIdle
	e.path = nil
	e.helper.StopAllControls()
}

func (e *Executor) State() ExecState { return e.state }
func (e *Executor) LastError() error { return e.lastErr }

func (e *Executor) replan() error {
	ctx := e.ctxFunc()
	start := e.host.AgentCell()
	result := FindPath(ctx, start, e.goal, e.succ, e.budget)
	if len(result.Path) == 0 {
		e.state = ExecFailed
		return errNoPath
	}
	e.path = result.Path
	e.index = 0
	e.ticksSinceReplan = 0
	if len(e.path) > 0 {
		e.path[0].Reset()
	}
	return nil
}

// Tick advances execution by one game tick. Callers invoke this at the
// host's tick rate (20Hz).
func (e *Executor) Tick() ExecState {
	if e.state != ExecNavigating {
		return e.state
	}
	ctx := e.ctxFunc()

	if e.goal.IsEnd(e.host.AgentCell()) {
		e.state = ExecSucceeded
		e.helper.StopAllControls()
		return e.state
	}

	e.ticksSinceReplan++
	if e.ticksSinceReplan >= ReplanInterval {
		if err := e.replan(); err != nil {
			return e.state
		}
	}

	if e.index >= len(e.path) {
		if err := e.replan(); err != nil {
			return e.state
		}
		if e.index >= len(e.path) {
			e.state = ExecFailed
			e.lastErr = errNoPath
			return e.state
		}
	}

	current := e.path[e.index]
	status := current.Tick(ctx, e.helper)

	e.tryFallOverride(ctx)

	switch status {
	case StatusSuccess:
		e.index++
		e.stuckTicks = 0
		if e.index < len(e.path) {
			e.path[e.index].Reset()
		}
	case StatusFailed, StatusUnreachable:
		if err := e.replan(); err != nil {
			return e.state
		}
	case StatusRunning, StatusWaiting, StatusPrepping:
		e.stuckTicks++
		if e.stuckTicks > e.maxStuckTicks {
			e.stuckTicks = 0
			if err := e.replan(); err != nil {
				return e.state
			}
		}
	}

	return e.state
}

// tryFallOverride lets an agent mid-air on a CanAcceptFallOverride edge
// commit early to the next queued edge once its landing cell is confirmed
// reachable, instead of waiting for the current edge to report success.
// This is what keeps long fall chains from stalling one tick per edge
// boundary.
func (e *Executor) tryFallOverride(ctx *CalculationContext) {
	if e.index+1 >= len(e.path) {
		return
	}
	current := e.path[e.index]
	if !current.CanAcceptFallOverride() {
		return
	}
	if e.host.OnGround() {
		return
	}
	next := e.path[e.index+1]
	nextCost := next.CalculateCost(ctx)
	if nextCost.Cost >= CostInf {
		return
	}
	_, ay, _ := e.host.AgentPosition()
	_, dy, _ := current.Dest().Center()
	if ay > dy+0.1 {
		return
	}
	e.index++
	e.path[e.index].Reset()
}

type pathError string

func (e pathError) Error() string { return string(e) }

const errNoPath = pathError("no path to goal")
